package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical form delivery and order times are stored in.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp accepts the layouts clients send and returns the value in
// TimestampLayout.
func ParseTimestamp(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(TimestampLayout), nil
		}
	}
	return "", fmt.Errorf("invalid timestamp %q, expected YYYY-MM-DD HH:MM:SS", value)
}

// Timestamp is a stored time read back in TimestampLayout whatever the driver
// returns for the column.
type Timestamp string

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
	case time.Time:
		*ts = Timestamp(v.Format(TimestampLayout))
	case string:
		*ts = Timestamp(v)
	case []byte:
		*ts = Timestamp(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	return nil
}
