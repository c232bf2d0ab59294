package domain

// Keyed is implemented by every record returned in an id-keyed collection.
type Keyed interface {
	Key() int64
}

func (u User) Key() int64          { return u.ID }
func (p Provider) Key() int64      { return p.ID }
func (n Name) Key() int64          { return n.ID }
func (c Client) Key() int64        { return c.ID }
func (c ClientPrice) Key() int64   { return c.ID }
func (p Product) Key() int64       { return p.ID }
func (p Purchase) Key() int64      { return p.ID }
func (w WarehouseItem) Key() int64 { return w.ID }
func (s Sale) Key() int64          { return s.ID }
func (f FutureSale) Key() int64    { return f.ID }
func (s Share) Key() int64         { return s.ID }
func (s Story) Key() int64         { return s.ID }

// ByKey indexes records by id, the shape every listing is returned in.
func ByKey[T Keyed](items []T) map[int64]T {
	out := make(map[int64]T, len(items))
	for _, it := range items {
		out[it.Key()] = it
	}
	return out
}
