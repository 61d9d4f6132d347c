// Package cart implements the register's in-progress bill. Scanning the same
// item again bumps the existing line instead of appending, lines keep the
// order they first appeared in, and the subtotal is always recomputed from
// the lines rather than kept as a running figure.
package cart

import "strings"

// Item is what a scan resolves to before it enters the cart.
type Item struct {
	Name          string
	Gram          string
	Barcode       string
	BarcodeNumber string
	UnitPrice     int64 // cents
}

// Line is one aggregated row of the cart.
type Line struct {
	Name          string `json:"itemName"`
	Gram          string `json:"gram"`
	Barcode       string `json:"barcode"`
	BarcodeNumber string `json:"barcodenumber"`
	UnitPrice     int64  `json:"-"`
	Quantity      int    `json:"quantity"`
}

// Total returns the line total in cents.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart accumulates scanned items for one register session. It is not safe
// for concurrent use; the session store serializes access to it.
type Cart struct {
	lines []Line
	index map[string]int // identity key -> position in lines
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// identityKey decides which existing line a scan merges into. Two scans are
// the same line only when name, gram and barcode all match; items without a
// barcode fall back to name+gram alone so loose goods still aggregate.
func identityKey(name, gram, barcode string) string {
	name = strings.TrimSpace(name)
	gram = strings.TrimSpace(gram)
	if barcode == "" {
		return name + "\x00" + gram
	}
	return name + "\x00" + gram + "\x00" + barcode
}

// Add merges one scan of item into the cart, incrementing the matching
// line's quantity by one or appending a new line at the end.
func (c *Cart) Add(item Item) Line {
	return c.AddQuantity(item, 1)
}

// AddQuantity merges qty scans of item into the cart. Non-positive
// quantities are ignored.
func (c *Cart) AddQuantity(item Item, qty int) Line {
	key := identityKey(item.Name, item.Gram, item.Barcode)
	if pos, ok := c.index[key]; ok {
		if qty > 0 {
			c.lines[pos].Quantity += qty
		}
		return c.lines[pos]
	}

	if qty <= 0 {
		return Line{}
	}
	line := Line{
		Name:          strings.TrimSpace(item.Name),
		Gram:          strings.TrimSpace(item.Gram),
		Barcode:       item.Barcode,
		BarcodeNumber: item.BarcodeNumber,
		UnitPrice:     item.UnitPrice,
		Quantity:      qty,
	}
	c.index[key] = len(c.lines)
	c.lines = append(c.lines, line)
	return line
}

// Lines returns a copy of the cart lines in first-scanned order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// SubTotal recomputes the cart total in cents from its lines.
func (c *Cart) SubTotal() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// TotalQuantity returns the summed quantity across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart. This is the only way lines leave a cart; a
// finished sale clears it wholesale after the bill is stored.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}
