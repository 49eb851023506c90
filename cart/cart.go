// Package cart models the customer-side order composition: menu item plus
// resolved size and add-on selections become priced lines, lines aggregate
// into subtotal/tax/total. The cart is ephemeral and owned by a single
// customer session; it is never shared between goroutines.
package cart

import (
	"errors"
	"sort"
	"strings"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
)

var (
	// ErrSizeRequired is returned when an item defines sizes but none was
	// selected. The model refuses to price such an item even though the UI
	// normally forces the selection step.
	ErrSizeRequired = errors.New("size selection required")
	// ErrUnknownSize is returned when the selected size does not exist on the item.
	ErrUnknownSize = errors.New("unknown size")
	// ErrUnknownAddon is returned when a selected add-on does not exist on the item.
	ErrUnknownAddon = errors.New("unknown addon")
)

// Line is one priced entry. Quantity is always >= 1; a line whose quantity
// drops to zero is removed from the cart.
type Line struct {
	ItemID   uint
	ItemName string
	Quantity int

	Size   *entity.SizeOption
	Addons []entity.AddonOption

	// (size price if selected, else base price) + sum of addon prices
	UnitTotal float64
}

// key is the structural identity of a line: item id, size name and the
// sorted set of addon names. Two adds with the same key merge instead of
// producing duplicate lines.
func (l *Line) key() string {
	names := make([]string, 0, len(l.Addons))
	for _, a := range l.Addons {
		names = append(names, a.Name)
	}
	sort.Strings(names)

	var b strings.Builder
	if l.Size != nil {
		b.WriteString(l.Size.Name)
	}
	b.WriteByte('|')
	b.WriteString(strings.Join(names, ","))
	return b.String()
}

// Cart holds lines in insertion order. Order is presentational only; totals
// do not depend on it.
type Cart struct {
	Lines []*Line
}

func New() *Cart {
	return &Cart{}
}

// Add prices one unit of the item with the given selections and either merges
// it into a structurally equal line or appends a new line with quantity 1.
// The size must name one of the item's sizes when the item has any, and every
// addon must exist on the item.
func (c *Cart) Add(item *entity.MenuItem, sizeName string, addonNames []string) (*Line, error) {
	var size *entity.SizeOption
	if len(item.Sizes) > 0 {
		if sizeName == "" {
			return nil, ErrSizeRequired
		}
		size = item.SizeByName(sizeName)
		if size == nil {
			return nil, ErrUnknownSize
		}
	} else if sizeName != "" {
		return nil, ErrUnknownSize
	}

	// set semantics: an addon is present once or absent
	seen := map[string]bool{}
	addons := make([]entity.AddonOption, 0, len(addonNames))
	for _, name := range addonNames {
		if seen[name] {
			continue
		}
		a := item.AddonByName(name)
		if a == nil {
			return nil, ErrUnknownAddon
		}
		seen[name] = true
		addons = append(addons, *a)
	}

	unit := item.BasePrice
	if size != nil {
		unit = size.Price
	}
	for _, a := range addons {
		unit += a.Price
	}

	line := &Line{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  1,
		Size:      size,
		Addons:    addons,
		UnitTotal: unit,
	}

	for _, existing := range c.Lines {
		if existing.ItemID == line.ItemID && existing.key() == line.key() {
			existing.Quantity++
			return existing, nil
		}
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// UpdateQuantity applies a delta to a line's quantity. If the result drops to
// zero or below the line is removed; no zero-quantity line ever persists.
func (c *Cart) UpdateQuantity(line *Line, delta int) {
	line.Quantity += delta
	if line.Quantity <= 0 {
		c.Remove(line)
	}
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(line *Line) {
	for i, l := range c.Lines {
		if l == line {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Totals are the derived amounts for a cart at a given tax rate.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals aggregates the cart. The tax rate comes from configuration so
// the same constant feeds both the cart and any server-side recomputation.
func (c *Cart) ComputeTotals(taxRate float64) Totals {
	var subtotal float64
	for _, l := range c.Lines {
		subtotal += l.UnitTotal * float64(l.Quantity)
	}
	tax := subtotal * taxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// Freeze copies the cart into immutable order items. Names and prices are
// captured as of now; later menu edits must not alter the snapshot.
func (c *Cart) Freeze() []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		var size *entity.SizeOption
		if l.Size != nil {
			s := *l.Size
			size = &s
		}
		addons := make([]entity.AddonOption, len(l.Addons))
		copy(addons, l.Addons)

		items = append(items, entity.OrderItem{
			MenuItemID:     l.ItemID,
			Name:           l.ItemName,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitTotal,
			SelectedSize:   size,
			SelectedAddons: addons,
			ItemTotal:      l.UnitTotal * float64(l.Quantity),
		})
	}
	return items
}

// Clear empties the cart, used after a successful submission.
func (c *Cart) Clear() {
	c.Lines = nil
}
