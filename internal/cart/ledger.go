package cart

import (
	"github.com/chedan888/BBQ/internal/menu"
)

// Ledger maps item ids to positive quantities. Iteration order is the
// insertion order of each id's first increment, which fixes the line
// order on the bill. A quantity driven to zero deletes the entry.
//
// Ledger values are immutable: UpdateQuantity returns a new Ledger and
// leaves the receiver untouched.
type Ledger struct {
	order      []string
	quantities map[string]int
}

// Entry is one (item id, quantity) pair in ledger order.
type Entry struct {
	ItemID   string
	Quantity int
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{}
}

// UpdateQuantity applies a delta to one item, clamping at zero.
// Zeroed entries are removed, never kept at quantity 0.
func (l Ledger) UpdateQuantity(itemID string, delta int) Ledger {
	current := l.quantities[itemID]
	next := current + delta
	if next < 0 {
		next = 0
	}

	out := Ledger{
		order:      make([]string, 0, len(l.order)+1),
		quantities: make(map[string]int, len(l.quantities)+1),
	}
	for _, id := range l.order {
		if id == itemID {
			continue
		}
		out.order = append(out.order, id)
		out.quantities[id] = l.quantities[id]
	}
	if next > 0 {
		// keep the original position if the item was already present
		if current > 0 {
			out.order = insertAt(out.order, indexOf(l.order, itemID), itemID)
		} else {
			out.order = append(out.order, itemID)
		}
		out.quantities[itemID] = next
	}
	return out
}

// Quantity returns the current quantity for an item, zero if absent.
func (l Ledger) Quantity(itemID string) int {
	return l.quantities[itemID]
}

// Entries returns all entries in ledger order.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, Entry{ItemID: id, Quantity: l.quantities[id]})
	}
	return out
}

// Len reports the number of distinct items.
func (l Ledger) Len() int {
	return len(l.order)
}

// TotalItems sums every quantity in the ledger.
func (l Ledger) TotalItems() int {
	total := 0
	for _, qty := range l.quantities {
		total += qty
	}
	return total
}

// TotalPrice prices the ledger against a catalog. An entry whose item
// no longer exists contributes nothing; a stale cart never errors.
func (l Ledger) TotalPrice(catalog menu.MenuData) float64 {
	var total float64
	for id, qty := range l.quantities {
		if item, ok := catalog.ItemByID(id); ok {
			total += item.Price * float64(qty)
		}
	}
	return total
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return len(ids)
}

func insertAt(ids []string, i int, id string) []string {
	if i >= len(ids) {
		return append(ids, id)
	}
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
