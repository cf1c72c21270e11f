package cart

import (
	"testing"

	"github.com/chedan888/BBQ/internal/menu"
)

func TestUpdateQuantity_AddAndPrice(t *testing.T) {
	catalog := menu.SeedMenu()

	ledger := NewLedger().UpdateQuantity("1", 1)

	if got := ledger.Quantity("1"); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
	if got := ledger.TotalPrice(catalog); got != 2 {
		t.Fatalf("expected total price 2, got %v", got)
	}
}

func TestUpdateQuantity_RemovesZeroedEntries(t *testing.T) {
	ledger := NewLedger().UpdateQuantity("1", 1)
	ledger = ledger.UpdateQuantity("1", -1)

	if ledger.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d entries", ledger.Len())
	}
	if got := ledger.Quantity("1"); got != 0 {
		t.Fatalf("expected quantity 0, got %d", got)
	}
}

func TestUpdateQuantity_NeverNegative(t *testing.T) {
	ledger := NewLedger().UpdateQuantity("1", 1)
	ledger = ledger.UpdateQuantity("1", -5)

	if ledger.Len() != 0 {
		t.Fatalf("expected entry removed on underflow, got %d entries", ledger.Len())
	}

	// decrement of an absent item stays a no-op
	ledger = ledger.UpdateQuantity("2", -1)
	if ledger.Len() != 0 {
		t.Fatalf("expected no entry for decremented absent item")
	}

	for _, e := range ledger.Entries() {
		if e.Quantity <= 0 {
			t.Fatalf("entry %q has non-positive quantity %d", e.ItemID, e.Quantity)
		}
	}
}

func TestUpdateQuantity_IsPure(t *testing.T) {
	before := NewLedger().UpdateQuantity("1", 2)
	_ = before.UpdateQuantity("1", 3)

	if got := before.Quantity("1"); got != 2 {
		t.Fatalf("original ledger mutated: quantity = %d", got)
	}
}

func TestTotalItems(t *testing.T) {
	ledger := NewLedger().
		UpdateQuantity("1", 2).
		UpdateQuantity("2", 3).
		UpdateQuantity("3", 1)

	if got := ledger.TotalItems(); got != 6 {
		t.Fatalf("expected 6 total items, got %d", got)
	}
}

func TestTotalPrice_EmptyLedgerIsZero(t *testing.T) {
	if got := NewLedger().TotalPrice(menu.SeedMenu()); got != 0 {
		t.Fatalf("expected 0 for empty ledger, got %v", got)
	}
}

func TestTotalPrice_MonotonicInQuantity(t *testing.T) {
	catalog := menu.SeedMenu()

	ledger := NewLedger().UpdateQuantity("4", 1)
	prev := ledger.TotalPrice(catalog)

	for i := 0; i < 5; i++ {
		ledger = ledger.UpdateQuantity("4", 1)
		next := ledger.TotalPrice(catalog)
		if next < prev {
			t.Fatalf("total price decreased from %v to %v", prev, next)
		}
		prev = next
	}
}

func TestTotalPrice_StaleItemContributesNothing(t *testing.T) {
	catalog := menu.MenuData{
		Categories: []string{"烧烤类"},
		Items: []menu.MenuItem{
			{ID: "a", Name: "鸡腿", Price: 8, Category: "烧烤类"},
		},
	}

	ledger := NewLedger().
		UpdateQuantity("a", 1).
		UpdateQuantity("deleted", 3)

	if got := ledger.TotalPrice(catalog); got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}
}

func TestEntries_InsertionOrder(t *testing.T) {
	ledger := NewLedger().
		UpdateQuantity("3", 1).
		UpdateQuantity("1", 1).
		UpdateQuantity("2", 1).
		UpdateQuantity("3", 1) // bump keeps original position

	entries := ledger.Entries()
	want := []string{"3", "1", "2"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ItemID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, entries[i].ItemID)
		}
	}
	if entries[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 for first entry, got %d", entries[0].Quantity)
	}
}
