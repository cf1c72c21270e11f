package menu

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/chedan888/BBQ/internal/kv"
)

func newTestStore() (*Store, *kv.MemoryStore) {
	blobs := kv.NewMemoryStore()
	return NewStore(NewKVRepository(blobs)), blobs
}

func TestAddItem_Success(t *testing.T) {
	store, _ := newTestStore()
	before := len(store.Data().Items)

	item, err := store.AddItem(context.Background(), "羊肉串", 5, "烧烤类")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := store.Data()
	if len(data.Items) != before+1 {
		t.Fatalf("expected %d items, got %d", before+1, len(data.Items))
	}

	seen := 0
	for _, existing := range data.Items {
		if existing.ID == item.ID {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected new id to be unique, found %d occurrences", seen)
	}
}

func TestAddItem_MissingFields(t *testing.T) {
	store, _ := newTestStore()

	if _, err := store.AddItem(context.Background(), "", 5, "烧烤类"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := store.AddItem(context.Background(), "羊肉串", 5, ""); err == nil {
		t.Fatal("expected error for empty category")
	}
	if _, err := store.AddItem(context.Background(), "羊肉串", -1, "烧烤类"); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestAddItem_CollidingClockStillUnique(t *testing.T) {
	store, _ := newTestStore()
	fixed := time.Now()
	store.now = func() time.Time { return fixed }

	a, err := store.AddItem(context.Background(), "羊肉串", 5, "烧烤类")
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.AddItem(context.Background(), "牛肉串", 6, "烧烤类")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both got %q", a.ID)
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	store, _ := newTestStore()
	before := len(store.Data().Items)

	if err := store.RemoveItem(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(store.Data().Items); got != before-1 {
		t.Fatalf("expected %d items, got %d", before-1, got)
	}

	// removing again is a no-op, not an error
	if err := store.RemoveItem(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error on repeat removal: %v", err)
	}
	if got := len(store.Data().Items); got != before-1 {
		t.Fatalf("expected %d items after repeat removal, got %d", before-1, got)
	}
}

// failingRepo loads fine but refuses every save.
type failingRepo struct {
	saveErr error
}

func (f *failingRepo) Load(ctx context.Context) (MenuData, error) {
	return MenuData{}, ErrNotFound
}

func (f *failingRepo) Save(ctx context.Context, data MenuData) error {
	return f.saveErr
}

func TestMutations_SaveFailureLeavesCatalogUntouched(t *testing.T) {
	store := NewStore(&failingRepo{saveErr: errors.New("disk full")})
	before := store.Data()

	if _, err := store.AddItem(context.Background(), "羊肉串", 5, "烧烤类"); err == nil {
		t.Fatal("expected save error from AddItem")
	}
	if got := len(store.Data().Items); got != len(before.Items) {
		t.Fatalf("catalog grew from %d to %d despite failed save", len(before.Items), got)
	}

	if err := store.RemoveItem(context.Background(), "1"); err == nil {
		t.Fatal("expected save error from RemoveItem")
	}
	if _, ok := store.ItemByID("1"); !ok {
		t.Fatal("item removed from live catalog despite failed save")
	}

	replacement := MenuData{
		Categories: []string{"新菜单"},
		Items:      []MenuItem{{ID: "n1", Name: "羊肉串", Price: 5, Category: "新菜单"}},
	}
	if err := store.Replace(context.Background(), replacement); err == nil {
		t.Fatal("expected save error from Replace")
	}
	if !reflect.DeepEqual(store.Data(), before) {
		t.Fatal("catalog replaced despite failed save")
	}
}

func TestLoad_CorruptedBlobFallsBackToSeed(t *testing.T) {
	blobs := kv.NewMemoryStore()
	_ = blobs.Put(context.Background(), StorageKey, []byte("{not valid json"))

	store := NewStore(NewKVRepository(blobs))
	store.Load(context.Background())

	if !reflect.DeepEqual(store.Data(), SeedMenu()) {
		t.Fatal("expected seed catalog after corrupted blob")
	}
}

func TestLoad_MissingBlobUsesSeed(t *testing.T) {
	store, _ := newTestStore()
	store.Load(context.Background())

	if !reflect.DeepEqual(store.Data(), SeedMenu()) {
		t.Fatal("expected seed catalog when nothing persisted")
	}
}

func TestMutationsArePersisted(t *testing.T) {
	store, blobs := newTestStore()

	item, err := store.AddItem(context.Background(), "羊肉串", 5, "烧烤类")
	if err != nil {
		t.Fatal(err)
	}

	// a fresh store over the same blobs must see the mutation
	reloaded := NewStore(NewKVRepository(blobs))
	reloaded.Load(context.Background())

	if _, ok := reloaded.ItemByID(item.ID); !ok {
		t.Fatal("added item not found after reload")
	}

	if err := store.RemoveItem(context.Background(), item.ID); err != nil {
		t.Fatal(err)
	}
	reloaded.Load(context.Background())
	if _, ok := reloaded.ItemByID(item.ID); ok {
		t.Fatal("removed item still present after reload")
	}
}

func TestMenuData_JSONRoundTrip(t *testing.T) {
	original := SeedMenu()

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded MenuData
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatal("catalog did not round-trip through JSON")
	}
}
