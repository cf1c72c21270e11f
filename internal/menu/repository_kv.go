package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/chedan888/BBQ/internal/kv"
)

// StorageKey is the fixed blob-store key holding the serialized catalog.
const StorageKey = "bbq_menu_data"

// KVRepository persists the catalog as a single JSON blob in a
// key-value store.
type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context) (MenuData, error) {
	raw, err := r.store.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return MenuData{}, ErrNotFound
	}
	if err != nil {
		return MenuData{}, err
	}

	var data MenuData
	if err := json.Unmarshal(raw, &data); err != nil {
		return MenuData{}, err
	}
	return data, nil
}

func (r *KVRepository) Save(ctx context.Context, data MenuData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, StorageKey, raw)
}
