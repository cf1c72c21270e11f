package menu

// MenuItem is a single orderable dish or drink.
// Identity is the id; items are never edited in place,
// only added and deleted through the admin flow.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// MenuData is the full catalog: category order plus items in
// display order. This exact JSON shape is the persistence contract
// and must round-trip unchanged.
type MenuData struct {
	Categories []string   `json:"categories"`
	Items      []MenuItem `json:"items"`
}

// Clone returns a deep copy so callers can hand out snapshots
// without exposing internal slices.
func (m MenuData) Clone() MenuData {
	out := MenuData{
		Categories: make([]string, len(m.Categories)),
		Items:      make([]MenuItem, len(m.Items)),
	}
	copy(out.Categories, m.Categories)
	copy(out.Items, m.Items)
	return out
}

// ItemByID resolves an item id against the catalog.
func (m MenuData) ItemByID(id string) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// ItemsInCategory filters items preserving catalog order.
func (m MenuData) ItemsInCategory(category string) []MenuItem {
	var out []MenuItem
	for _, item := range m.Items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
