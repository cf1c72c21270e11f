package menuimport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chedan888/BBQ/internal/menu"
)

// ValidateCandidate checks an extracted payload against the MenuData
// schema before it may replace the live catalog. The collaborator's
// output is external structure and is never trusted as-is.
func ValidateCandidate(data menu.MenuData) error {
	if len(data.Categories) == 0 {
		return errors.New("no categories extracted")
	}
	if len(data.Items) == 0 {
		return errors.New("no items extracted")
	}

	for _, c := range data.Categories {
		if strings.TrimSpace(c) == "" {
			return errors.New("blank category label")
		}
	}

	for i, item := range data.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d has no name", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %q has a negative price", item.Name)
		}
		if strings.TrimSpace(item.Category) == "" {
			return fmt.Errorf("item %q has no category", item.Name)
		}
	}
	return nil
}

// NormalizeIDs replaces missing or duplicated item ids. The model is
// asked to generate unique ids but is not relied on to.
func NormalizeIDs(data menu.MenuData) menu.MenuData {
	out := data.Clone()
	seen := make(map[string]bool, len(out.Items))
	for i := range out.Items {
		id := out.Items[i].ID
		if id == "" || seen[id] {
			id = uuid.New().String()
			out.Items[i].ID = id
		}
		seen[id] = true
	}
	return out
}
