package menuimport

import (
	"context"

	"github.com/chedan888/BBQ/internal/menu"
)

// Client turns a photographed menu into a structured catalog.
type Client interface {
	Extract(ctx context.Context, image []byte, mimeType string) (menu.MenuData, error)
}
