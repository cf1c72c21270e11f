package menuimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/chedan888/BBQ/internal/menu"
)

var (
	ErrImportInFlight = errors.New("an import is already running")
	ErrNotConfigured  = errors.New("menu import is not configured")
)

// Archive stores the original uploaded image before extraction runs.
type Archive interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

// Candidate is an extracted catalog awaiting operator confirmation.
// Nothing replaces the live catalog until the candidate is confirmed.
type Candidate struct {
	ID        string        `json:"id"`
	Data      menu.MenuData `json:"data"`
	CreatedAt time.Time     `json:"created_at"`
}

type Service struct {
	client  Client
	archive Archive
	busy    atomic.Bool
}

// NewService wires the collaborator client and an optional image
// archive; pass a nil archive to skip archiving.
func NewService(client Client, archive Archive) *Service {
	return &Service{client: client, archive: archive}
}

// Enabled reports whether a collaborator client was configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Import runs one extraction. Only one may be in flight at a time;
// overlapping calls are rejected rather than queued.
func (s *Service) Import(ctx context.Context, image []byte, mimeType string) (*Candidate, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrImportInFlight
	}
	defer s.busy.Store(false)

	s.archiveImage(ctx, image, mimeType)

	data, err := s.client.Extract(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	if err := ValidateCandidate(data); err != nil {
		return nil, fmt.Errorf("extracted menu rejected: %w", err)
	}

	return &Candidate{
		ID:        uuid.New().String(),
		Data:      NormalizeIDs(data),
		CreatedAt: time.Now(),
	}, nil
}

// archiveImage keeps a copy of the upload for later reference.
// Failures are logged only; they never fail the import itself.
func (s *Service) archiveImage(ctx context.Context, image []byte, mimeType string) {
	if s.archive == nil {
		return
	}

	ext := ".jpg"
	if mimeType == "image/png" {
		ext = ".png"
	}
	key := fmt.Sprintf("imports/%s%s", uuid.New().String(), ext)

	if _, err := s.archive.Upload(ctx, key, bytes.NewReader(image)); err != nil {
		log.Printf("menuimport: failed to archive image: %v", err)
	}
}
