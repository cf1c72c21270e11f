package menuimport

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/chedan888/BBQ/internal/menu"
)

type stubClient struct {
	data menu.MenuData
	err  error
}

func (s *stubClient) Extract(ctx context.Context, image []byte, mimeType string) (menu.MenuData, error) {
	if s.err != nil {
		return menu.MenuData{}, s.err
	}
	return s.data, nil
}

type blockingClient struct {
	started   chan struct{}
	release   chan struct{}
	startOnce sync.Once
}

func (b *blockingClient) Extract(ctx context.Context, image []byte, mimeType string) (menu.MenuData, error) {
	b.startOnce.Do(func() { close(b.started) })
	<-b.release
	return menu.MenuData{
		Categories: []string{"烧烤类"},
		Items:      []menu.MenuItem{{ID: "1", Name: "热狗", Price: 2, Category: "烧烤类"}},
	}, nil
}

type failingArchive struct{}

func (failingArchive) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	return "", errors.New("bucket unavailable")
}

func validData() menu.MenuData {
	return menu.MenuData{
		Categories: []string{"烧烤类"},
		Items: []menu.MenuItem{
			{ID: "1", Name: "热狗", Price: 2, Category: "烧烤类"},
		},
	}
}

func TestImport_Success(t *testing.T) {
	service := NewService(&stubClient{data: validData()}, nil)

	candidate, err := service.Import(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidate.ID == "" {
		t.Fatal("expected candidate id")
	}
	if len(candidate.Data.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(candidate.Data.Items))
	}
}

func TestImport_RejectsShapeMismatch(t *testing.T) {
	bad := []menu.MenuData{
		{},                                  // nothing at all
		{Categories: []string{"烧烤类"}},      // no items
		{Items: validData().Items},          // no categories
		{Categories: []string{"烧烤类"}, Items: []menu.MenuItem{{Name: "", Price: 2, Category: "烧烤类"}}},
		{Categories: []string{"烧烤类"}, Items: []menu.MenuItem{{Name: "热狗", Price: -2, Category: "烧烤类"}}},
	}

	for i, data := range bad {
		service := NewService(&stubClient{data: data}, nil)
		if _, err := service.Import(context.Background(), []byte("img"), "image/jpeg"); err == nil {
			t.Fatalf("case %d: expected rejection, got none", i)
		}
	}
}

func TestImport_NormalizesDuplicateIDs(t *testing.T) {
	data := menu.MenuData{
		Categories: []string{"烧烤类"},
		Items: []menu.MenuItem{
			{ID: "x", Name: "热狗", Price: 2, Category: "烧烤类"},
			{ID: "x", Name: "面筋", Price: 2, Category: "烧烤类"},
			{ID: "", Name: "白果", Price: 2, Category: "烧烤类"},
		},
	}
	service := NewService(&stubClient{data: data}, nil)

	candidate, err := service.Import(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, item := range candidate.Data.Items {
		if item.ID == "" {
			t.Fatalf("item %q still has empty id", item.Name)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate id %q survived normalization", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestImport_SingleFlight(t *testing.T) {
	client := &blockingClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	service := NewService(client, nil)

	done := make(chan error, 1)
	go func() {
		_, err := service.Import(context.Background(), []byte("img"), "image/jpeg")
		done <- err
	}()

	<-client.started

	// a second import while the first is pending must be rejected
	if _, err := service.Import(context.Background(), []byte("img"), "image/jpeg"); !errors.Is(err, ErrImportInFlight) {
		t.Fatalf("expected ErrImportInFlight, got %v", err)
	}

	close(client.release)
	if err := <-done; err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	// and allowed again once the first completes
	if _, err := service.Import(context.Background(), []byte("img"), "image/jpeg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImport_ArchiveFailureDoesNotFailImport(t *testing.T) {
	service := NewService(&stubClient{data: validData()}, failingArchive{})

	if _, err := service.Import(context.Background(), []byte("img"), "image/jpeg"); err != nil {
		t.Fatalf("archive failure leaked into import: %v", err)
	}
}

func TestImport_NotConfigured(t *testing.T) {
	service := NewService(nil, nil)

	if service.Enabled() {
		t.Fatal("expected service to report disabled")
	}
	if _, err := service.Import(context.Background(), []byte("img"), "image/jpeg"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
