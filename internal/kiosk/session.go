package kiosk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chedan888/BBQ/internal/bill"
	"github.com/chedan888/BBQ/internal/cart"
	"github.com/chedan888/BBQ/internal/menu"
	"github.com/chedan888/BBQ/internal/menuimport"
)

var (
	ErrWrongView   = errors.New("operation not available in current view")
	ErrWrongPIN    = errors.New("wrong PIN")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrUnknownItem = errors.New("unknown menu item")
	ErrNoCandidate = errors.New("no matching import candidate")
)

// Session is the single kiosk session: it owns the catalog store, the
// cart ledger, the active view and the spice tag, and every mutation
// goes through one of its methods. The HTTP server is concurrent, so
// the state is guarded by a mutex even though logically there is only
// one visitor at a time.
type Session struct {
	mu sync.Mutex

	store    *menu.Store
	importer *menuimport.Service
	pin      string

	ledger    cart.Ledger
	view      ViewState
	spice     bill.SpiceLevel
	pinError  bool
	candidate *menuimport.Candidate

	now func() time.Time
}

func NewSession(store *menu.Store, importer *menuimport.Service, pin string) *Session {
	return &Session{
		store:    store,
		importer: importer,
		pin:      pin,
		ledger:   cart.NewLedger(),
		view:     ViewCatalog,
		spice:    bill.DefaultSpice,
		now:      time.Now,
	}
}

// --------------------------------------------------
// Read side
// --------------------------------------------------

func (s *Session) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Menu is readable from every view.
func (s *Session) Menu() menu.MenuData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Data()
}

// State is the summary the front end polls for its header and footer.
type State struct {
	View          ViewState       `json:"view"`
	TotalItems    int             `json:"total_items"`
	TotalPrice    float64         `json:"total_price"`
	Spice         bill.SpiceLevel `json:"spice"`
	PINError      bool            `json:"pin_error"`
	ImportEnabled bool            `json:"import_enabled"`
	CandidateID   string          `json:"candidate_id,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		View:          s.view,
		TotalItems:    s.ledger.TotalItems(),
		TotalPrice:    s.ledger.TotalPrice(s.store.Data()),
		Spice:         s.spice,
		PINError:      s.pinError,
		ImportEnabled: s.importer != nil && s.importer.Enabled(),
	}
	if s.candidate != nil {
		st.CandidateID = s.candidate.ID
	}
	return st
}

// --------------------------------------------------
// Cart (catalog view only)
// --------------------------------------------------

// UpdateCart applies a signed quantity delta to one item. Increments
// require the item to exist in the catalog; decrements of an absent
// entry simply do nothing.
func (s *Session) UpdateCart(itemID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewCatalog {
		return 0, ErrWrongView
	}
	if delta > 0 {
		if _, ok := s.store.ItemByID(itemID); !ok {
			return 0, ErrUnknownItem
		}
	}

	s.ledger = s.ledger.UpdateQuantity(itemID, delta)
	return s.ledger.Quantity(itemID), nil
}

// --------------------------------------------------
// View transitions
// --------------------------------------------------

// Checkout moves to the bill. Only enabled with something in the cart.
// The cart itself is never cleared by checking out; coming back to the
// catalog shows the same selection.
func (s *Session) Checkout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewCatalog {
		return ErrWrongView
	}
	if s.ledger.TotalItems() == 0 {
		return ErrEmptyCart
	}
	s.view = ViewBill
	return nil
}

func (s *Session) BackToCatalog() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewBill {
		return ErrWrongView
	}
	s.view = ViewCatalog
	return nil
}

// EnterAdmin gates the admin screen behind the shared PIN. The PIN is
// compared as plain text; this is cosmetic access control, not a
// security boundary. A mismatch sets a retained error flag so the
// modal can show it; a match clears the flag.
func (s *Session) EnterAdmin(pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewCatalog {
		return ErrWrongView
	}
	if pin != s.pin {
		s.pinError = true
		return ErrWrongPIN
	}
	s.pinError = false
	s.view = ViewAdmin
	return nil
}

func (s *Session) ExitAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewAdmin {
		return ErrWrongView
	}
	s.view = ViewCatalog
	return nil
}

// --------------------------------------------------
// Bill (bill view only)
// --------------------------------------------------

func (s *Session) Bill() (bill.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewBill {
		return bill.Summary{}, ErrWrongView
	}
	return bill.Build(s.ledger, s.store.Data()), nil
}

// ExportText renders the clipboard form of the current bill.
func (s *Session) ExportText() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewBill {
		return "", ErrWrongView
	}
	summary := bill.Build(s.ledger, s.store.Data())
	return bill.RenderText(summary, s.spice, s.now()), nil
}

// SetSpice picks the spice tag attached to exports. It does not
// affect pricing and is allowed from any view.
func (s *Session) SetSpice(level bill.SpiceLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spice = level
}

// --------------------------------------------------
// Menu administration (admin view only)
// --------------------------------------------------

func (s *Session) AddMenuItem(ctx context.Context, name string, price float64, category string) (menu.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewAdmin {
		return menu.MenuItem{}, ErrWrongView
	}
	return s.store.AddItem(ctx, name, price, category)
}

func (s *Session) RemoveMenuItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewAdmin {
		return ErrWrongView
	}
	return s.store.RemoveItem(ctx, id)
}

// --------------------------------------------------
// Menu import (admin view only)
// --------------------------------------------------

// ImportMenu runs an extraction and stashes the result as a pending
// candidate. The session lock is NOT held across the network round
// trip; the importer's own single-flight guard rejects overlapping
// requests instead.
func (s *Session) ImportMenu(ctx context.Context, image []byte, mimeType string) (*menuimport.Candidate, error) {
	s.mu.Lock()
	if s.view != ViewAdmin {
		s.mu.Unlock()
		return nil, ErrWrongView
	}
	importer := s.importer
	s.mu.Unlock()

	if importer == nil {
		return nil, menuimport.ErrNotConfigured
	}

	candidate, err := importer.Import(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the operator left the admin screen while the extraction was
	// running; drop the result rather than stash it unseen
	if s.view != ViewAdmin {
		return nil, ErrWrongView
	}
	s.candidate = candidate
	return candidate, nil
}

// ConfirmImport replaces the live catalog with a pending candidate.
// Nothing is applied without this explicit step.
func (s *Session) ConfirmImport(ctx context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewAdmin {
		return ErrWrongView
	}
	if s.candidate == nil || s.candidate.ID != candidateID {
		return ErrNoCandidate
	}

	if err := s.store.Replace(ctx, s.candidate.Data); err != nil {
		return err
	}
	s.candidate = nil
	return nil
}

// DiscardImport drops a pending candidate without applying it.
func (s *Session) DiscardImport(candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewAdmin {
		return ErrWrongView
	}
	if s.candidate == nil || s.candidate.ID != candidateID {
		return ErrNoCandidate
	}
	s.candidate = nil
	return nil
}
