package kiosk

// ViewState selects which of the three screens is active. Exactly one
// is active at a time; there is no history stack.
type ViewState string

const (
	ViewCatalog ViewState = "CATALOG"
	ViewBill    ViewState = "BILL"
	ViewAdmin   ViewState = "ADMIN"
)
