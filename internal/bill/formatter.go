package bill

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chedan888/BBQ/internal/cart"
	"github.com/chedan888/BBQ/internal/menu"
)

// ShopName is printed at the top of every exported bill.
const ShopName = "大森林炭火烧烤"

const separator = "--------------------"

// Line is one priced row of the bill.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Summary is the fully computed bill.
type Summary struct {
	Lines      []Line  `json:"lines"`
	TotalCount int     `json:"total_count"`
	GrandTotal float64 `json:"grand_total"`
}

// Build walks the ledger in insertion order and prices each entry
// against the catalog. Entries whose item has since been deleted are
// dropped silently and contribute nothing to the totals.
func Build(ledger cart.Ledger, catalog menu.MenuData) Summary {
	summary := Summary{Lines: []Line{}}

	for _, entry := range ledger.Entries() {
		item, ok := catalog.ItemByID(entry.ItemID)
		if !ok {
			continue
		}
		line := Line{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  entry.Quantity,
			LineTotal: item.Price * float64(entry.Quantity),
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalCount += entry.Quantity
		summary.GrandTotal += line.LineTotal
	}
	return summary
}

// RenderText produces the clipboard export. Operators paste this into
// a chat app, so the line shapes and labels are a compatibility
// contract and must not change.
func RenderText(summary Summary, spice SpiceLevel, at time.Time) string {
	var b strings.Builder

	b.WriteString(ShopName + "\n")
	b.WriteString(at.Format("2006-01-02") + " " + at.Format("15:04") + "\n")
	b.WriteString("辣度: " + spice.Label() + "\n")
	b.WriteString(separator + "\n")

	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "%s x%d   ¥%s\n", line.Name, line.Quantity, FormatPrice(line.LineTotal))
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "总数量: %d\n", summary.TotalCount)
	fmt.Fprintf(&b, "总计: ¥%s\n", FormatPrice(summary.GrandTotal))

	return b.String()
}

// FormatPrice prints whole yuan without decimals, otherwise up to two.
func FormatPrice(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
