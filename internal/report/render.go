package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	return table
}

// RenderAgents writes the agents-with-offices rows as a text table.
func RenderAgents(w io.Writer, rows []AgentOfficeRow) {
	table := newTable(w, []string{"Agent", "Office"})
	for _, r := range rows {
		table.Append([]string{r.AgentName, r.OfficeAddress})
	}
	table.Render()
}

// RenderSales writes the sales-with-names rows as a text table.
func RenderSales(w io.Writer, rows []SaleRow) {
	table := newTable(w, []string{"Listing", "Seller", "Buyer", "Agent", "Sale Price"})
	for _, r := range rows {
		table.Append([]string{r.ListingAddress, r.SellerName, r.BuyerName, r.AgentName, money(r.SalePrice)})
	}
	table.Render()
}

// RenderCommissionTotals writes the per-agent commission sums as a text table.
func RenderCommissionTotals(w io.Writer, rows []CommissionTotalRow) {
	table := newTable(w, []string{"Agent", "Total Commission"})
	for _, r := range rows {
		table.Append([]string{r.AgentName, money(r.Total)})
	}
	table.Render()
}

// RenderOfficeSales writes the top-offices-by-sales rows as a text table.
func RenderOfficeSales(w io.Writer, rows []OfficeSalesRow) {
	table := newTable(w, []string{"Office ID", "Address", "Sales"})
	for _, r := range rows {
		table.Append([]string{strconv.FormatUint(uint64(r.OfficeID), 10), r.OfficeAddress, strconv.FormatInt(r.SalesCount, 10)})
	}
	table.Render()
}

// RenderAgentSales writes the top-agents-by-sales rows as a text table.
func RenderAgentSales(w io.Writer, rows []AgentSalesRow) {
	table := newTable(w, []string{"Agent ID", "Name", "Email", "Phone", "Sales"})
	for _, r := range rows {
		table.Append([]string{strconv.FormatUint(uint64(r.AgentID), 10), r.AgentName, r.AgentEmail, r.AgentPhone, strconv.FormatInt(r.SalesCount, 10)})
	}
	table.Render()
}

// RenderMonthlyCommissions writes the monthly rollup rows as a text table.
func RenderMonthlyCommissions(w io.Writer, rows []MonthlyCommissionRow) {
	table := newTable(w, []string{"Agent ID", "Name", "Total Commission"})
	for _, r := range rows {
		table.Append([]string{strconv.FormatUint(uint64(r.AgentID), 10), r.AgentName, money(r.Amount)})
	}
	table.Render()
}
