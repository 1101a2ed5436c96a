package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/txdash/transactions-dashboard/internal/dto"
)

const barWidth = 40

// RenderTable writes the transactions table with its pagination footer.
func RenderTable(w io.Writer, result dto.ListResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tSOLD\tCATEGORY\tDATE")
	for _, tx := range result.Data {
		category := tx.Category
		if category == "" {
			category = "-"
		}
		sold := "no"
		if tx.Sold {
			sold = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			tx.TransactionID, tx.Title, tx.Price, sold, category, tx.Date.Format("2006-01-02"))
	}
	tw.Flush()

	md := result.Metadata
	fmt.Fprintf(w, "page %d/%d, %d records\n", md.CurrentPage, md.TotalPages, md.TotalRecords)
}

// RenderStatistics writes the monthly statistics box.
func RenderStatistics(w io.Writer, result dto.StatisticsResult) {
	fmt.Fprintf(w, "Statistics %s-%s\n", result.Year, result.Month)
	fmt.Fprintf(w, "  total sale amount: %.2f\n", result.Statistics.TotalSaleAmount)
	fmt.Fprintf(w, "  sold items:        %d\n", result.Statistics.TotalSoldItems)
	fmt.Fprintf(w, "  not sold items:    %d\n", result.Statistics.TotalNotSoldItems)
}

// RenderBarChart writes the price histogram as horizontal bars scaled to the
// largest bucket.
func RenderBarChart(w io.Writer, result dto.BarChartResult) {
	max := 0
	for _, b := range result.Data {
		if b.Count > max {
			max = b.Count
		}
	}

	fmt.Fprintf(w, "Price buckets, month %s\n", result.Month)
	for _, b := range result.Data {
		bar := ""
		if max > 0 && b.Count > 0 {
			n := b.Count * barWidth / max
			if n == 0 {
				n = 1
			}
			bar = strings.Repeat("#", n)
		}
		fmt.Fprintf(w, "  %-10s %-*s %d\n", b.Label, barWidth, bar, b.Count)
	}
}

// RenderCategories writes the category breakdown.
func RenderCategories(w io.Writer, result dto.PieChartResult) {
	fmt.Fprintf(w, "Categories, month %s\n", result.Month)
	for _, c := range result.Data {
		fmt.Fprintf(w, "  %-20s %d\n", c.Category, c.Count)
	}
}

// RenderSnapshot writes the whole dashboard in reading order: table,
// statistics box, charts.
func RenderSnapshot(w io.Writer, snap Snapshot) {
	RenderTable(w, snap.Transactions)
	fmt.Fprintln(w)
	RenderStatistics(w, snap.Statistics)
	fmt.Fprintln(w)
	RenderBarChart(w, snap.BarChart)
	fmt.Fprintln(w)
	RenderCategories(w, snap.PieChart)
}
