package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/smartcart/internal/catalog"
)

// ListOptions select what PrintCatalog shows.
type ListOptions struct {
	Produce bool
	Query   string
}

// PrintCatalog writes the general catalog, or the produce list when
// opts.Produce is set, as a table filtered by opts.Query.
func PrintCatalog(w io.Writer, opts ListOptions) error {
	items := catalog.General()
	unit := ""
	if opts.Produce {
		items = catalog.Produce()
		unit = " / lb"
	}
	items = catalog.Search(items, opts.Query)
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "no items match %q\n", opts.Query)
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Barcode, it.Title, it.WeightLabel, "$" + it.UnitPrice.StringFixed(2) + unit})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("BARCODE", "ITEM", "SIZE", "PRICE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
