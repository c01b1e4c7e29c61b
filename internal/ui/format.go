package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/five82/smartcart/internal/cart"
)

func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func pounds(d decimal.Decimal) string {
	return d.StringFixed(2) + " lb"
}

// lineDetail is the quantity column of a cart row.
func lineDetail(l cart.Line) string {
	if l.Weighed() && l.Weight.Valid {
		return pounds(l.Weight.Decimal)
	}
	if l.Weighed() {
		return "weighed"
	}
	return "qty " + decimal.NewFromInt(int64(l.Quantity)).String()
}

// truncate shortens s to width cells, ending with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// row lays out left and right text across width cells.
func row(left, right string, width int) string {
	rw := lipgloss.Width(right)
	left = truncate(left, width-rw-1)
	return padRight(left, width-rw) + right
}
