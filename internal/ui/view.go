package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/smartcart/internal/catalog"
)

const miniCartLines = 3

// View renders the active screen between the header and the help footer.
func (m Model) View() string {
	styles := m.theme.Styles()

	var body string
	switch m.screen {
	case screenProduce:
		body = m.renderProduce(styles)
	case screenWeigh:
		body = m.renderWeigh(styles)
	case screenGuide:
		body = styles.Panel.Width(m.width - 4).Render(m.guide.view(styles))
	case screenCheckout:
		body = m.renderCheckout(styles)
	default:
		body = m.renderHome(styles)
	}

	if m.scaleErrorMsg != "" {
		return m.renderScaleError(styles)
	}

	footer := m.help.View(m.currentHelp())
	if m.help.ShowAll && m.screen == screenHome {
		footer += "\n" + shortcutLegend(styles)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		body,
		styles.Footer.Width(m.width).Render(footer),
	)
}

func (m Model) renderHeader(styles Styles) string {
	snap := m.snapshot
	parts := []string{
		styles.Logo.Render("smartcart"),
		styles.MutedText.Render("Items:") + " " + styles.Text.Render(fmt.Sprintf("%d", snap.ItemCount)),
		styles.MutedText.Render("Subtotal:") + " " + styles.Text.Render(money(snap.Subtotal)),
	}
	if snap.ItemCount > 0 {
		parts = append(parts, styles.SuccessText.Render("You saved "+money(snap.Savings)))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderHome(styles Styles) string {
	catWidth := m.width / 2
	cartWidth := m.width - catWidth

	catalogPanel := styles.Panel
	cartPanel := styles.Panel
	if m.cartOpen {
		cartPanel = styles.PanelFocus
	} else {
		catalogPanel = styles.PanelFocus
	}

	left := catalogPanel.Width(catWidth - 4).Render(m.renderCatalog(styles, catWidth-6))
	right := cartPanel.Width(cartWidth - 4).Render(m.renderCart(styles, cartWidth-6))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderCatalog(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Catalog"))
	b.WriteString("\n")
	for i, it := range m.general {
		line := row(it.Title+" · "+it.WeightLabel, money(it.UnitPrice), width)
		if i == m.cursor && !m.cartOpen {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCart(styles Styles, width int) string {
	snap := m.snapshot
	var b strings.Builder

	title := "Cart"
	if !m.cartOpen {
		title = "Cart (c to expand)"
	}
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")

	if snap.IsEmpty() {
		b.WriteString(styles.MutedText.Render("Your cart is empty. Scan an item or press p for produce."))
		return b.String()
	}

	lines := snap.Lines
	if !m.cartOpen && len(lines) > miniCartLines {
		lines = lines[:miniCartLines]
	}
	for i, l := range lines {
		left := fmt.Sprintf("%s  %s", l.Item.Title, lineDetail(l))
		line := row(left, money(l.Total()), width)
		switch {
		case l.ID == snap.RecentlyAddedID:
			line = styles.Highlight.Render(line)
		case m.cartOpen && i == m.cartCursor:
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if hidden := len(snap.Lines) - len(lines); hidden > 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("+%d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(row("Subtotal", money(snap.Subtotal), width))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render(row("Savings", money(snap.Savings), width)))
	return b.String()
}

func (m Model) renderProduce(styles Styles) string {
	width := m.width - 6
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Produce"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(styles.MutedText.Render("No produce matches your search."))
	}
	for i, it := range m.results {
		line := row(it.Title+" · "+it.Barcode, money(it.UnitPrice)+" / lb", width)
		if i == m.resultCursor {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return styles.PanelFocus.Width(m.width - 4).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderWeigh(styles Styles) string {
	s := m.session
	if s == nil {
		return ""
	}
	width := m.width - 6

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(s.Item.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(money(s.Item.UnitPrice) + " per lb"))
	b.WriteString("\n\n")

	weight := "--"
	if s.Weight.IsPositive() {
		weight = pounds(s.Weight)
	}
	price := money(s.Price)
	if !s.Settled && s.Weight.IsPositive() {
		price = m.spinner.View() + " settling"
	}
	b.WriteString(row("Weight", weight, width))
	b.WriteString("\n")
	b.WriteString(row("Total price", price, width))
	b.WriteString("\n\n")

	if s.CanConfirm() {
		b.WriteString(styles.SuccessText.Render("Press enter to confirm and add to cart"))
	} else {
		b.WriteString(styles.MutedText.Render("Place the item in the cart and press w to weigh"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("e-d=0.01 lb • Min: %s lb • Max: %s lb", m.scale.Min().StringFixed(2), m.scale.Max().StringFixed(2))))

	return styles.PanelFocus.Width(m.width - 4).Render(b.String())
}

func (m Model) renderCheckout(styles Styles) string {
	snap := m.snapshot
	width := m.width - 6
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Checkout"))
	b.WriteString("\n\n")
	b.WriteString(row(fmt.Sprintf("%d items", snap.ItemCount), money(snap.Subtotal), width))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render(row("Savings", money(snap.Savings), width)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Payment is handled at the register. Press esc to keep shopping."))
	return styles.Panel.Width(m.width - 4).Render(b.String())
}

func (m Model) renderScaleError(styles Styles) string {
	box := styles.Modal.Width(min(60, m.width-4)).Render(
		styles.DangerText.Render("Scale error") + "\n\n" +
			m.scaleErrorMsg + "\n\n" +
			styles.MutedText.Render("Press enter to weigh again"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) currentHelp() helpKeys {
	k := m.keys
	switch m.screen {
	case screenProduce:
		sk := m.searchKeys
		return helpKeys{
			short: []key.Binding{sk.Up, sk.Down, sk.Add, sk.Back},
			full:  [][]key.Binding{{sk.Up, sk.Down}, {sk.Add, sk.Back, sk.Quit}},
		}
	case screenWeigh:
		return helpKeys{
			short: []key.Binding{k.Weigh, k.Confirm, k.Error, k.Back},
			full:  [][]key.Binding{{k.Weigh, k.Confirm}, {k.Error, k.Back, k.Quit}},
		}
	case screenGuide:
		return helpKeys{
			short: []key.Binding{k.Pause, k.Back},
			full:  [][]key.Binding{{k.Pause, k.Back, k.Quit}},
		}
	case screenCheckout:
		return helpKeys{short: []key.Binding{k.Back, k.Quit}, full: [][]key.Binding{{k.Back, k.Quit}}}
	}
	return helpKeys{
		short: []key.Binding{k.Add, k.Shortcut, k.Produce, k.Cart, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Add, k.Shortcut, k.Random},
			{k.Cart, k.Remove, k.Clear},
			{k.Produce, k.Guide, k.Checkout},
			{k.Theme, k.Help, k.Quit},
		},
	}
}

// shortcutLegend lists the number-key items for the help overlay.
func shortcutLegend(styles Styles) string {
	var parts []string
	for _, s := range catalog.Shortcuts() {
		parts = append(parts, styles.AccentText.Render(s.Key)+" "+styles.MutedText.Render(s.Description()))
	}
	return strings.Join(parts, "  ")
}
