package export

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/tokens"
	"github.com/renato0307/designkit/internal/ui"
)

var columnTitles = []string{"GROUP", "TOKEN", "VALUE"}

// Rows flattens t into group/name/value rows, in token declaration order.
func Rows(t tokens.DesignTokens) []table.Row {
	var rows []table.Row
	add := func(group, name, value string) {
		rows = append(rows, table.Row{group, name, value})
	}

	for _, role := range t.Colors.Roles() {
		add("colors", role.Name, fmt.Sprintf("light %s / dark %s", role.Color.Light, role.Color.Dark))
	}
	for _, s := range t.Typography.Styles() {
		add("typography", s.Name, fmt.Sprintf("%gpt %s %s", s.Style.Size, s.Style.Weight, s.Style.Design))
	}
	for _, step := range t.Spacing.Steps() {
		add("spacing", step.Name, fmt.Sprintf("%gpt", step.Value))
	}
	for _, step := range t.Radii.Steps() {
		add("radii", step.Name, fmt.Sprintf("%gpt", step.Value))
	}
	for _, tier := range t.Shadows.Tiers() {
		add("shadows", tier.Name, formatShadow(tier.Shadow))
	}

	add("glass", "tint", t.Glass.Tint.String())
	add("glass", "strongTint", t.Glass.StrongTint.String())
	add("glass", "border", t.Glass.Border.String())
	add("glass", "shadow", formatShadow(t.Glass.Shadow))

	return rows
}

func formatShadow(s tokens.ShadowToken) string {
	return fmt.Sprintf("%s r%g y%g", s.Color, s.Radius, s.Y)
}

// Table renders the rows of t as a bubbles table styled with styles.
func Table(t tokens.DesignTokens, styles *ui.Styles) string {
	rows := Rows(t)

	widths := make([]int, len(columnTitles))
	for i, title := range columnTitles {
		widths[i] = lipgloss.Width(title)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	columns := make([]table.Column, len(columnTitles))
	for i, title := range columnTitles {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	tableStyles := styles.ToTableStyles()
	// printed output has no cursor
	tableStyles.Selected = lipgloss.NewStyle()

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
		table.WithStyles(tableStyles),
	)
	return tbl.View()
}
