package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
	"github.com/EdoardoGruppi/Watch-Movies/internal/tui/styles"
)

// View implements tea.Model
func (m Model) View() string {
	var body string
	switch m.state {
	case StateSearch:
		body = m.searchView()
	case StateResults:
		body = m.resultsView()
	case StateDetails:
		body = m.detailsView()
	case StateOffers:
		body = m.offersView()
	case StateHelp:
		body = m.helpView()
	}

	sections := []string{m.headerView(), body}
	if m.err != nil {
		sections = append(sections, styles.ErrorStyle.Render("error: "+m.err.Error()))
	}
	sections = append(sections, m.footerView())
	return strings.Join(sections, "\n")
}

func (m Model) headerView() string {
	title := styles.HeaderStyle.Render("Watch Movies")
	if m.loading {
		return title + " " + m.spin.View() + styles.DimStyle.Render(" loading...")
	}
	if m.query != "" && m.state != StateSearch {
		return title + styles.DimStyle.Render("  ·  "+m.query)
	}
	return title
}

func (m Model) footerView() string {
	var hints []string
	switch m.state {
	case StateSearch:
		hints = []string{"enter search", "esc back"}
	case StateResults:
		if m.filtering {
			hints = []string{"enter apply", "esc clear"}
		} else {
			hints = []string{"enter details", "o offers", "f filter", "s search", "r refresh", "? help", "q quit"}
		}
	case StateDetails:
		hints = []string{"o offers", "h back", "s search", "q quit"}
	case StateOffers:
		hints = []string{"j/k scroll", "r refresh", "h back", "q quit"}
	case StateHelp:
		hints = []string{"any key to return"}
	}
	return styles.FooterStyle.Render(strings.Join(hints, "  ·  "))
}

func (m Model) searchView() string {
	prompt := styles.TitleStyle.Render("Search the streaming catalog")
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		prompt,
		"",
		styles.ActiveBorder.Padding(0, 1).Render(m.input.View()),
	)
}

func (m Model) resultsView() string {
	if len(m.visible) == 0 {
		notice := styles.DimStyle.Render("No results.")
		if m.filterInput.Value() != "" {
			notice = styles.DimStyle.Render("No results match the filter.")
		}
		if m.filtering {
			return m.filterInput.View() + "\n\n" + notice
		}
		return "\n" + notice
	}

	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}
	for i := start; i < end; i++ {
		entry := m.visible[i]
		line := resultLine(entry)
		if i == m.cursor {
			b.WriteString(styles.HighlightStyle.Render(line))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.visible))))
	return b.String()
}

func resultLine(entry domain.MediaEntry) string {
	parts := []string{entry.Title}
	if year := entry.YearString(); year != "" {
		parts = append(parts, styles.SubtitleStyle.Render("("+year+")"))
	}
	kind := "movie"
	if entry.ObjectType == domain.ObjectTypeShow {
		kind = "show"
	}
	parts = append(parts, styles.DimStyle.Render(kind))
	if entry.Scoring != nil && entry.Scoring.IMDBScore != nil {
		parts = append(parts, styles.AccentStyle.Render(fmt.Sprintf("★ %.1f", *entry.Scoring.IMDBScore)))
	}
	return strings.Join(parts, " ")
}

func (m Model) detailsView() string {
	entry := m.selected
	if entry == nil {
		return styles.DimStyle.Render("Nothing selected.")
	}

	var b strings.Builder
	title := entry.Title
	if year := entry.YearString(); year != "" {
		title += " (" + year + ")"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	var meta []string
	if runtime := entry.FormattedRuntime(); runtime != "" {
		meta = append(meta, runtime)
	}
	if genres := entry.GenreList(); genres != "" {
		meta = append(meta, genres)
	}
	if entry.AgeCertification != nil {
		meta = append(meta, *entry.AgeCertification)
	}
	if len(meta) > 0 {
		b.WriteString(styles.SubtitleStyle.Render(strings.Join(meta, "  ·  ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s := entry.Scoring; s != nil {
		var scores []string
		if s.IMDBScore != nil {
			score := fmt.Sprintf("IMDB %.1f", *s.IMDBScore)
			if s.IMDBVotes != nil {
				score += fmt.Sprintf(" (%d votes)", *s.IMDBVotes)
			}
			scores = append(scores, score)
		}
		if s.TMDBScore != nil {
			scores = append(scores, fmt.Sprintf("TMDB %.1f", *s.TMDBScore))
		}
		if s.TomatoMeter != nil {
			scores = append(scores, fmt.Sprintf("Tomatoes %d%%", *s.TomatoMeter))
		}
		if s.JWRating != nil {
			scores = append(scores, fmt.Sprintf("JW %.0f%%", *s.JWRating*100))
		}
		if len(scores) > 0 {
			b.WriteString(styles.AccentStyle.Render(strings.Join(scores, "   ")))
			b.WriteString("\n")
		}
	}

	if c := entry.StreamingCharts; c != nil {
		arrow := c.TrendArrow()
		trend := styles.TrendFlatStyle
		switch c.Trend {
		case "UP":
			trend = styles.TrendUpStyle
		case "DOWN":
			trend = styles.TrendDownStyle
		}
		b.WriteString(trend.Render(fmt.Sprintf("%s #%d in charts (top %d)", arrow, c.Rank, c.TopRank)))
		b.WriteString("\n")
	}

	if entry.ShortDescription != "" {
		b.WriteString("\n")
		width := m.width - 4
		if width <= 0 || width > 100 {
			width = 100
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Render(entry.ShortDescription))
		b.WriteString("\n")
	}

	if len(entry.Offers) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("Where to watch"))
		b.WriteString("\n")
		for _, offer := range entry.Offers {
			line := fmt.Sprintf("  %s  %s  %s",
				offer.Package.Name,
				strings.ToLower(offer.MonetizationType),
				offer.FormattedPrice())
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) offersView() string {
	if m.selected == nil {
		return styles.DimStyle.Render("Nothing selected.")
	}
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Offers for " + m.selected.Title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.DimStyle.Render("No offers in any selected country."))
		return b.String()
	}

	height := m.listHeight()
	end := m.offerCursor + height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for _, row := range m.rows[m.offerCursor:end] {
		b.WriteString(styles.HeaderStyle.Render(row.CountryName))
		b.WriteString("\n")
		if len(row.Offers) == 0 {
			b.WriteString(styles.DimStyle.Render("  not available"))
			b.WriteString("\n")
			continue
		}
		for _, service := range m.services {
			offer, ok := row.Offers[service]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  %-24s %-10s %s\n",
				service,
				strings.ToLower(offer.MonetizationType),
				offer.FormattedPrice()))
		}
	}
	if len(m.rows) > height {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("countries %d-%d of %d", m.offerCursor+1, end, len(m.rows))))
	}
	return b.String()
}

func (m Model) helpView() string {
	keys := []struct{ key, desc string }{
		{"enter", "open selected title"},
		{"o", "compare offers across countries"},
		{"f", "filter loaded results"},
		{"s or /", "start a new search"},
		{"r", "refetch, bypassing the cache"},
		{"j/k", "move selection"},
		{"g/G", "jump to top/bottom"},
		{"h", "go back"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentStyle.Render(fmt.Sprintf("%-8s", k.key)),
			k.desc))
	}
	return b.String()
}

// listHeight is the number of body lines available for lists
func (m Model) listHeight() int {
	height := m.height - 4
	if height < 5 {
		height = 10
	}
	return height
}

// maxOfferScroll bounds vertical scrolling through the comparison rows
func maxOfferScroll(rows, height int) int {
	visible := height - 4
	if visible < 5 {
		visible = 10
	}
	max := rows - visible
	if max < 0 {
		return 0
	}
	return max
}
