package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ширины терминала, с которых добавляется очередная колонка сетки.
var breakpoints = []int{60, 90, 120, 150, 180}

// columnsFor возвращает число колонок сетки (1..6) для ширины терминала.
func columnsFor(width int) int {
	cols := 1
	for _, bp := range breakpoints {
		if width >= bp {
			cols++
		}
	}
	return cols
}

// gridCard: содержимое одной карточки сетки.
type gridCard struct {
	title string
	body  string
}

// renderGrid раскладывает карточки по строкам; selected подсвечивается.
func renderGrid(cards []gridCard, width, selected int) string {
	cols := columnsFor(width)
	cardWidth := width/cols - 2
	if cardWidth < 16 {
		cardWidth = 16
	}

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			style := cardStyle
			if i == selected {
				style = selectedCardStyle
			}
			content := cardTitleStyle.Render(truncate(cards[i].title, cardWidth-4))
			if cards[i].body != "" {
				content += "\n" + mutedStyle.Render(truncate(cards[i].body, cardWidth-4))
			}
			cells = append(cells, style.Width(cardWidth).Render(content))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
