package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/service"
)

const minLaneWidth = 24

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewLanes())
	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Sprintdeck")
	if m.cfg.API.Project != "" {
		title += dimStyle.Render(" · " + m.cfg.API.Project)
	}
	if m.stale {
		title += "  " + staleStyle.Render("(cached — refreshing)")
	}
	if m.filterQuery != "" {
		title += "  " + dimStyle.Render(fmt.Sprintf("filter: %q", m.filterQuery))
	}
	return title
}

func (m Model) viewLanes() string {
	laneWidth := m.width/3 - 4
	if laneWidth < minLaneWidth {
		laneWidth = minLaneWidth
	}

	cols := make([]string, 0, 3)
	for i, lane := range board.Lanes() {
		cols = append(cols, m.viewLane(lane, i, laneWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) viewLane(lane board.Lane, idx, width int) string {
	items := m.visibleItems(lane)

	header := laneHeaderStyle.Render(lane.Title()) +
		laneCountStyle.Render(fmt.Sprintf(" (%d)", len(items)))

	lines := []string{header, ""}
	for row, it := range items {
		lines = append(lines, m.viewItem(it, lane, row, width))
	}
	if len(items) == 0 {
		lines = append(lines, dimStyle.Render("  —"))
	}

	style := laneStyle
	if m.drag.Active() && m.drag.Target() == lane {
		style = laneHoverStyle
	} else if idx == m.laneIdx {
		style = laneFocusStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewItem(it board.Item, lane board.Lane, row, width int) string {
	prefix := "  "
	if lane == m.currentLane() && row == m.rowIdx[lane] {
		prefix = cursorStyle.Render("> ")
	}

	marker := " "
	if m.pending.Has(it.ID) {
		marker = pendingStyle.Render("~")
	}

	bullet := prioStyle(it.Priority).Render("•")

	text := ansi.Truncate(it.Title, width-10, "…")
	if m.drag.Active() && m.drag.ItemID() == it.ID {
		text = grabbedStyle.Render(text)
	}

	line := fmt.Sprintf("%s%s%s %s", prefix, marker, bullet, text)
	if it.Assignee != "" && it.Assignee != "Unassigned" {
		line += dimStyle.Render(" · " + ansi.Truncate(it.Assignee, 16, "…"))
	}
	return line
}

func (m Model) viewStatusLine() string {
	if m.filtering {
		return m.filterInput.View()
	}
	if note, ok := m.notifier.Current(); ok {
		if note.Level == service.LevelError {
			return noteErrorStyle.Render(note.Text)
		}
		return noteSuccessStyle.Render(note.Text)
	}
	if m.drag.Active() {
		if it, ok := m.store.Find(m.drag.ItemID()); ok {
			return dimStyle.Render(fmt.Sprintf("moving %q — space to drop, esc to cancel", it.Title))
		}
	}
	return ""
}

func (m Model) viewFooter() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, dimStyle.Render(h.Desc)))
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}

func prioStyle(p board.Priority) lipgloss.Style {
	switch p {
	case board.PriorityHigh:
		return prioHighStyle
	case board.PriorityLow:
		return prioLowStyle
	}
	return prioMediumStyle
}
