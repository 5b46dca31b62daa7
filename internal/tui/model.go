package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"petal/internal/store"
	"petal/internal/task"
	"petal/internal/ui"
	"petal/internal/xp"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeAdd
)

// addField is the focused field of the add line: text, then time, then
// category.
type addField int

const (
	fieldText addField = iota
	fieldTime
	fieldCategory
)

type boardModel struct {
	ctx context.Context
	st  *store.Store

	width  int
	height int

	selected int
	mode     inputMode

	// search state
	searchBuf  string
	searchPrev string

	// add-line state
	field       addField
	draftText   string
	draftTime   string
	timeOptions []string
	timeIdx     int
	categoryIdx int

	lastLog string
}

func newBoardModel(ctx context.Context, st *store.Store) boardModel {
	return boardModel{
		ctx:         ctx,
		st:          st,
		timeOptions: task.TimeOptions(),
		timeIdx:     -1,
		lastLog:     "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg), nil
		case modeAdd:
			return m.updateAdd(msg), nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m boardModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if rows := m.taskRows(); m.selected < len(rows)-1 {
			m.selected++
		}
	case "c", " ":
		rows := m.taskRows()
		if m.selected >= 0 && m.selected < len(rows) {
			t, ok := m.st.ToggleDone(m.ctx, rows[m.selected].ID)
			if ok && t.Done {
				m.lastLog = fmt.Sprintf("Done: %s (+%d XP, level %d)", t.Text, xp.PerTask, m.st.Level())
			} else if ok {
				m.lastLog = fmt.Sprintf("Reopened: %s (-%d XP)", t.Text, xp.PerTask)
			}
		}
	case "x", "d":
		rows := m.taskRows()
		if m.selected >= 0 && m.selected < len(rows) {
			if t, ok := m.st.Remove(m.ctx, rows[m.selected].ID); ok {
				m.lastLog = "Deleted: " + t.Text
			}
		}
		m = m.clampSelection()
	case "C":
		n := m.st.ClearCompleted(m.ctx)
		m.lastLog = fmt.Sprintf("Cleared %d completed.", n)
		m = m.clampSelection()
	case "u":
		m.st.SetShowOnlyUnfinished(!m.st.ShowOnlyUnfinished())
		if m.st.ShowOnlyUnfinished() {
			m.lastLog = "Showing only unfinished."
		} else {
			m.lastLog = "Showing all tasks."
		}
		m = m.clampSelection()
	case "t":
		if m.st.ToggleTheme(m.ctx) {
			m.lastLog = "Dark theme."
		} else {
			m.lastLog = "Light theme."
		}
	case "/":
		m.mode = modeSearch
		m.searchPrev = m.st.FilterQuery()
		m.searchBuf = m.searchPrev
	case "a":
		m.mode = modeAdd
		m.field = fieldText
	case "r":
		if err := m.st.Load(m.ctx); err != nil {
			m.lastLog = "Reload failed: " + err.Error()
		} else {
			m.lastLog = "Reloaded."
		}
	}
	return m, nil
}

func (m boardModel) updateSearch(msg tea.KeyMsg) boardModel {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.lastLog = "Filter applied."
		m = m.clampSelection()
	case "esc":
		m.searchBuf = m.searchPrev
		m.st.SetFilterQuery(m.searchPrev)
		m.mode = modeNormal
	case "backspace":
		if len(m.searchBuf) > 0 {
			r := []rune(m.searchBuf)
			m.searchBuf = string(r[:len(r)-1])
			m.st.SetFilterQuery(m.searchBuf)
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.searchBuf += string(msg.Runes)
			m.st.SetFilterQuery(m.searchBuf)
		}
	}
	return m
}

func (m boardModel) updateAdd(msg tea.KeyMsg) boardModel {
	switch msg.String() {
	case "esc":
		m = m.resetDraft()
		m.mode = modeNormal
	case "tab":
		m.field = (m.field + 1) % 3
	case "shift+tab":
		m.field = (m.field + 2) % 3
	case "up":
		switch m.field {
		case fieldTime:
			if m.timeIdx > 0 {
				m.timeIdx--
				m.draftTime = m.timeOptions[m.timeIdx]
			}
		case fieldCategory:
			m.categoryIdx = (m.categoryIdx + len(task.Categories) - 1) % len(task.Categories)
		}
	case "down":
		switch m.field {
		case fieldTime:
			if m.timeIdx < len(m.timeOptions)-1 {
				m.timeIdx++
				m.draftTime = m.timeOptions[m.timeIdx]
			}
		case fieldCategory:
			m.categoryIdx = (m.categoryIdx + 1) % len(task.Categories)
		}
	case "backspace":
		switch m.field {
		case fieldText:
			if len(m.draftText) > 0 {
				r := []rune(m.draftText)
				m.draftText = string(r[:len(r)-1])
			}
		case fieldTime:
			if len(m.draftTime) > 0 {
				m.draftTime = m.draftTime[:len(m.draftTime)-1]
				m.timeIdx = -1
			}
		}
	case "enter":
		// Invalid clock input reverts to unset rather than entering the
		// task; blank text is silently ignored.
		draft := store.Draft{
			Text:     m.draftText,
			Time:     task.NormalizeTime(m.draftTime),
			Category: task.Categories[m.categoryIdx].ID,
		}
		if t, added := m.st.Add(m.ctx, draft); added {
			m.lastLog = "Added: " + t.Text
		} else {
			m.lastLog = "Nothing to add."
		}
		m = m.resetDraft()
		m.mode = modeNormal
	default:
		if msg.Type == tea.KeyRunes {
			switch m.field {
			case fieldText:
				m.draftText += string(msg.Runes)
			case fieldTime:
				m.draftTime += string(msg.Runes)
				m.timeIdx = -1
			}
		}
	}
	return m
}

// resetDraft restores the add line to its defaults, the observable side
// effect of a successful add.
func (m boardModel) resetDraft() boardModel {
	m.draftText = ""
	m.draftTime = ""
	m.timeIdx = -1
	m.categoryIdx = 0
	return m
}

func (m boardModel) clampSelection() boardModel {
	if rows := m.taskRows(); m.selected >= len(rows) {
		m.selected = len(rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

// taskRows flattens the grouped view into the selectable task rows, in
// display order.
func (m boardModel) taskRows() []task.Task {
	grouped := m.st.View()
	var rows []task.Task
	for _, key := range grouped.Keys {
		rows = append(rows, grouped.Tasks(key)...)
	}
	return rows
}

func (m boardModel) View() string {
	styles := ui.NewStyles(m.st.Dark())
	var b strings.Builder

	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine(styles))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard(styles))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))
	return b.String()
}

func (m boardModel) renderHeader(styles ui.Styles) string {
	total := len(m.st.Tasks())
	theme := ui.IconSun
	if m.st.Dark() {
		theme = ui.IconMoon
	}
	return fmt.Sprintf("%s  %s  %s %s  %s",
		styles.Heading(ui.IconTask, "Petal"),
		styles.Muted.Render(fmt.Sprintf("%d total", total)),
		styles.Key.Render(fmt.Sprintf("Lv %d • %d XP", m.st.Level(), m.st.XP())),
		styles.ProgressBar(m.st.Progress(), 20),
		theme,
	)
}

func (m boardModel) renderFilterLine(styles ui.Styles) string {
	switch m.mode {
	case modeSearch:
		return styles.Key.Render("/") + m.searchBuf + styles.Selected.Render(" ")
	case modeAdd:
		cat := task.Categories[m.categoryIdx]
		text := m.draftText
		timeStr := m.draftTime
		catStr := cat.Emoji + " " + cat.Label
		switch m.field {
		case fieldText:
			text = styles.Selected.Render(text + " ")
		case fieldTime:
			timeStr = styles.Selected.Render(timeStr + " ")
		case fieldCategory:
			catStr = styles.Selected.Render(catStr)
		}
		if timeStr == "" {
			timeStr = styles.Muted.Render("HH:MM")
		}
		return fmt.Sprintf("%s %s  %s %s  %s %s",
			styles.Key.Render("New:"), text,
			styles.Key.Render(ui.IconClock), timeStr,
			styles.Key.Render("in"), catStr)
	}

	var parts []string
	if q := m.st.FilterQuery(); q != "" {
		parts = append(parts, styles.Key.Render("filter:")+" "+q)
	}
	if m.st.ShowOnlyUnfinished() {
		parts = append(parts, styles.Warn.Render("unfinished only"))
	}
	if len(parts) == 0 {
		return styles.Muted.Render("a: add  /: search  u: unfinished  c/space: toggle  x: delete  C: clear  t: theme  q: quit")
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) renderBoard(styles ui.Styles) string {
	grouped := m.st.View()
	var sections []string
	row := 0
	for _, key := range grouped.Keys {
		items := grouped.Tasks(key)
		label, emoji := key, ""
		if c := task.CategoryByID(key); c != nil {
			label, emoji = c.Label, c.Emoji
		}
		var lines []string
		lines = append(lines, styles.H2.Render(strings.TrimSpace(emoji+" "+label))+" "+styles.Muted.Render(fmt.Sprintf("%d", len(items))))
		if len(items) == 0 {
			lines = append(lines, styles.Muted.Render("Empty"))
		}
		for _, t := range items {
			line := fmt.Sprintf("%s %s %s %s",
				styles.ColorEdge(t.Color),
				styles.Checkbox(t.Done),
				styles.StrikeIf(t.Done, t.Text),
				styles.PriorityBadge(t.Priority))
			if t.Date != "" {
				line += " " + styles.Muted.Render(ui.IconDate+" "+task.FormatDisplayDate(t.Date))
			}
			if t.Time != "" {
				line += " " + styles.Muted.Render(ui.IconClock+" "+t.Time)
			}
			if row == m.selected && m.mode == modeNormal {
				line = styles.Selected.Render("▸") + " " + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
			row++
		}
		sections = append(sections, styles.Card.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(sections, "\n")
}

func (m boardModel) renderFooter(styles ui.Styles) string {
	return styles.Muted.Render(m.lastLog)
}
