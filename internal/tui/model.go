package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pixelquest/internal/engine"
	"pixelquest/internal/storage"
	"pixelquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile    *storage.Profile
	tasks      []storage.Task
	categories []storage.Category

	collapsed map[int64]bool
	selected  int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile    *storage.Profile
	tasks      []storage.Task
	categories []storage.Category
	err        error
}

type toggledMsg struct {
	res *engine.ToggleTaskResult
	err error
}

type drewMsg struct {
	res *engine.DrawResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:       ctx,
		svc:       svc,
		collapsed: map[int64]bool{},
		loading:   true,
		lastLog:   "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.ProfileRepo().Get(m.ctx, storage.MainProfileKey)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		cats, err := m.svc.CategoryRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks, categories: cats}
	}
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) drawCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Draw(m.ctx)
		return drewMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		m.categories = msg.categories
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		r := msg.res.Result
		if r.Completed {
			m.lastLog = fmt.Sprintf("Done %q: +%d PT (streak %d)", msg.res.Task.Title, r.PointsDelta, r.Streak)
		} else {
			m.lastLog = fmt.Sprintf("Undone %q: %d PT", msg.res.Task.Title, r.PointsDelta)
		}
		return m, m.loadCmd()
	case drewMsg:
		if msg.err != nil {
			m.lastLog = "Draw failed: " + msg.err.Error()
			return m, nil
		}
		c := msg.res.Card
		m.lastLog = fmt.Sprintf("You got %s (%s) HP %d / ATK %d!", c.Name, c.Rarity, c.HP, c.ATK)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "g":
			m.lastLog = "Opening mystery box…"
			return m, m.drawCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.boardLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.isHeader {
				m.collapsed[line.categoryID] = !m.collapsed[line.categoryID]
				return m, nil
			}
			return m, m.toggleCmd(line.taskID)
		case "c", " ":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.isHeader {
				m.lastLog = "Select a task to toggle."
				return m, nil
			}
			return m, m.toggleCmd(line.taskID)
		}
	}
	return m, nil
}

type boardLine struct {
	isHeader   bool
	categoryID int64
	taskID     int64
	text       string
}

// boardLines flattens categories and their tasks into the visible rows,
// honoring per-category collapse. Empty categories are skipped.
func (m boardModel) boardLines() []boardLine {
	byCategory := map[int64][]storage.Task{}
	for _, t := range m.tasks {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}

	var out []boardLine
	for _, cat := range m.categories {
		tasks := byCategory[cat.ID]
		if len(tasks) == 0 {
			continue
		}
		fold := "▾"
		if m.collapsed[cat.ID] {
			fold = "▸"
		}
		out = append(out, boardLine{
			isHeader:   true,
			categoryID: cat.ID,
			text:       fmt.Sprintf("%s %s (%d)", fold, ui.CategoryText(cat.Name, cat.Color), len(tasks)),
		})
		if m.collapsed[cat.ID] {
			continue
		}
		for _, t := range tasks {
			box := "[ ]"
			title := t.Title
			if t.Completed {
				box = "[x]"
				title = ui.Muted.Render(title)
			}
			period := ""
			if t.Period == string(engine.PeriodOnce) {
				period = ui.Muted.Render(" (once)")
			}
			out = append(out, boardLine{
				taskID: t.ID,
				text:   fmt.Sprintf("  %s #%d %s %s%s", box, t.ID, title, ui.Muted.Render(fmt.Sprintf("+%d PT", t.Points)), period),
			})
		}
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	leftW := 24
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 16 {
			leftW = 16
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.profile == nil {
		return "PixelQuest | loading…"
	}
	// The bar fills over each 1000 PT.
	bar := progressBar(m.profile.TotalPoints%1000, 1000, 30)
	return fmt.Sprintf("PixelQuest | %s | %d PT %s | %s %d",
		m.profile.Name, m.profile.TotalPoints, bar, ui.IconStreak, m.profile.Streak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Keys"}
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: fold / toggle")
	lines = append(lines, "- c/space: toggle task")
	lines = append(lines, "- g: draw a card")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	lines = append(lines, "")
	lines = append(lines, "Gacha")
	lines = append(lines, fmt.Sprintf("- cost: %d PT", engine.DrawCost))
	if m.profile != nil {
		affordable := m.profile.TotalPoints / engine.DrawCost
		lines = append(lines, fmt.Sprintf("- draws left: %d", affordable))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{"Tasks"}
	lines := m.boardLines()
	if len(lines) == 0 {
		out = append(out, "(no tasks yet; pq add \"First quest\")")
		return strings.Join(out, "\n")
	}
	for i, l := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, cursor+l.text)
	}
	return strings.Join(out, "\n")
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
