package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/alexanderramin/atlas/internal/wordfreq"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type exploreTab int

const (
	tabHeatmap exploreTab = iota
	tabHomework
	tabCourses
)

var tabTitles = [...]string{"DEIB Heatmap", "Homework Balance", "Course Explorer"}

const (
	// tab bar + separator above, separator + hints below
	chromeLines = 4
	listWidth   = 32
)

type exploreKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Focus   key.Binding
	Reseed  key.Binding
	Quit    key.Binding
}

func defaultExploreKeys() exploreKeyMap {
	return exploreKeyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Focus:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus filter")),
		Reseed:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reseed")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the bottom bar.
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Up, k.Down, k.Focus, k.Reseed, k.Quit}
}

// scrollKeyMap limits the viewport to arrow and page keys so letters stay
// free for the explorer's own bindings.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// focusCycle is the order the focus filter steps through; "" shows every
// course.
var focusCycle = []domain.DEIBFocus{"", domain.FocusHigh, domain.FocusMedium, domain.FocusLow}

func nextFocus(f domain.DEIBFocus) domain.DEIBFocus {
	for i, c := range focusCycle {
		if c == f {
			return focusCycle[(i+1)%len(focusCycle)]
		}
	}
	return ""
}

type snapshotMsg struct {
	snap *domain.Snapshot
	err  error
}

// exploreModel is the tabbed explorer behind `atlas explore`.
type exploreModel struct {
	app  *App
	keys exploreKeyMap

	snap   *domain.Snapshot
	err    error
	tab    exploreTab
	cursor int
	focus  domain.DEIBFocus

	width  int
	height int
	vp     viewport.Model

	quitting bool
}

func newExploreModel(app *App) exploreModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeyMap()
	return exploreModel{app: app, keys: defaultExploreKeys(), vp: vp}
}

func (m exploreModel) Init() tea.Cmd {
	return m.load(nil)
}

// load fetches the memoized snapshot, reseeding first when seed is set.
func (m exploreModel) load(seed *int64) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if seed != nil {
			snap, err := app.Atlas.Reload(ctx, seed)
			return snapshotMsg{snap: snap, err: err}
		}
		snap, err := app.Atlas.Snapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(1, msg.Height-chromeLines)
		m.refresh()
		return m, nil

	case snapshotMsg:
		m.err = msg.err
		if msg.err == nil {
			m.snap = msg.snap
			m.cursor = min(m.cursor, max(0, len(m.courses())-1))
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := exploreTab(len(tabTitles))
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.setTab((m.tab + 1) % n)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.setTab((m.tab + n - 1) % n)
		return m, nil

	case key.Matches(msg, m.keys.Reseed):
		seed := m.app.now().UnixNano()
		return m, m.load(&seed)
	}

	if m.tab == tabCourses && m.snap != nil {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(0, m.cursor-1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(max(0, len(m.courses())-1), m.cursor+1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.focus = nextFocus(m.focus)
			m.cursor = 0
			m.refresh()
			m.vp.GotoTop()
			return m, nil
		}
	}

	// Page keys scroll the course card too.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *exploreModel) setTab(t exploreTab) {
	m.tab = t
	m.refresh()
	m.vp.GotoTop()
}

func (m *exploreModel) refresh() {
	m.vp.SetContent(m.body())
}

// courses returns the rows listed on the course tab under the focus filter.
func (m exploreModel) courses() []domain.EnrichedCourse {
	if m.snap == nil {
		return nil
	}
	var f domain.CourseFilter
	if m.focus != "" {
		f.Focus = []domain.DEIBFocus{m.focus}
	}
	return views.Filter(m.snap.Rows, f)
}

// selected returns the row under the course cursor.
func (m exploreModel) selected() (domain.EnrichedCourse, bool) {
	rows := m.courses()
	if m.cursor >= len(rows) {
		return domain.EnrichedCourse{}, false
	}
	return rows[m.cursor], true
}

func (m exploreModel) body() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	if m.snap == nil {
		return formatter.Dim("enriching catalog…")
	}

	rows := m.snap.Rows
	switch m.tab {
	case tabHeatmap:
		return formatter.FormatDEIBHeatmap(views.DEIBHierarchy(rows, false)) + "\n" +
			formatter.FormatDEIBTree(views.DEIBHierarchy(rows, true))
	case tabHomework:
		threshold := m.app.Config.WatchlistHours
		return formatter.FormatHomework(
			views.HomeworkDistribution(rows),
			views.RigorRelevance(rows),
			views.RigorRelevance(views.Watchlist(rows, threshold)),
			threshold,
		)
	default:
		return m.coursePanel()
	}
}

// coursePanel shows a windowed course list next to the card of the course
// under the cursor.
func (m exploreModel) coursePanel() string {
	rows := m.courses()
	r, ok := m.selected()
	if !ok {
		return formatter.Dim("no courses")
	}

	visible := len(rows)
	if m.height > 0 {
		visible = min(visible, max(3, m.height-chromeLines-1))
	}
	start := min(max(0, m.cursor-visible/2), len(rows)-visible)

	var list strings.Builder
	list.WriteString(formatter.Dim(fmt.Sprintf("focus: %s (%d)", focusLabel(m.focus), len(rows))) + "\n")
	for i := start; i < start+visible; i++ {
		name := formatter.Truncate(rows[i].Name, listWidth)
		if i == m.cursor {
			list.WriteString(formatter.StyleHeader.Render("▸ " + name))
		} else {
			list.WriteString("  " + formatter.FocusColor(rows[i].Focus).Render(name))
		}
		list.WriteString("\n")
	}

	left := lipgloss.NewStyle().Width(listWidth + 3).Render(strings.TrimRight(list.String(), "\n"))
	card := formatter.FormatCourseCard(r, wordfreq.TopK(r.Cohort.CommentCorpus, m.app.Config.TopWords))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, card)
}

func focusLabel(f domain.DEIBFocus) string {
	if f == "" {
		return "all"
	}
	return string(f)
}

func (m exploreModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderTabs()}
	if m.height > 0 {
		sections = append(sections, m.vp.View())
	} else {
		sections = append(sections, m.body())
	}
	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m exploreModel) renderTabs() string {
	tabs := []string{formatter.StylePurple.Render("atlas")}
	for i, title := range tabTitles {
		if exploreTab(i) == m.tab {
			tabs = append(tabs, formatter.StyleHeader.Underline(true).Render(title))
		} else {
			tabs = append(tabs, formatter.Dim(title))
		}
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return strings.Join(tabs, "  ") + "\n" + sep
}

func (m exploreModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if footer := formatter.SnapshotFooter(m.snap, m.app.now()); footer != "" {
		hints = append(hints, footer)
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
