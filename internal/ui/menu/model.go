package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gameplaydto "hypersomnia/internal/modules/gameplay/dto"
	playerdto "hypersomnia/internal/modules/player/dto"
	progressdto "hypersomnia/internal/modules/progress/dto"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type playerPort interface {
	Create(ctx context.Context, name string) (playerdto.CreatePlayerOutput, error)
	List(ctx context.Context) ([]playerdto.PlayerOutput, error)
	Select(ctx context.Context, id int64) (playerdto.PlayerOutput, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type gameplayPort interface {
	Continue(ctx context.Context, playerID int64) (gameplaydto.ContinueOutput, error)
}

type progressPort interface {
	Show(ctx context.Context, playerID int64) ([]progressdto.LevelProgressOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screen int

const (
	screenMain screen = iota
	screenNewGame
	screenLoad
	screenResume
)

type entry int

const (
	entryNewGame entry = iota
	entryLoadGame
	entryContinue
	entryQuit
	entryCount
)

var entryLabels = [entryCount]string{"New Game", "Load Game", "Continue", "Quit"}

// ─── async messages ──────────────────────────────────────────────────────────

type playersLoadedMsg struct {
	players []playerdto.PlayerOutput
	err     error
}

type playerCreatedMsg struct {
	out playerdto.CreatePlayerOutput
	err error
}

type playerSelectedMsg struct {
	player playerdto.PlayerOutput
	err    error
}

type resumeLoadedMsg struct {
	resume gameplaydto.ContinueOutput
	rows   []progressdto.LevelProgressOutput
	err    error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Back, k.Help, k.Quit},
	}
}

// ─── list item ───────────────────────────────────────────────────────────────

type playerItem struct {
	player playerdto.PlayerOutput
}

func (i playerItem) Title() string { return i.player.Name }
func (i playerItem) Description() string {
	return "last played " + i.player.LastPlayedAt.Format("2006-01-02 15:04")
}
func (i playerItem) FilterValue() string { return i.player.Name }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the main-menu flow: start a new game, load a saved player or
// continue with the selected one. It ends on a summary of the scene the
// game would load.
type Model struct {
	players  playerPort
	gameplay gameplayPort
	progress progressPort

	screen   screen
	cursor   entry
	name     textinput.Model
	roster   list.Model
	resume   gameplaydto.ContinueOutput
	rows     []progressdto.LevelProgressOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	failed   bool
	width    int
	height   int
}

func NewModel(players playerPort, gameplay gameplayPort, progress progressPort) Model {
	ti := textinput.New()
	ti.Placeholder = "player name"
	ti.CharLimit = 32
	ti.Prompt = "› "

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 48, 14)
	l.Title = "Load Game"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		players:  players,
		gameplay: gameplay,
		progress: progress,
		screen:   screenMain,
		name:     ti,
		roster:   l,
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.roster.SetSize(max(msg.Width-8, 20), max(msg.Height-8, 6))
		return m, nil

	case playersLoadedMsg:
		if msg.err != nil {
			m.setError("load players", msg.err)
			m.screen = screenMain
			return m, nil
		}
		if len(msg.players) == 0 {
			m.setStatus("no saved players")
			m.screen = screenMain
			return m, nil
		}
		items := make([]list.Item, len(msg.players))
		for i, p := range msg.players {
			items[i] = playerItem{player: p}
		}
		m.setStatus(fmt.Sprintf("%d saved players", len(msg.players)))
		cmd := m.roster.SetItems(items)
		return m, cmd

	case playerCreatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrDuplicateName) && !errors.Is(msg.err, apperrors.ErrInvalidInput) {
				m.setError("name taken", msg.err)
			} else {
				m.setError("create player", msg.err)
			}
			return m, nil
		}
		m.name.Reset()
		m.name.Blur()
		m.setStatus(fmt.Sprintf("created %s with %d levels", msg.out.Player.Name, msg.out.ProgressRows))
		return m, m.resumeCmd(msg.out.Player.ID)

	case playerSelectedMsg:
		if msg.err != nil {
			m.setError("select player", msg.err)
			return m, nil
		}
		m.setStatus("selected " + msg.player.Name)
		return m, m.resumeCmd(msg.player.ID)

	case resumeLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrNoPlayerSelected) {
				m.setError("no player selected, start a new game or load one", nil)
			} else {
				m.setError("continue", msg.err)
			}
			m.screen = screenMain
			return m, nil
		}
		m.resume = msg.resume
		m.rows = msg.rows
		m.screen = screenResume
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help, m.keys.Back) {
				m.showHelp = false
			}
			return m, nil
		}
		switch m.screen {
		case screenMain:
			return m.updateMain(msg)
		case screenNewGame:
			return m.updateNewGame(msg)
		case screenLoad:
			return m.updateLoad(msg)
		case screenResume:
			if key.Matches(msg, m.keys.Back, m.keys.Enter) {
				m.screen = screenMain
			}
			return m, nil
		}
	}

	if m.screen == screenLoad {
		var cmd tea.Cmd
		m.roster, cmd = m.roster.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + entryCount - 1) % entryCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % entryCount
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		switch m.cursor {
		case entryNewGame:
			m.screen = screenNewGame
			m.name.Reset()
			cmd := m.name.Focus()
			return m, cmd
		case entryLoadGame:
			m.screen = screenLoad
			return m, m.loadPlayersCmd()
		case entryContinue:
			return m, m.resumeCmd(0)
		case entryQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateNewGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.name.Blur()
		m.screen = screenMain
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		name := strings.TrimSpace(m.name.Value())
		if name == "" {
			m.setError("enter a name", nil)
			return m, nil
		}
		return m, m.createCmd(name)
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) updateLoad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.roster.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.screen = screenMain
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			item, ok := m.roster.SelectedItem().(playerItem)
			if !ok {
				return m, nil
			}
			return m, m.selectCmd(item.player.ID)
		}
	}
	var cmd tea.Cmd
	m.roster, cmd = m.roster.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(prefix string, err error) {
	m.failed = true
	if err == nil {
		m.status = prefix
		return
	}
	m.status = prefix + ": " + err.Error()
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadPlayersCmd() tea.Cmd {
	return func() tea.Msg {
		players, err := m.players.List(context.Background())
		return playersLoadedMsg{players: players, err: err}
	}
}

func (m Model) createCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		taken, err := m.players.NameExists(ctx, name)
		if err != nil {
			return playerCreatedMsg{err: err}
		}
		if taken {
			return playerCreatedMsg{err: fmt.Errorf("%w: %q", apperrors.ErrDuplicateName, name)}
		}
		out, err := m.players.Create(ctx, name)
		return playerCreatedMsg{out: out, err: err}
	}
}

func (m Model) selectCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		p, err := m.players.Select(context.Background(), id)
		return playerSelectedMsg{player: p, err: err}
	}
}

// resumeCmd resolves the scene to load; playerID zero means the selected player.
func (m Model) resumeCmd(playerID int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		resume, err := m.gameplay.Continue(ctx, playerID)
		if err != nil {
			return resumeLoadedMsg{err: err}
		}
		rows, err := m.progress.Show(ctx, resume.PlayerID)
		return resumeLoadedMsg{resume: resume, rows: rows, err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenMain:
		body = m.viewMain()
	case screenNewGame:
		body = theme.Title.Render("New Game") + "\n\n" + m.name.View()
	case screenLoad:
		body = m.roster.View()
	case screenResume:
		body = m.viewResume()
	}

	status := theme.Muted.Render(m.status)
	if m.failed {
		status = theme.Failure.Render(m.status)
	}

	var footer string
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Pane.Render(body),
		status,
		footer,
	))
}

func (m Model) viewMain() string {
	var b strings.Builder
	b.WriteString(theme.Hot.Render("HYPERSOMNIA"))
	b.WriteString("\n\n")
	for i := entry(0); i < entryCount; i++ {
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("▸ " + entryLabels[i]))
		} else {
			b.WriteString("  " + entryLabels[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewResume() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Loading " + m.resume.Scene))
	b.WriteString("\n\n")
	for _, row := range m.rows {
		mark := theme.Muted.Render("locked")
		switch {
		case row.Completed:
			mark = theme.Done.Render(fmt.Sprintf("done  best %.2fs  score %d", row.BestTime, row.Score))
		case row.Unlocked:
			mark = theme.Hot.Render("open")
		}
		fmt.Fprintf(&b, "%2d. %-14s %s\n", row.Order, row.LevelName, mark)
	}
	return b.String()
}
