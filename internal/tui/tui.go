// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tui provides the Bubble Tea terminal client for Mood2Music.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mood2music/mood2music/internal/core/model"
	"github.com/mood2music/mood2music/internal/core/picker"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cellStyle = lipgloss.NewStyle().
			Width(16).
			Padding(0, 1)

	activeCellStyle = cellStyle.
			Bold(true).
			Foreground(lipgloss.Color("#1B1B1B")).
			Background(lipgloss.Color("#4ECDC4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	songStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// Texts shown by the client.
const (
	Title      = "Mood2Music"
	Tagline    = "Discover top rated songs based on your mood."
	GridPrompt = "How are you feeling today?"
)

const gridColumns = 3

// Searcher finds one song for a genre. A nil video means none was found.
// *picker.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, genre string) (*model.Video, error)
}

// songMsg carries the outcome of one search back to the event loop.
type songMsg struct {
	Seq   uint64
	Video *model.Video
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick mood")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "another song")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back to moods")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctrl     *picker.Controller
	searcher Searcher
	moods    []model.Mood
	cursor   int

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// pending is the search issued before the program started, if any.
	pending *picker.Request

	width int
}

// NewModel creates a TUI model. When preselect is non-nil the client starts
// on that mood's player view and searches immediately.
func NewModel(searcher Searcher, preselect *model.Mood) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	m := Model{
		ctrl:     picker.NewController(),
		searcher: searcher,
		moods:    model.Moods(),
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	if preselect != nil {
		req := m.ctrl.Select(*preselect)
		m.pending = &req
		for i, mood := range m.moods {
			if mood.Name == preselect.Name {
				m.cursor = i
			}
		}
	}
	return m
}

// State exposes the selection state, mainly for tests.
func (m Model) State() picker.State {
	return m.ctrl.State()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.pending != nil {
		return tea.Batch(m.search(*m.pending), m.spinner.Tick)
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case songMsg:
		m.ctrl.Resolve(msg.Seq, msg.Video)
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.ctrl.State().SelectedMood == nil {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor >= gridColumns {
				m.cursor -= gridColumns
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor+gridColumns < len(m.moods) {
				m.cursor += gridColumns
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.moods)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			req := m.ctrl.Select(m.moods[m.cursor])
			return m, tea.Batch(m.search(req), m.spinner.Tick)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		if req, ok := m.ctrl.Refresh(); ok {
			return m, tea.Batch(m.search(req), m.spinner.Tick)
		}
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Reset()
	}
	return m, nil
}

// search runs req off the event loop. Failures were already logged by the
// searcher and resolve as an absent song.
func (m Model) search(req picker.Request) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		v, err := searcher.Search(context.Background(), req.Mood.Genre)
		if err != nil {
			v = nil
		}
		return songMsg{Seq: req.Seq, Video: v}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♫ " + Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(Tagline))
	b.WriteString("\n\n")

	state := m.ctrl.State()
	if state.SelectedMood == nil {
		b.WriteString(m.viewGrid())
	} else {
		b.WriteString(m.viewPlayer(state))
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.helpKeys(state)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewGrid() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(GridPrompt))
	b.WriteString("\n\n")

	for row := 0; row*gridColumns < len(m.moods); row++ {
		cells := make([]string, 0, gridColumns)
		for col := 0; col < gridColumns; col++ {
			i := row*gridColumns + col
			if i >= len(m.moods) {
				break
			}
			style := cellStyle
			if i == m.cursor {
				style = activeCellStyle
			}
			cells = append(cells, style.Render(m.moods[i].Name))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Plays %s", m.moods[m.cursor].Genre)))
	b.WriteString("\n")
	return b.String()
}

// PlayerTitle is the heading of the player view for a mood.
func PlayerTitle(mood model.Mood) string {
	return fmt.Sprintf("%s Mood - %s Song", mood.Name, mood.Genre)
}

func (m Model) viewPlayer(state picker.State) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(PlayerTitle(*state.SelectedMood)))
	b.WriteString("\n\n")

	if song := state.CurrentSong; song != nil {
		var player strings.Builder
		if song.Title != "" {
			player.WriteString(songStyle.Render(song.Title))
			player.WriteString("\n")
		}
		player.WriteString("▶ " + song.EmbedURL())
		b.WriteString(boxStyle.Render(player.String()))
		b.WriteString("\n")
	}

	if m.ctrl.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(dimStyle.Render("Finding a song..."))
	} else {
		b.WriteString(dimStyle.Render("[r] Find another song"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpKeys(state picker.State) []key.Binding {
	if state.SelectedMood == nil {
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Select, m.keys.Quit}
	}
	return []key.Binding{m.keys.Refresh, m.keys.Back, m.keys.Quit}
}

// Run starts the TUI and blocks until the user quits.
func Run(searcher Searcher, preselect *model.Mood) error {
	p := tea.NewProgram(NewModel(searcher, preselect), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
