package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/outloud/pkg/engine"
	"github.com/matzehuels/outloud/pkg/errors"
)

// Editor styles
var (
	editorCurrentStyle = lipgloss.NewStyle().Foreground(colorWhite)
	editorCursorStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	editorNormalStyle  = lipgloss.NewStyle().Foreground(colorGray)
	editorInputStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// editorModel - Interactive outline editor
// =============================================================================

// exchange is one word sent to the session and what came back.
type exchange struct {
	word    string
	replies []string
	err     error
}

// editorModel is the bubbletea model for the full-screen editor.
type editorModel struct {
	session *engine.Session
	input   string
	history []exchange
	keep    int
	width   int
	height  int
	quit    bool
}

func newEditorModel(s *engine.Session, historySize int) editorModel {
	return editorModel{
		session: s,
		keep:    historySize,
		width:   80,
		height:  24,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.input != "" {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace, tea.KeyEnter:
			m = m.send(m.input)
		case tea.KeyUp:
			m = m.arrow("up")
		case tea.KeyDown:
			m = m.arrow("down")
		case tea.KeyLeft:
			m = m.arrow("out")
		case tea.KeyRight:
			m = m.arrow("in")
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if r == ' ' {
					m = m.send(m.input)
				} else if isWordRune(r) && len(m.input) < errors.MaxWordLength {
					m.input += string(r)
				}
			}
		}
		if m.quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

// arrow sends word for an arrow key unless a word is being typed.
func (m editorModel) arrow(word string) editorModel {
	if m.input != "" {
		return m
	}
	return m.send(word)
}

// send hands the pending word to the session and records the exchange. An
// empty word that changed nothing is left out of the history.
func (m editorModel) send(word string) editorModel {
	m.input = ""
	resp, err := m.session.Interact(word)
	if word == "" && err == nil && len(resp.Words) == 0 {
		return m
	}
	m.history = append(m.history, exchange{word: word, replies: resp.Words, err: err})
	if over := len(m.history) - m.keep; over > 0 {
		m.history = m.history[over:]
	}
	if resp.Status == engine.StatusQuit {
		m.quit = true
	}
	return m
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-'
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.session.Path()))
	b.WriteString(StyleDim.Render("  " + m.status()))
	b.WriteString("\n")

	rows := max(m.height-len(m.history)-3, 1)
	for _, line := range m.outline(rows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	for _, ex := range m.history {
		b.WriteString(StyleDim.Render("› " + ex.word + " "))
		switch {
		case ex.err != nil:
			b.WriteString(StyleError.Render(errors.Describe(errors.GetCode(ex.err))))
		default:
			b.WriteString(StyleValue.Render(strings.Join(ex.replies, " ")))
		}
		b.WriteString("\n")
	}

	b.WriteString(editorInputStyle.Render("› " + m.input + "_"))
	return b.String()
}

func (m editorModel) status() string {
	status := m.session.State().String()
	if m.session.Paused() {
		status += " (paused)"
	}
	return status
}

// outline lays out rows screen lines through Session.Draw.
func (m editorModel) outline(rows int) []string {
	type segment struct {
		col  int
		text string
		mode engine.DrawMode
	}
	grid := make([][]segment, rows)
	_ = m.session.Draw(m.width, rows, func(mode engine.DrawMode, col, row int, text string) {
		grid[row] = append(grid[row], segment{col, text, mode})
	})

	lines := make([]string, rows)
	for i, segs := range grid {
		var b strings.Builder
		width := 0
		for _, s := range segs {
			if s.col > width {
				b.WriteString(strings.Repeat(" ", s.col-width))
				width = s.col
			}
			b.WriteString(drawStyle(s.mode).Render(s.text))
			width += len(s.text)
		}
		lines[i] = b.String()
	}
	return lines
}

func drawStyle(mode engine.DrawMode) lipgloss.Style {
	switch mode {
	case engine.DrawCursor:
		return editorCursorStyle
	case engine.DrawCurrent:
		return editorCurrentStyle
	default:
		return editorNormalStyle
	}
}

// runEditor runs the full-screen editor until quit or ctrl+c.
func (c *CLI) runEditor(ctx context.Context, s *engine.Session) error {
	// the alternate screen owns the terminal; saves still reach the history
	level := c.Logger.GetLevel()
	c.Logger.SetLevel(log.FatalLevel)
	defer c.Logger.SetLevel(level)

	p := tea.NewProgram(newEditorModel(s, c.Config.Editor.HistorySize), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(editorModel); ok && !m.quit {
		printWarning("left without quit, changes to %s discarded", s.Path())
	}
	return nil
}
