// Package tui is a terminal front end for a two-player game built on
// bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/game"
	"github.com/lgbarn/duel-chess/internal/output"
	"github.com/lgbarn/duel-chess/internal/parser"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const (
	maxLogLines  = 200
	minLogHeight = 10 // board height plus the file labels and border
)

// Model is the bubbletea model for one game.
type Model struct {
	cfg     *config.Config
	session *game.Session

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel creates a model with a fresh game and the move prompt focused.
func NewModel(cfg *config.Config) (Model, error) {
	start, err := cfg.Start.Board()
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "e2 e4"
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	return Model{
		cfg:     cfg,
		session: game.NewSessionFromBoard(start, cfg.Rules.Engine(), cfg.Start.Turn),
		m:       modeInput,
		input:   ti,
		logLines: []string{
			fmt.Sprintf("new game (rules: %s)", cfg.Rules.Describe()),
		},
	}, nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "i", "enter":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "n":
				m.newGame()
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line == "" {
					return m, nil
				}
				cmd := m.execCommand(line)
				return m, cmd
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) tea.Cmd {
	command, err := parser.ParseCommand(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("%s: %s", line, output.DescribeError(err)))
		m.cfg.Logf(2, "rejected input %q: %v", line, err)
		return nil
	}

	switch command.Kind {
	case parser.QuitCommand:
		return tea.Quit
	case parser.NewGameCommand:
		m.newGame()
	case parser.BoardCommand:
		m.appendLog(output.DescribeStatus(m.session.Snapshot()))
	case parser.HelpCommand:
		for _, ln := range strings.Split(parser.HelpText, "\n") {
			m.appendLog(ln)
		}
	case parser.MoveCommand:
		m.playMove(command.Move)
	}
	return nil
}

func (m *Model) playMove(move parser.Move) {
	turn := m.session.Turn()
	report, err := m.session.Move(move.From, move.To)
	if err != nil {
		m.appendLog(fmt.Sprintf("%s %s: %s", turn, move, output.DescribeError(err)))
		m.cfg.Logf(2, "%v", err)
		return
	}

	entry := fmt.Sprintf("%d. %s %s", report.Ply, turn, report.Move)
	if msg := output.DescribeOutcome(report.Outcome); msg != "" {
		entry += "  " + msg
	}
	m.appendLog(entry)
	m.cfg.Logf(2, "ply %d: %s %s -> %s", report.Ply, turn, report.Move, report.Outcome.Kind)
	if m.session.Status() == game.Concluded {
		m.cfg.Logf(1, "game over: %s", output.DescribeOutcome(report.Outcome))
	}
}

func (m *Model) newGame() {
	m.session.Reset()
	m.appendLog(fmt.Sprintf("new game (rules: %s)", m.cfg.Rules.Describe()))
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	snap := m.session.Snapshot()
	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("duel-chess  [%s]  mode:%s", output.DescribeStatus(snap), modeStr))

	boardBox := boxStyle.Render(renderBoard(snap, m.cfg.Display))

	logHeight := max(minLogHeight, m.height-8)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(30, m.width-lipgloss.Width(boardBox)-4)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move, n for a new game, q to quit"
	}
	inputBox := boxStyle.Render(inputLine)

	body := lipgloss.JoinHorizontal(lipgloss.Top, boardBox, logBox)
	return header + "\n" + body + "\n" + inputBox + "\n"
}
