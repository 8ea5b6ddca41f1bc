// Package tui provides the interactive terminal match against a bot
// policy.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsplus/internal/game"
)

// Model is the Bubble Tea model for a local match.
type Model struct {
	match          *game.Match
	logger         *log.Logger
	wasteOnInvalid bool

	input textinput.Model
	log   viewport.Model
	lines []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates a model around an existing match handle. The handle keeps
// its policy and round limit across play-again resets.
func New(match *game.Match, wasteOnInvalid bool, logger *log.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "rock, paper, scissors or bomb"
	input.Focus()
	input.CharLimit = 16

	m := &Model{
		match:          match,
		logger:         logger.WithPrefix("tui"),
		wasteOnInvalid: wasteOnInvalid,
		input:          input,
		log:            viewport.New(60, 12),
	}
	m.appendLine("Best of " + fmt.Sprint(match.RoundLimit()) + " rounds. Each side has one bomb; a lone bomb wins the round.")
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = msg.Width - 2
		if h := msg.Height - 8; h > 3 {
			m.log.Height = h
		}
		m.initialized = true
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if cmd := m.submit(strings.TrimSpace(m.input.Value())); cmd != nil {
				return m, cmd
			}
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one line of user input. Returns tea.Quit when the user is
// done.
func (m *Model) submit(raw string) tea.Cmd {
	if raw == "" {
		return nil
	}

	if m.match.Snapshot().GameOver {
		switch strings.ToLower(raw) {
		case "y", "yes":
			m.match.Reset()
			m.lines = nil
			m.appendLine("New match. Your bomb is back; make it count.")
			m.input.Reset()
			return nil
		default:
			m.quitting = true
			return tea.Quit
		}
	}

	switch strings.ToLower(raw) {
	case "q", "quit", "exit":
		m.quitting = true
		return tea.Quit
	}

	v := m.match.Validate(raw)
	if !v.Valid {
		m.appendLine(errorStyle.Render(v.Reason))
		if m.wasteOnInvalid {
			state, err := m.match.WasteRound()
			if err == nil {
				m.appendLine(drawStyle.Render(fmt.Sprintf("Round %d wasted.", state.RoundNumber)))
				if state.GameOver {
					m.appendGameOver(state)
				}
			}
		}
		return nil
	}

	res, err := m.match.Play(game.MustParseMove(v.Move))
	if err != nil {
		m.appendLine(errorStyle.Render(err.Error()))
		return nil
	}

	m.appendRound(res)
	if res.State.GameOver {
		m.appendGameOver(res.State)
	}
	return nil
}

func (m *Model) appendRound(res game.RoundResult) {
	m.appendLine(fmt.Sprintf("Round %d/%d: you played %s, bot played %s", res.State.RoundNumber, m.match.RoundLimit(), res.UserMove, res.BotMove))

	switch res.Winner {
	case game.OutcomeUser:
		m.appendLine(winStyle.Render("You take the round."))
	case game.OutcomeBot:
		m.appendLine(lossStyle.Render("Bot takes the round."))
	default:
		m.appendLine(drawStyle.Render("Round drawn."))
	}

	if res.UserMove == game.Bomb || res.BotMove == game.Bomb {
		m.appendLine(bombStyle.Render("Bomb spent."))
	}
}

func (m *Model) appendGameOver(state game.State) {
	m.appendLine("")
	m.appendLine(headerStyle.Render("GAME OVER"))
	m.appendLine(fmt.Sprintf("Final score: you %d - %d bot", state.UserScore, state.BotScore))

	switch state.FinalResult() {
	case game.ResultUser:
		m.appendLine(winStyle.Render(state.FinalResult().String()))
	case game.ResultBot:
		m.appendLine(lossStyle.Render(state.FinalResult().String()))
	default:
		m.appendLine(drawStyle.Render(state.FinalResult().String()))
	}
	m.appendLine(helpStyle.Render("Play again? (y/n)"))
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return "Thanks for playing.\n"
	}

	state := m.match.Snapshot()
	var b strings.Builder

	b.WriteString(headerStyle.Render("ROCK PAPER SCISSORS PLUS"))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("You %d - %d Bot", state.UserScore, state.BotScore)))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  round %d/%d", state.RoundNumber, m.match.RoundLimit())))
	if !state.UserBombUsed {
		b.WriteString(bombStyle.Render("  [bomb ready]"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.log.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to play, q to quit"))
	return b.String()
}

// Run starts the interactive program and blocks until it exits.
func Run(match *game.Match, wasteOnInvalid bool, logger *log.Logger) error {
	p := tea.NewProgram(New(match, wasteOnInvalid, logger))
	_, err := p.Run()
	return err
}
