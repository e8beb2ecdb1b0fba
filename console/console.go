package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lazharichir/holdem/board"
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/config"
	"github.com/lazharichir/holdem/events"
	"github.com/lazharichir/holdem/hands"
	"github.com/sanity-io/litter"
)

// NewLogger builds the timestamped logger used by the command
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#006400")).Bold(true)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#FFA500")).Bold(true)
	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000")).Bold(true)
	logger.SetStyles(styles)

	return logger
}

// Showdown is everything the command knows after filling the board
type Showdown struct {
	BoardID     string
	Player1     cards.Stack
	Player2     cards.Stack
	Community   cards.Stack
	Player1Hand *hands.HandResult
	Player2Hand *hands.HandResult
	Result      *hands.WinnerResult
	WinningIDs  map[string]bool
	History     []events.Record
}

// Fill places the configured cards on b. Duplicates and overflowing rows are
// rejected by the board.
func Fill(b *board.Board, cfg config.Config) error {
	rows := []struct {
		name  string
		input string
		slot  func(int) board.SlotTarget
	}{
		{"p1", cfg.Player1, board.Player1},
		{"p2", cfg.Player2, board.Player2},
		{"board", cfg.Board, board.Community},
	}

	for _, row := range rows {
		stack, err := cards.StackFromString(row.input)
		if err != nil {
			return fmt.Errorf("--%s: %w", row.name, err)
		}
		for i, c := range stack {
			if err := b.Place(row.slot(i), c); err != nil {
				return fmt.Errorf("--%s: %w", row.name, err)
			}
		}
	}
	return nil
}

// Evaluate reads the hands and the outcome off a filled board
func Evaluate(b *board.Board) Showdown {
	s := Showdown{
		BoardID:   b.ID,
		Player1:   b.HoleCards(board.Player1Slot),
		Player2:   b.HoleCards(board.Player2Slot),
		Community: b.CommunityCards(),
	}

	if hand, ok := b.PlayerHand(board.Player1Slot); ok {
		s.Player1Hand = &hand
	}
	if hand, ok := b.PlayerHand(board.Player2Slot); ok {
		s.Player2Hand = &hand
	}
	if result, ok := b.Winner(); ok {
		s.Result = &result
	}
	s.WinningIDs = b.WinningCardIDs()

	return s
}

// Run fills a board from cfg and writes the showdown to out. The showdown is
// read from a board replayed out of the recorded history.
func Run(cfg config.Config, out io.Writer, logger *log.Logger) error {
	history := events.NewMemoryLog()
	b := board.NewBoard(history)
	logger.Debug("board created", "id", b.ID)

	if err := Fill(b, cfg); err != nil {
		return err
	}

	replayed, err := board.Replay(b.ID, history)
	if err != nil {
		return err
	}

	s := Evaluate(replayed)
	if cfg.History {
		if s.History, err = replayed.History(); err != nil {
			return err
		}
	}
	logger.Debug("board filled", "cards", len(replayed.UsedCards()))

	if s.Result == nil {
		logger.Warn("both players need two hole cards for a showdown",
			"p1", len(s.Player1), "p2", len(s.Player2))
	} else {
		logger.Info("showdown", "winner", s.Result.Winner,
			"p1", s.Result.Player1Hand.Score, "p2", s.Result.Player2Hand.Score)
	}

	switch cfg.Style {
	case config.StylePlain:
		err = RenderPlain(out, s)
	default:
		err = RenderTable(out, s)
	}
	if err != nil {
		return err
	}

	if cfg.Dump && s.Result != nil {
		_, err = fmt.Fprintln(out, litter.Sdump(*s.Result))
	}
	return err
}
