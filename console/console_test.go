package console

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/holdem/board"
	"github.com/lazharichir/holdem/config"
	"github.com/lazharichir/holdem/hands"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func quiet() *log.Logger {
	return NewLogger(io.Discard, log.InfoLevel)
}

func showdownConfig(style string) config.Config {
	return config.Config{
		Player1:  "As Ks",
		Player2:  "Qh Qd",
		Board:    "2c 3c 4c 9h Jd",
		Style:    style,
		LogLevel: "info",
	}
}

func TestFill(t *testing.T) {
	t.Run("places every card", func(t *testing.T) {
		b := board.NewBoard(nil)
		require.NoError(t, Fill(b, showdownConfig(config.StylePlain)))
		assert.Len(t, b.UsedCards(), 9)
	})

	t.Run("rejects a duplicate card", func(t *testing.T) {
		cfg := showdownConfig(config.StylePlain)
		cfg.Board = "As 3c 4c"

		err := Fill(board.NewBoard(nil), cfg)
		assert.ErrorIs(t, err, board.ErrCardInUse)
		assert.Contains(t, err.Error(), "--board")
	})

	t.Run("rejects a third hole card", func(t *testing.T) {
		cfg := showdownConfig(config.StylePlain)
		cfg.Player1 = "As Ks Js"

		err := Fill(board.NewBoard(nil), cfg)
		assert.ErrorIs(t, err, board.ErrInvalidSlot)
	})

	t.Run("rejects a bad card", func(t *testing.T) {
		cfg := showdownConfig(config.StylePlain)
		cfg.Player2 = "Qh Zz"

		err := Fill(board.NewBoard(nil), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--p2")
	})
}

func TestEvaluate(t *testing.T) {
	b := board.NewBoard(nil)
	require.NoError(t, Fill(b, showdownConfig(config.StylePlain)))

	s := Evaluate(b)
	require.NotNil(t, s.Result)
	assert.Equal(t, hands.Player2, s.Result.Winner)
	require.NotNil(t, s.Player2Hand)
	assert.Equal(t, hands.OnePair, s.Player2Hand.Rank)
	assert.True(t, s.WinningIDs["Q-hearts"])
	assert.False(t, s.WinningIDs["A-spades"])
}

func TestRun_Plain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(showdownConfig(config.StylePlain), &out, quiet()))

	text := out.String()
	assert.Contains(t, text, "Player 1: A♠ K♠ | High Card: A |")
	assert.Contains(t, text, "Player 2: Q♥ Q♦ | Pair of Qs |")
	assert.Contains(t, text, "Board: 2♣ 3♣ 4♣ 9♥ J♦")
	assert.Contains(t, text, "Result: Player 2 wins with Pair of Qs")
}

func TestRun_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(showdownConfig(config.StyleTable), &out, quiet()))

	text := out.String()
	for _, want := range []string{"Player", "Best cards", "Pair of Qs", "Showdown", "Player 2 wins"} {
		assert.Contains(t, text, want)
	}
}

func TestRun_Tie(t *testing.T) {
	cfg := config.Config{
		Player1: "2s 3d",
		Player2: "2h 3c",
		Board:   "Ah Kd Qc Js 10h",
		Style:   config.StylePlain,
	}

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, quiet()))
	assert.Contains(t, out.String(), "Result: Split pot, both play Straight, A high")
}

func TestRun_IncompleteHands(t *testing.T) {
	cfg := config.Config{Player1: "As Ks", Player2: "Qh", Style: config.StylePlain}

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, quiet()))

	text := out.String()
	assert.Contains(t, text, "Board: -")
	assert.Contains(t, text, "Waiting for both players' hole cards")
}

func TestRun_Dump(t *testing.T) {
	cfg := showdownConfig(config.StylePlain)
	cfg.Dump = true

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, quiet()))
	assert.Contains(t, out.String(), "WinnerResult")
	assert.Contains(t, out.String(), "player2")
}

func TestRun_Logs(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(&logs, log.DebugLevel)

	require.NoError(t, Run(showdownConfig(config.StylePlain), io.Discard, logger))
	assert.Contains(t, logs.String(), "board filled")
	assert.Contains(t, logs.String(), "showdown")
}

func TestRun_Error(t *testing.T) {
	cfg := showdownConfig(config.StylePlain)
	cfg.Player2 = "As Kd"

	err := Run(cfg, io.Discard, quiet())
	assert.ErrorIs(t, err, board.ErrCardInUse)
}

func TestRun_HistoryPlain(t *testing.T) {
	cfg := showdownConfig(config.StylePlain)
	cfg.History = true

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, quiet()))

	text := out.String()
	assert.Contains(t, text, "History:\n")
	assert.Contains(t, text, "  1. placed A♠ at player1[0]\n")
	assert.Contains(t, text, "  9. placed J♦ at community[4]\n")
}

func TestRun_HistoryTable(t *testing.T) {
	cfg := showdownConfig(config.StyleTable)
	cfg.History = true

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, quiet()))

	text := out.String()
	assert.Contains(t, text, "card-placed")
	assert.Contains(t, text, "placed Q♥ at player2[0]")
}

func TestRun_NoHistoryByDefault(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(showdownConfig(config.StylePlain), &out, quiet()))
	assert.NotContains(t, out.String(), "History:")
}
