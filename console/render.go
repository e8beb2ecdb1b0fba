package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/hands"
	"github.com/pterm/pterm"
)

func outcomeText(s Showdown) string {
	if s.Result == nil {
		return "Waiting for both players' hole cards"
	}

	switch s.Result.Winner {
	case hands.Player1:
		return "Player 1 wins with " + s.Result.Player1Hand.Description
	case hands.Player2:
		return "Player 2 wins with " + s.Result.Player2Hand.Description
	default:
		return "Split pot, both play " + s.Result.Player1Hand.Description
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// bestCards marks the cards of the winning hand
func bestCards(hand *hands.HandResult, winning map[string]bool) string {
	if hand == nil {
		return ""
	}
	labels := make([]string, len(hand.BestCards))
	for i, c := range hand.BestCards {
		labels[i] = c.String()
		if winning[c.ID()] {
			labels[i] = pterm.LightGreen(labels[i])
		}
	}
	return strings.Join(labels, " ")
}

func handRow(name string, hole cards.Stack, hand *hands.HandResult, winning map[string]bool) []string {
	if hand == nil {
		return []string{name, orDash(hole.String()), "-", "-", "-"}
	}
	return []string{
		name,
		hole.String(),
		hand.Description,
		strconv.Itoa(hand.Score),
		bestCards(hand, winning),
	}
}

// RenderTable draws both hands as a table followed by the outcome in a box
func RenderTable(w io.Writer, s Showdown) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Player", "Hole", "Hand", "Score", "Best cards"},
		handRow("Player 1", s.Player1, s.Player1Hand, s.WinningIDs),
		handRow("Player 2", s.Player2, s.Player2Hand, s.WinningIDs),
	}).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	box := pterm.DefaultBox.
		WithTitle("Showdown").
		WithTitleTopCenter().
		WithHorizontalPadding(2).
		Sprint(fmt.Sprintf("Board: %s\n%s", orDash(s.Community.String()), outcomeText(s)))

	if _, err = fmt.Fprintf(w, "%s\n%s\n", table, box); err != nil {
		return err
	}
	if len(s.History) == 0 {
		return nil
	}

	data := pterm.TableData{{"#", "Event", "Change"}}
	for _, r := range s.History {
		data = append(data, []string{strconv.Itoa(r.Seq), r.Event.EventName(), fmt.Sprint(r.Event)})
	}
	history, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering history: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", history)
	return err
}

// RenderPlain writes one line per hand and one for the outcome
func RenderPlain(w io.Writer, s Showdown) error {
	var sb strings.Builder

	for _, p := range []struct {
		name string
		hole cards.Stack
		hand *hands.HandResult
	}{
		{"Player 1", s.Player1, s.Player1Hand},
		{"Player 2", s.Player2, s.Player2Hand},
	} {
		if p.hand == nil {
			fmt.Fprintf(&sb, "%s: %s\n", p.name, orDash(p.hole.String()))
			continue
		}
		fmt.Fprintf(&sb, "%s: %s | %s | %d\n", p.name, p.hole, p.hand.Description, p.hand.Score)
	}

	fmt.Fprintf(&sb, "Board: %s\n", orDash(s.Community.String()))
	fmt.Fprintf(&sb, "Result: %s\n", outcomeText(s))

	if len(s.History) > 0 {
		sb.WriteString("History:\n")
		for _, r := range s.History {
			fmt.Fprintf(&sb, "  %d. %s\n", r.Seq, r.Event)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
