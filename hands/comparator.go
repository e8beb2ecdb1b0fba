package hands

import "github.com/lazharichir/holdem/cards"

// Outcome names the winner of a heads-up comparison
type Outcome string

const (
	Player1 Outcome = "player1"
	Player2 Outcome = "player2"
	Tie     Outcome = "tie"
)

// WinnerResult is the outcome of comparing two players' best hands
type WinnerResult struct {
	Winner      Outcome    `json:"winner"`
	Player1Hand HandResult `json:"player1Hand"`
	Player2Hand HandResult `json:"player2Hand"`
}

// WinningHand returns the winner's hand. It returns false on a tie.
func (r WinnerResult) WinningHand() (HandResult, bool) {
	switch r.Winner {
	case Player1:
		return r.Player1Hand, true
	case Player2:
		return r.Player2Hand, true
	default:
		return HandResult{}, false
	}
}

// DetermineWinner evaluates both players against the same community cards
// and compares their scores. Card counts and duplicates are not checked.
func DetermineWinner(p1Hole, p2Hole, community cards.Stack) WinnerResult {
	p1Hand := EvaluateBestHand(p1Hole, community)
	p2Hand := EvaluateBestHand(p2Hole, community)

	winner := Tie
	switch compareInt(p1Hand.Score, p2Hand.Score) {
	case 1:
		winner = Player1
	case -1:
		winner = Player2
	}

	return WinnerResult{
		Winner:      winner,
		Player1Hand: p1Hand,
		Player2Hand: p2Hand,
	}
}
