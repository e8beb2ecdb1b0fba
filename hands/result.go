package hands

import (
	"fmt"

	"github.com/lazharichir/holdem/cards"
)

// Score packing: rank * categoryWeight + sum(kicker[i] * 15^(4-i)).
// Ranks top out at 14, so base 15 keeps positions apart, and the largest
// positional sum, 14 * (15^4 + 15^3 + 15^2 + 15 + 1) = 759374, stays below
// categoryWeight.
const (
	categoryWeight = 1_000_000
	positionBase   = 15
	maxPositions   = 5
)

const noCardsDescription = "No cards selected"

// HandResult is the best hand a player can make from their cards
type HandResult struct {
	Rank        HandRank    `json:"rank"`
	Score       int         `json:"score"`
	BestCards   cards.Stack `json:"bestCards"`
	Description string      `json:"description"`
}

// positionalSum weighs each key position by 15^(4-i). Positions the key
// does not define contribute nothing.
func positionalSum(key []int) int {
	sum := 0
	weight := 1
	for i := 1; i < maxPositions; i++ {
		weight *= positionBase
	}

	for i := 0; i < len(key) && i < maxPositions; i++ {
		sum += key[i] * weight
		weight /= positionBase
	}

	return sum
}

func score(rank HandRank, kickers []int) int {
	return int(rank)*categoryWeight + positionalSum(kickers)
}

// EvaluateBestHand finds the best 5-card hand out of the hole and community
// cards. With fewer than 5 cards no hand can be formed, and the result is a
// high card hand over whatever cards are present, scored so that such partial
// hands still compare against each other.
func EvaluateBestHand(holeCards, communityCards cards.Stack) HandResult {
	all := make(cards.Stack, 0, len(holeCards)+len(communityCards))
	all = append(all, holeCards...)
	all = append(all, communityCards...)

	if len(all) == 0 {
		return HandResult{
			Rank:        HighCard,
			Score:       0,
			BestCards:   cards.Stack{},
			Description: noCardsDescription,
		}
	}

	if len(all) < 5 {
		sorted := cards.SortByRankDesc(all)
		return HandResult{
			Rank:        HighCard,
			Score:       positionalSum(sorted.Values()),
			BestCards:   sorted,
			Description: fmt.Sprintf("High Card: %s", sorted[0].Value),
		}
	}

	best := bestHand(all)

	return HandResult{
		Rank:        best.Rank,
		Score:       score(best.Rank, best.Kickers),
		BestCards:   best.HandCards,
		Description: describe(best),
	}
}

// valueName maps a numeric rank back to its card value token
func valueName(rank int) cards.Value {
	v, _ := cards.ValueFromRank(rank)
	return v
}

// describe renders a human readable name for an evaluated 5-card hand
func describe(eval HandEvaluation) string {
	k := eval.Kickers

	switch eval.Rank {
	case RoyalFlush:
		return fmt.Sprintf("Royal Flush (%s)", eval.HandCards[0].Suit.Symbol())
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", valueName(k[0]))
	case FourOfAKind:
		return fmt.Sprintf("Four %ss", valueName(k[0]))
	case FullHouse:
		return fmt.Sprintf("Full House, %ss full of %ss", valueName(k[0]), valueName(k[1]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", valueName(k[0]))
	case Straight:
		if k[0] == 5 {
			return "Straight, 5 high (Wheel)"
		}
		return fmt.Sprintf("Straight, %s high", valueName(k[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three %ss", valueName(k[0]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %ss and %ss", valueName(k[0]), valueName(k[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %ss", valueName(k[0]))
	default:
		return fmt.Sprintf("High Card: %s", valueName(k[0]))
	}
}
