package hands

import (
	"sort"

	"github.com/lazharichir/holdem/cards"
)

// HandRank represents the strength of a poker hand
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handRankNames = map[HandRank]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (r HandRank) String() string {
	if name, ok := handRankNames[r]; ok {
		return name
	}
	return "Unknown"
}

// HandEvaluation represents the evaluation of a 5-card poker hand
type HandEvaluation struct {
	Rank      HandRank    // The hand rank (pair, flush, etc.)
	HandCards cards.Stack // The 5 cards that make up the hand, highest first
	Kickers   []int       // Tie-break key, most significant first
}

// rankCount is how many cards of one rank a hand holds
type rankCount struct {
	rank  int
	count int
}

// countRanks groups values by rank, ordered by count then rank, both descending
func countRanks(values []int) []rankCount {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	result := make([]rankCount, 0, len(counts))
	for rank, count := range counts {
		result = append(result, rankCount{rank: rank, count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].count != result[j].count {
			return result[i].count > result[j].count
		}
		return result[i].rank > result[j].rank
	})

	return result
}

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	if len(hand) == 0 {
		return false
	}

	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// straightHigh returns the top rank of the straight formed by values, or 0.
// values must be sorted descending. A-5-4-3-2 counts as a 5-high straight.
func straightHigh(values []int) int {
	unique := make([]int, 0, len(values))
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			unique = append(unique, v)
		}
	}

	if len(unique) != 5 {
		return 0
	}

	if unique[0]-unique[4] == 4 {
		return unique[0]
	}

	if unique[0] == 14 && unique[1] == 5 && unique[2] == 4 && unique[3] == 3 && unique[4] == 2 {
		return 5
	}

	return 0
}

// evaluateHand evaluates a 5-card poker hand and returns its ranking
func evaluateHand(hand cards.Stack) HandEvaluation {
	if len(hand) != 5 {
		panic("Hand must contain exactly 5 cards")
	}

	// Sort cards by rank (highest first)
	sortedHand := cards.SortByRankDesc(hand)
	values := sortedHand.Values()

	flush := isFlush(sortedHand)
	high := straightHigh(values)
	counts := countRanks(values)

	result := func(rank HandRank, kickers ...int) HandEvaluation {
		return HandEvaluation{
			Rank:      rank,
			HandCards: sortedHand,
			Kickers:   kickers,
		}
	}

	switch {
	case flush && high == 14:
		return result(RoyalFlush, 14)
	case flush && high > 0:
		return result(StraightFlush, high)
	case counts[0].count == 4:
		return result(FourOfAKind, counts[0].rank, counts[1].rank)
	case counts[0].count == 3 && counts[1].count == 2:
		return result(FullHouse, counts[0].rank, counts[1].rank)
	case flush:
		return result(Flush, values...)
	case high > 0:
		return result(Straight, high)
	case counts[0].count == 3:
		return result(ThreeOfAKind, counts[0].rank, counts[1].rank, counts[2].rank)
	case counts[0].count == 2 && counts[1].count == 2:
		return result(TwoPair, counts[0].rank, counts[1].rank, counts[2].rank)
	case counts[0].count == 2:
		return result(OnePair, counts[0].rank, counts[1].rank, counts[2].rank, counts[3].rank)
	default:
		return result(HighCard, values...)
	}
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// compareKickers compares two tie-break keys position by position over the
// positions both define. The first differing position decides.
func compareKickers(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if comp := compareInt(a[i], b[i]); comp != 0 {
			return comp
		}
	}
	return 0
}

// compareHandEvaluations compares two hand evaluations and returns:
// -1 if hand1 is worse than hand2
// 0 if hands are equal
// 1 if hand1 is better than hand2
func compareHandEvaluations(hand1, hand2 HandEvaluation) int {
	if comp := compareInt(int(hand1.Rank), int(hand2.Rank)); comp != 0 {
		return comp
	}
	return compareKickers(hand1.Kickers, hand2.Kickers)
}

// combinations generates all possible combinations of k elements from a set
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			// Make a copy of current combination
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}

// bestHand evaluates every 5-card subset of cardSet and returns the strongest.
// cardSet must hold at least 5 cards.
func bestHand(cardSet cards.Stack) HandEvaluation {
	var best HandEvaluation

	for i, combo := range combinations(len(cardSet), 5) {
		hand := make(cards.Stack, 5)
		for j, idx := range combo {
			hand[j] = cardSet[idx]
		}

		evaluation := evaluateHand(hand)
		if i == 0 || compareHandEvaluations(evaluation, best) > 0 {
			best = evaluation
		}
	}

	return best
}
