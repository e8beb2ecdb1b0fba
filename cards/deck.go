package cards

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// NewDeck52 creates a standard deck of 52 cards, grouped by suit and
// ordered by value within each suit
func NewDeck52() Stack {
	deck := make(Stack, 0, DeckSize)

	for _, suit := range Suits {
		for _, value := range Values {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}

	return deck
}

// AvailableCards returns the cards of a full deck that are not in used,
// in deck order
func AvailableCards(used Stack) Stack {
	inUse := make(map[string]bool, len(used))
	for _, c := range used {
		inUse[c.ID()] = true
	}

	available := make(Stack, 0, DeckSize)
	for _, c := range NewDeck52() {
		if !inUse[c.ID()] {
			available = append(available, c)
		}
	}

	return available
}
