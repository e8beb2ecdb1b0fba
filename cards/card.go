package cards

import (
	"fmt"
	"strings"
)

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" or "Ts" -> Card{Suit: Spades, Value: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// Suit symbols are multi-byte, so split on the last rune.
	runes := []rune(s)
	suitPart := string(runes[len(runes)-1])
	valuePart := string(runes[:len(runes)-1])

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitPart)
	}

	var value Value
	switch strings.ToUpper(valuePart) {
	case "A":
		value = Ace
	case "K":
		value = King
	case "Q":
		value = Queen
	case "J":
		value = Jack
	case "10", "T":
		value = Ten
	case "9":
		value = Nine
	case "8":
		value = Eight
	case "7":
		value = Seven
	case "6":
		value = Six
	case "5":
		value = Five
	case "4":
		value = Four
	case "3":
		value = Three
	case "2":
		value = Two
	default:
		return Card{}, fmt.Errorf("invalid card value: %s", valuePart)
	}

	return Card{Suit: suit, Value: value}, nil
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists every suit in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Name returns the lowercase english name of the suit, e.g. "spades".
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character symbol of the suit.
func (s Suit) Symbol() string {
	return string(s)
}

// Value represents a card value
type Value string

const (
	Ace   Value = "A"
	King  Value = "K"
	Queen Value = "Q"
	Jack  Value = "J"
	Ten   Value = "10"
	Nine  Value = "9"
	Eight Value = "8"
	Seven Value = "7"
	Six   Value = "6"
	Five  Value = "5"
	Four  Value = "4"
	Three Value = "3"
	Two   Value = "2"
)

// Values lists every value from lowest to highest.
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Rank converts the value to its numeric rank (2=2, J=11, Q=12, K=13, A=14).
// Unknown values rank 0.
func (v Value) Rank() int {
	switch v {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	default:
		return 0
	}
}

// ValueFromRank is the inverse of Value.Rank.
func ValueFromRank(rank int) (Value, bool) {
	if rank < 2 || rank > 14 {
		return "", false
	}
	return Values[rank-2], true
}

// Card represents a playing card
type Card struct {
	Suit  Suit  `json:"suit"`
	Value Value `json:"value"`
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Label is the display label of the card, e.g. "10♥".
func (c Card) Label() string {
	return c.String()
}

// ID returns a key that is unique per value and suit, e.g. "10-hearts".
func (c Card) ID() string {
	return fmt.Sprintf("%s-%s", c.Value, c.Suit.Name())
}

// Rank returns the numeric rank of the card's value.
func (c Card) Rank() int {
	return c.Value.Rank()
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}
