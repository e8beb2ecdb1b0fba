package cards

import (
	"fmt"
	"sort"
	"strings"
)

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// StackFromString parses a comma or whitespace separated list of cards,
// e.g. "As,Kh 10d". An empty string yields an empty stack.
func StackFromString(s string) (Stack, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	stack := make(Stack, 0, len(fields))
	for _, f := range fields {
		card, err := CardFromString(f)
		if err != nil {
			return nil, err
		}
		stack = append(stack, card)
	}
	return stack, nil
}

func (s Stack) String() string {
	labels := make([]string, len(s))
	for i, c := range s {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

// Contains reports whether a card with the same value and suit is in the stack
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Values returns the numeric rank of every card, in stack order
func (s Stack) Values() []int {
	values := make([]int, len(s))
	for i, c := range s {
		values[i] = c.Rank()
	}
	return values
}

// IDs returns the identity key of every card, in stack order
func (s Stack) IDs() []string {
	ids := make([]string, len(s))
	for i, c := range s {
		ids[i] = c.ID()
	}
	return ids
}

// SortByRankDesc returns a copy of the stack sorted from highest to lowest
// rank. Cards of equal rank keep their relative order.
func SortByRankDesc(s Stack) Stack {
	result := make(Stack, len(s))
	copy(result, s)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rank() > result[j].Rank()
	})

	return result
}

// SortByRankAsc returns a copy of the stack sorted from lowest to highest
// rank. Cards of equal rank keep their relative order.
func SortByRankAsc(s Stack) Stack {
	result := make(Stack, len(s))
	copy(result, s)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rank() < result[j].Rank()
	})

	return result
}

// Validate returns an error for the first card that is not a real card or
// appears more than once.
func (s Stack) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, c := range s {
		if c.Rank() == 0 || c.Suit.Name() == "unknown" {
			return fmt.Errorf("invalid card: %q", c.String())
		}
		if seen[c.ID()] {
			return fmt.Errorf("duplicate card: %s", c)
		}
		seen[c.ID()] = true
	}
	return nil
}
