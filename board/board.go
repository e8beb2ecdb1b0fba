package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/events"
	"github.com/lazharichir/holdem/hands"
)

var (
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrInvalidCard  = errors.New("invalid card")
	ErrCardInUse    = errors.New("card already in use")
	ErrEmptySlot    = errors.New("slot is empty")
	ErrUnknownEvent = errors.New("unknown board event")
)

// MinHoleCardsForShowdown is how many hole cards each player needs before
// a winner is reported
const MinHoleCardsForShowdown = 2

// Board holds the cards assigned to two players and the community. It is
// the registry that keeps one physical card from being assigned twice.
type Board struct {
	ID string

	player1   [HoleSlots]*cards.Card
	player2   [HoleSlots]*cards.Card
	community [CommunitySlots]*cards.Card

	log   events.Log
	mutex sync.RWMutex
}

// NewBoard creates an empty board. Changes are recorded in log when it is
// not nil.
func NewBoard(log events.Log) *Board {
	return &Board{
		ID:  uuid.NewString(),
		log: log,
	}
}

func (b *Board) row(kind SlotKind) []*cards.Card {
	switch kind {
	case Player1Slot:
		return b.player1[:]
	case Player2Slot:
		return b.player2[:]
	case CommunitySlot:
		return b.community[:]
	default:
		return nil
	}
}

func (b *Board) validSlot(slot SlotTarget) error {
	if slot.Index < 0 || slot.Index >= slot.Kind.size() {
		return fmt.Errorf("%w: %s", ErrInvalidSlot, slot)
	}
	return nil
}

// findCard returns the slot currently holding card
func (b *Board) findCard(card cards.Card) (SlotTarget, bool) {
	for _, kind := range []SlotKind{Player1Slot, Player2Slot, CommunitySlot} {
		for i, c := range b.row(kind) {
			if c != nil && c.Equals(card) {
				return SlotTarget{Kind: kind, Index: i}, true
			}
		}
	}
	return SlotTarget{}, false
}

// apply changes the slot state for one event. It does not record anything.
func (b *Board) apply(event events.Event) error {
	switch e := event.(type) {
	case CardPlaced:
		if err := b.validSlot(e.Slot); err != nil {
			return err
		}
		placed := e.Card
		b.row(e.Slot.Kind)[e.Slot.Index] = &placed
	case CardCleared:
		if err := b.validSlot(e.Slot); err != nil {
			return err
		}
		b.row(e.Slot.Kind)[e.Slot.Index] = nil
	case BoardReset:
		b.player1 = [HoleSlots]*cards.Card{}
		b.player2 = [HoleSlots]*cards.Card{}
		b.community = [CommunitySlots]*cards.Card{}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event.EventName())
	}
	return nil
}

// commit records events in the log and only then applies them, so state
// never runs ahead of the history
func (b *Board) commit(evs ...events.Event) error {
	if b.log != nil {
		if _, err := b.log.Append(evs...); err != nil {
			return fmt.Errorf("recording %s: %w", evs[len(evs)-1].EventName(), err)
		}
	}
	for _, e := range evs {
		if err := b.apply(e); err != nil {
			return err
		}
	}
	return nil
}

// Place puts card into slot. A card already sitting in another slot is
// rejected; a different card already in slot is cleared first.
func (b *Board) Place(slot SlotTarget, card cards.Card) error {
	if err := b.validSlot(slot); err != nil {
		return err
	}
	if card.Rank() == 0 || card.Suit.Name() == "unknown" {
		return fmt.Errorf("%w: %q", ErrInvalidCard, card.String())
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if at, used := b.findCard(card); used {
		if at == slot {
			return nil
		}
		return fmt.Errorf("%w: %s is at %s", ErrCardInUse, card, at)
	}

	var evs []events.Event
	if current := b.row(slot.Kind)[slot.Index]; current != nil {
		evs = append(evs, CardCleared{BoardID: b.ID, Slot: slot, Card: *current})
	}
	evs = append(evs, CardPlaced{BoardID: b.ID, Slot: slot, Card: card})

	return b.commit(evs...)
}

// Clear empties slot
func (b *Board) Clear(slot SlotTarget) error {
	if err := b.validSlot(slot); err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	current := b.row(slot.Kind)[slot.Index]
	if current == nil {
		return fmt.Errorf("%w: %s", ErrEmptySlot, slot)
	}

	return b.commit(CardCleared{BoardID: b.ID, Slot: slot, Card: *current})
}

// Reset empties every slot
func (b *Board) Reset() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.commit(BoardReset{BoardID: b.ID})
}

// History returns the recorded changes to the board, oldest first. A board
// without a log has no history.
func (b *Board) History() ([]events.Record, error) {
	if b.log == nil {
		return []events.Record{}, nil
	}
	return b.log.History(b.ID)
}

// Replay rebuilds a board from the history recorded in log. Further changes
// to the returned board are appended to the same log.
func Replay(boardID string, log events.Log) (*Board, error) {
	records, err := log.History(boardID)
	if err != nil {
		return nil, fmt.Errorf("loading history of %s: %w", boardID, err)
	}

	b := &Board{ID: boardID, log: log}
	for _, r := range records {
		if err := b.apply(r.Event); err != nil {
			return nil, fmt.Errorf("replaying event %d: %w", r.Seq, err)
		}
	}
	return b, nil
}

// Card returns the card in slot, if any
func (b *Board) Card(slot SlotTarget) (cards.Card, bool) {
	if b.validSlot(slot) != nil {
		return cards.Card{}, false
	}

	b.mutex.RLock()
	defer b.mutex.RUnlock()

	c := b.row(slot.Kind)[slot.Index]
	if c == nil {
		return cards.Card{}, false
	}
	return *c, true
}

// filled returns the cards of a row, skipping empty slots
func (b *Board) filled(kind SlotKind) cards.Stack {
	var stack cards.Stack
	for _, c := range b.row(kind) {
		if c != nil {
			stack = append(stack, *c)
		}
	}
	return stack
}

// HoleCards returns the cards placed in a row, in slot order
func (b *Board) HoleCards(kind SlotKind) cards.Stack {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.filled(kind)
}

// CommunityCards returns the community cards placed so far, in slot order
func (b *Board) CommunityCards() cards.Stack {
	return b.HoleCards(CommunitySlot)
}

func (b *Board) usedCards() cards.Stack {
	var used cards.Stack
	used = append(used, b.filled(Player1Slot)...)
	used = append(used, b.filled(Player2Slot)...)
	used = append(used, b.filled(CommunitySlot)...)
	return used
}

// UsedCards returns every card on the board
func (b *Board) UsedCards() cards.Stack {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.usedCards()
}

// AvailableCards returns the deck cards not yet on the board
func (b *Board) AvailableCards() cards.Stack {
	return cards.AvailableCards(b.UsedCards())
}

// IsUsed reports whether card is already on the board
func (b *Board) IsUsed(card cards.Card) bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	_, used := b.findCard(card)
	return used
}

// PlayerHand evaluates a player's best hand so far. It returns false when
// kind is not a player or the player holds no hole cards.
func (b *Board) PlayerHand(kind SlotKind) (hands.HandResult, bool) {
	if !kind.IsPlayer() {
		return hands.HandResult{}, false
	}

	b.mutex.RLock()
	hole := b.filled(kind)
	community := b.filled(CommunitySlot)
	b.mutex.RUnlock()

	if len(hole) == 0 {
		return hands.HandResult{}, false
	}
	return hands.EvaluateBestHand(hole, community), true
}

func (b *Board) winner() (hands.WinnerResult, bool) {
	p1 := b.filled(Player1Slot)
	p2 := b.filled(Player2Slot)
	if len(p1) < MinHoleCardsForShowdown || len(p2) < MinHoleCardsForShowdown {
		return hands.WinnerResult{}, false
	}
	return hands.DetermineWinner(p1, p2, b.filled(CommunitySlot)), true
}

// Winner compares both players' hands. It returns false until each player
// holds both hole cards.
func (b *Board) Winner() (hands.WinnerResult, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.winner()
}

// WinningCardIDs returns the IDs of the cards making the winning hand. The
// set is empty when there is no winner yet or the hands tie.
func (b *Board) WinningCardIDs() map[string]bool {
	ids := make(map[string]bool)

	result, ok := b.Winner()
	if !ok {
		return ids
	}
	hand, ok := result.WinningHand()
	if !ok {
		return ids
	}

	for _, c := range hand.BestCards {
		ids[c.ID()] = true
	}
	return ids
}
