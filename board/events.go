package board

import (
	"fmt"

	"github.com/lazharichir/holdem/cards"
)

// CardPlaced is recorded when a card is put into a slot
type CardPlaced struct {
	BoardID string
	Slot    SlotTarget
	Card    cards.Card
}

func (e CardPlaced) EventName() string { return "card-placed" }
func (e CardPlaced) Board() string     { return e.BoardID }

func (e CardPlaced) String() string {
	return fmt.Sprintf("placed %s at %s", e.Card, e.Slot)
}

// CardCleared is recorded when a slot is emptied, including when its card is
// displaced by another placement
type CardCleared struct {
	BoardID string
	Slot    SlotTarget
	Card    cards.Card
}

func (e CardCleared) EventName() string { return "card-cleared" }
func (e CardCleared) Board() string     { return e.BoardID }

func (e CardCleared) String() string {
	return fmt.Sprintf("cleared %s from %s", e.Card, e.Slot)
}

// BoardReset is recorded when every slot is emptied at once
type BoardReset struct {
	BoardID string
}

func (e BoardReset) EventName() string { return "board-reset" }
func (e BoardReset) Board() string     { return e.BoardID }

func (e BoardReset) String() string {
	return "reset the board"
}
