package board

import "fmt"

// SlotKind names a row of card slots on the board
type SlotKind string

const (
	Player1Slot   SlotKind = "player1"
	Player2Slot   SlotKind = "player2"
	CommunitySlot SlotKind = "community"
)

const (
	HoleSlots      = 2
	CommunitySlots = 5
)

// SlotTarget addresses one card slot
type SlotTarget struct {
	Kind  SlotKind `json:"kind"`
	Index int      `json:"index"`
}

// Player1 addresses hole card i of player 1
func Player1(i int) SlotTarget {
	return SlotTarget{Kind: Player1Slot, Index: i}
}

// Player2 addresses hole card i of player 2
func Player2(i int) SlotTarget {
	return SlotTarget{Kind: Player2Slot, Index: i}
}

// Community addresses community card i
func Community(i int) SlotTarget {
	return SlotTarget{Kind: CommunitySlot, Index: i}
}

func (s SlotTarget) String() string {
	return fmt.Sprintf("%s[%d]", s.Kind, s.Index)
}

// IsPlayer reports whether the slot holds a player's hole card
func (k SlotKind) IsPlayer() bool {
	return k == Player1Slot || k == Player2Slot
}

func (k SlotKind) size() int {
	switch k {
	case Player1Slot, Player2Slot:
		return HoleSlots
	case CommunitySlot:
		return CommunitySlots
	default:
		return 0
	}
}
