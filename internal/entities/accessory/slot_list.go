package accessory

import (
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
)

// SlotList is a unit's ordered, fixed-capacity accessory roster.
//
// capacity is the schema-declared length and is what Count reports. ExpandTo keeps
// the backing slots in step with it, so len(slots) == capacity once construction
// returns. Capacity only grows.
type SlotList struct {
	slots    []Slot
	capacity int
}

// NewSlotList creates a roster already expanded to capacity with every slot empty
func NewSlotList(capacity int) *SlotList {
	l := &SlotList{}
	l.ExpandTo(capacity)
	return l
}

// NewCurrentSlotList creates a roster at the current schema capacity
func NewCurrentSlotList() *SlotList {
	return NewSlotList(CurrentCapacity)
}

// ExpandTo grows the roster to capacity, appending empty slots. Existing slots are
// never touched and a smaller capacity is ignored.
func (l *SlotList) ExpandTo(capacity int) {
	if capacity <= l.capacity {
		return
	}
	for len(l.slots) < capacity {
		l.slots = append(l.slots, Slot{ItemID: EmptyItemID})
	}
	l.capacity = capacity
}

// ResetAll unequips every slot
func (l *SlotList) ResetAll() {
	for i := range l.slots {
		l.slots[i].Clear()
	}
}

// Count reports the schema capacity of the roster
func (l *SlotList) Count() int {
	return l.capacity
}

// Slot returns a pointer to the slot at index for in-place decoding
func (l *SlotList) Slot(index int) *Slot {
	return &l.slots[index]
}

// Get returns the item ID equipped at index
func (l *SlotList) Get(index int) (int32, error) {
	if err := l.checkIndex(index); err != nil {
		return EmptyItemID, err
	}
	return l.slots[index].ItemID, nil
}

// Equip places itemID in the slot at index, replacing whatever was there
func (l *SlotList) Equip(index int, itemID int32) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if err := ValidateItemID(itemID); err != nil {
		return err
	}
	l.slots[index].ItemID = itemID
	return nil
}

// Unequip empties the slot at index
func (l *SlotList) Unequip(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.slots[index].Clear()
	return nil
}

// ItemIDs returns a copy of every slot's item ID in order
func (l *SlotList) ItemIDs() []int32 {
	ids := make([]int32, len(l.slots))
	for i, s := range l.slots {
		ids[i] = s.ItemID
	}
	return ids
}

// EquippedCount returns how many slots hold an item
func (l *SlotList) EquippedCount() int {
	n := 0
	for i := range l.slots {
		if !l.slots[i].IsEmpty() {
			n++
		}
	}
	return n
}

func (l *SlotList) checkIndex(index int) error {
	if index < 0 || index >= l.capacity {
		return errors.OutOfRangef("slot index %d out of range [0, %d)", index, l.capacity)
	}
	return nil
}
