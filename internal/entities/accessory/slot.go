package accessory

import (
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
)

// EmptyItemID marks an unequipped slot
const EmptyItemID int32 = 0

// Slot is a single equip position. ItemID references the accessory catalog or is
// EmptyItemID.
type Slot struct {
	ItemID int32 `json:"item_id"`
}

// IsEmpty reports whether nothing is equipped
func (s *Slot) IsEmpty() bool {
	return s.ItemID == EmptyItemID
}

// Clear unequips the slot
func (s *Slot) Clear() {
	s.ItemID = EmptyItemID
}

// Serialize writes the slot's binary form
func (s *Slot) Serialize(w stream.Writer) error {
	return w.WriteInt(s.ItemID)
}

// Deserialize reads the slot's binary form. The slot is only modified when the
// read succeeds.
func (s *Slot) Deserialize(r stream.Reader) error {
	id, err := r.ReadInt()
	if err != nil {
		return err
	}
	s.ItemID = id
	return nil
}

// ValidateItemID checks an ID before it is equipped
func ValidateItemID(itemID int32) error {
	if itemID < 0 {
		return errors.InvalidArgumentf("item ID cannot be negative: %d", itemID)
	}
	return nil
}
