package savedata

import (
	"time"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
)

// LoadSlotsInput defines the request for loading a unit's roster
type LoadSlotsInput struct {
	UnitID string
}

// LoadSlotsOutput defines the response for loading a unit's roster.
// Found is false when the unit has no stored block and Slots is a fresh roster.
type LoadSlotsOutput struct {
	Slots  *accessory.SlotList
	Found  bool
	Report *codec.Report
}

// SaveSlotsInput defines the request for storing a unit's roster
type SaveSlotsInput struct {
	UnitID string
	Slots  *accessory.SlotList
}

// SaveSlotsOutput defines the response for storing a unit's roster
type SaveSlotsOutput struct {
	Version   accessory.SchemaVersion
	BlockSize int
	UpdatedAt time.Time
}

// ImportBlockInput defines the request for importing a raw save block
type ImportBlockInput struct {
	UnitID string
	Block  []byte
}

// ImportBlockOutput defines the response for importing a raw save block
type ImportBlockOutput struct {
	Slots  *accessory.SlotList
	Report *codec.Report
}

// ExportBlockInput defines the request for exporting a raw save block
type ExportBlockInput struct {
	UnitID string
}

// ExportBlockOutput defines the response for exporting a raw save block
type ExportBlockOutput struct {
	Block     []byte
	Version   accessory.SchemaVersion
	UpdatedAt time.Time
}

// EquipInput defines the request for equipping an accessory
type EquipInput struct {
	UnitID string
	Index  int
	ItemID int32
}

// EquipOutput defines the response for equipping an accessory
type EquipOutput struct {
	Slots *accessory.SlotList
}

// UnequipInput defines the request for emptying a slot
type UnequipInput struct {
	UnitID string
	Index  int
}

// UnequipOutput defines the response for emptying a slot
type UnequipOutput struct {
	Slots *accessory.SlotList
}

// MigrateInput defines the request for rewriting a unit's block under another marker
type MigrateInput struct {
	UnitID        string
	TargetVersion accessory.SchemaVersion
}

// MigrateOutput defines the response for a migration
type MigrateOutput struct {
	From     accessory.SchemaVersion
	To       accessory.SchemaVersion
	Repaired bool
	Slots    *accessory.SlotList
}

// InspectInput defines the request for decoding a block without storing it
type InspectInput struct {
	Block []byte
}

// InspectOutput defines the response for decoding a block
type InspectOutput struct {
	Slots  *accessory.SlotList
	Report *codec.Report
}
