// Package codec reads and writes an accessory roster in its versioned save block
// layout.
//
// Layout, every field a little-endian int32:
//
//	[version marker]
//	[slot 0][slot 1][slot 2][slot 3]   legacy layout stops here
//	[slot 4] ... [slot capacity-1]     expanded layout only
//
// Files written before the marker existed have no marker at all; their first
// stored value is read in its place and is expected to be <= 0. A legacy file whose
// first value is positive is misread as the expanded layout. This is the host's
// on-disk contract and is kept as-is so existing saves load unchanged.
package codec

import (
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
)

// Config holds the codec settings
type Config struct {
	// WriteVersion is the marker written on Serialize. It also picks the layout:
	// a marker <= 0 persists the legacy subset, a positive one the full roster.
	WriteVersion accessory.SchemaVersion
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WriteVersion < accessory.VersionLegacy {
		vb.Fieldf("WriteVersion", "must not be negative, got %d", c.WriteVersion)
	}

	return vb.Build()
}

// Codec is the versioned roster serializer
type Codec struct {
	writeVersion accessory.SchemaVersion
}

// New creates a codec. A nil config writes the legacy layout.
func New(cfg *Config) (*Codec, error) {
	if cfg == nil {
		cfg = &Config{WriteVersion: accessory.VersionLegacy}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Codec{writeVersion: cfg.WriteVersion}, nil
}

// WriteVersion returns the marker this codec writes
func (c *Codec) WriteVersion() accessory.SchemaVersion {
	return c.writeVersion
}

// Report describes what a Deserialize call found in the block
type Report struct {
	Version   accessory.SchemaVersion
	Format    accessory.Format
	SlotsRead int
	Repaired  bool
}

// Serialize writes the marker followed by the slots its layout persists. Stream
// errors are returned unchanged.
func (c *Codec) Serialize(list *accessory.SlotList, w stream.Writer) error {
	if err := w.WriteInt(int32(c.writeVersion)); err != nil {
		return err
	}

	n := persistedSlots(c.writeVersion, list)
	for i := 0; i < n; i++ {
		if err := list.Slot(i).Serialize(w); err != nil {
			return err
		}
	}

	return nil
}

// Deserialize replaces the roster contents with the block read from r
func (c *Codec) Deserialize(list *accessory.SlotList, r stream.Reader) error {
	_, err := c.DeserializeWithReport(list, r)
	return err
}

// DeserializeWithReport is Deserialize that also describes the block.
//
// The roster is always emptied before anything is read. Expanded blocks are read
// in full and then emptied again: item kinds changed with the schema and a stale
// equipped reference must not survive the load. Legacy blocks fill only the first
// LegacyCapacity slots and leave the rest empty.
//
// On a stream error the report covers what was read so far and every slot not yet
// read is still empty.
func (c *Codec) DeserializeWithReport(list *accessory.SlotList, r stream.Reader) (*Report, error) {
	list.ResetAll()

	report := &Report{}
	marker, err := r.ReadInt()
	if err != nil {
		return report, err
	}
	report.Version = accessory.SchemaVersion(marker)
	report.Format = report.Version.Format()

	n := persistedSlots(report.Version, list)
	for i := 0; i < n; i++ {
		if err := list.Slot(i).Deserialize(r); err != nil {
			return report, err
		}
		report.SlotsRead++
	}

	if report.Format == accessory.FormatExpanded {
		list.ResetAll()
		report.Repaired = true
	}

	return report, nil
}

// persistedSlots is how many slots the layout selected by version carries
func persistedSlots(version accessory.SchemaVersion, list *accessory.SlotList) int {
	if version.IsExpanded() {
		return list.Count()
	}
	return min(accessory.LegacyCapacity, list.Count())
}

// BlockSize returns the byte length of a block written with version for a roster
// of the given capacity
func BlockSize(version accessory.SchemaVersion, capacity int) int {
	slots := min(accessory.LegacyCapacity, capacity)
	if version.IsExpanded() {
		slots = capacity
	}
	return stream.IntSize * (1 + slots)
}
