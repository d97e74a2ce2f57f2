// Package accessory holds a unit's accessory roster: the fixed-capacity list of
// equip slots persisted in the save block.
package accessory

// SchemaVersion is the leading marker of a serialized accessory roster.
// Zero means no marker was written (legacy layout); any positive value selects the
// expanded layout, whatever its magnitude.
type SchemaVersion int32

const (
	// VersionLegacy is the marker of the unversioned 4-slot layout
	VersionLegacy SchemaVersion = 0
	// VersionExpanded is the first marker of the full-capacity layout
	VersionExpanded SchemaVersion = 1
)

const (
	// LegacyCapacity is the roster size before the schema expansion
	LegacyCapacity = 4
	// CurrentCapacity is the roster size of the current schema
	CurrentCapacity = 8
)

// IsExpanded reports whether the marker selects the full-capacity layout
func (v SchemaVersion) IsExpanded() bool {
	return v > 0
}

// Format returns the layout selected by the marker
func (v SchemaVersion) Format() Format {
	if v.IsExpanded() {
		return FormatExpanded
	}
	return FormatLegacy
}

// Format names the on-disk layout of a roster
type Format string

const (
	FormatLegacy   Format = "legacy"
	FormatExpanded Format = "expanded"
)

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}
