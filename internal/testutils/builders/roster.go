// Package builders provides test data builders for rosters and save blocks
package builders

import (
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
)

// RosterBuilder provides a fluent interface for building test slot lists
type RosterBuilder struct {
	capacity int
	items    map[int]int32
}

// NewRosterBuilder creates a builder for an empty roster at the current capacity
func NewRosterBuilder() *RosterBuilder {
	return &RosterBuilder{
		capacity: accessory.CurrentCapacity,
		items:    make(map[int]int32),
	}
}

// WithCapacity sets the number of slots
func (b *RosterBuilder) WithCapacity(capacity int) *RosterBuilder {
	b.capacity = capacity
	return b
}

// WithItem equips itemID at index
func (b *RosterBuilder) WithItem(index int, itemID int32) *RosterBuilder {
	b.items[index] = itemID
	return b
}

// WithItems equips ids into consecutive slots starting at 0
func (b *RosterBuilder) WithItems(ids ...int32) *RosterBuilder {
	for i, id := range ids {
		b.items[i] = id
	}
	return b
}

// Build returns the roster. Items outside the capacity are dropped.
func (b *RosterBuilder) Build() *accessory.SlotList {
	list := accessory.NewSlotList(b.capacity)
	for index, id := range b.items {
		_ = list.Equip(index, id)
	}
	return list
}
