package builders

import (
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
)

// BlockBuilder assembles raw save blocks without going through the codec, so
// tests can produce layouts the writer never emits
type BlockBuilder struct {
	values []int32
}

// NewBlockBuilder starts a block with the given marker
func NewBlockBuilder(marker accessory.SchemaVersion) *BlockBuilder {
	return &BlockBuilder{values: []int32{int32(marker)}}
}

// WithSlots appends slot values
func (b *BlockBuilder) WithSlots(ids ...int32) *BlockBuilder {
	b.values = append(b.values, ids...)
	return b
}

// WithEmptySlots appends n empty slots
func (b *BlockBuilder) WithEmptySlots(n int) *BlockBuilder {
	for i := 0; i < n; i++ {
		b.values = append(b.values, accessory.EmptyItemID)
	}
	return b
}

// Build encodes the values little-endian
func (b *BlockBuilder) Build() []byte {
	buf := stream.NewBuffer()
	for _, v := range b.values {
		_ = buf.WriteInt(v)
	}
	return buf.Bytes()
}
