package codec

import (
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
)

// Encode serializes the roster into a standalone save block
func (c *Codec) Encode(list *accessory.SlotList) ([]byte, error) {
	buf := stream.NewBuffer()
	if err := c.Serialize(list, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode builds a roster of the given capacity from a save block. Trailing bytes
// after the layout's last slot are ignored, the same as the host does.
func (c *Codec) Decode(block []byte, capacity int) (*accessory.SlotList, *Report, error) {
	list := accessory.NewSlotList(capacity)
	report, err := c.DeserializeWithReport(list, stream.NewBytesReader(block))
	if err != nil {
		return nil, report, err
	}
	return list, report, nil
}
