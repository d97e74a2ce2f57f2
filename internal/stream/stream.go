// Package stream provides the integer-oriented binary stream that save blocks are
// read from and written to.
package stream

//go:generate mockgen -destination=mock/mock_stream.go -package=streammock github.com/KirkDiggler/rpg-savedata/internal/stream Reader,Writer

// Writer writes fixed-width integers to a save block
type Writer interface {
	WriteInt(value int32) error
}

// Reader reads fixed-width integers from a save block
type Reader interface {
	ReadInt() (int32, error)
}

// Stream is a bidirectional save block stream
type Stream interface {
	Reader
	Writer
}
