package stream

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"io"

	"github.com/KirkDiggler/rpg-savedata/internal/errors"
)

const (
	// IntSize is the on-disk width of every integer in a save block
	IntSize = 4

	metaOffset = "offset"
	metaStream = "stream"
)

// byteOrder matches the host's native save layout
var byteOrder = binary.LittleEndian

// BinaryWriter writes little-endian int32 values to an io.Writer
type BinaryWriter struct {
	w      io.Writer
	offset int64
	buf    [IntSize]byte
}

// NewWriter wraps w as a stream Writer
func NewWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w}
}

// WriteInt writes a single int32
func (b *BinaryWriter) WriteInt(value int32) error {
	byteOrder.PutUint32(b.buf[:], uint32(value))
	n, err := b.w.Write(b.buf[:])
	if err == nil && n < IntSize {
		err = io.ErrShortWrite
	}
	if err != nil {
		return newStreamError(err, errors.CodeInternal, "failed to write int", b.offset)
	}
	b.offset += IntSize
	return nil
}

// Offset returns the number of bytes written so far
func (b *BinaryWriter) Offset() int64 {
	return b.offset
}

// BinaryReader reads little-endian int32 values from an io.Reader
type BinaryReader struct {
	r      io.Reader
	offset int64
	buf    [IntSize]byte
}

// NewReader wraps r as a stream Reader
func NewReader(r io.Reader) *BinaryReader {
	return &BinaryReader{r: r}
}

// NewBytesReader reads from an in-memory save block
func NewBytesReader(block []byte) *BinaryReader {
	return NewReader(bytes.NewReader(block))
}

// ReadInt reads a single int32. A block that ends before a full integer is a
// data loss error.
func (b *BinaryReader) ReadInt() (int32, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
			return 0, newStreamError(err, errors.CodeDataLoss, "save block truncated", b.offset)
		}
		return 0, newStreamError(err, errors.CodeInternal, "failed to read int", b.offset)
	}
	b.offset += IntSize
	return int32(byteOrder.Uint32(b.buf[:])), nil
}

// Offset returns the number of bytes consumed so far
func (b *BinaryReader) Offset() int64 {
	return b.offset
}

// Buffer is an in-memory Writer used to build save blocks before they are stored
type Buffer struct {
	buf bytes.Buffer
	*BinaryWriter
}

// NewBuffer creates an empty in-memory stream
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.BinaryWriter = NewWriter(&b.buf)
	return b
}

// Bytes returns the block written so far
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}

func newStreamError(cause error, code errors.Code, message string, offset int64) error {
	return errors.WrapWithCode(cause, code, message).
		WithMeta(metaStream, true).
		WithMeta(metaOffset, offset)
}

// IsStreamError reports whether err originated from a stream read or write
func IsStreamError(err error) bool {
	streamed, ok := errors.GetMeta(err)[metaStream].(bool)
	return ok && streamed
}
