package stream_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
)

type failingWriter struct {
	after int
	n     int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n >= f.after {
		return 0, fmt.Errorf("device full")
	}
	f.n++
	return len(p), nil
}

type BinaryStreamTestSuite struct {
	suite.Suite
}

func TestBinaryStreamSuite(t *testing.T) {
	suite.Run(t, new(BinaryStreamTestSuite))
}

func (s *BinaryStreamTestSuite) TestWriteIsLittleEndian() {
	buf := stream.NewBuffer()

	s.Require().NoError(buf.WriteInt(1))
	s.Require().NoError(buf.WriteInt(-1))
	s.Require().NoError(buf.WriteInt(0x01020304))

	s.Equal([]byte{
		0x01, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0x04, 0x03, 0x02, 0x01,
	}, buf.Bytes())
	s.Equal(int64(12), buf.Offset())
}

func (s *BinaryStreamTestSuite) TestReadBack() {
	buf := stream.NewBuffer()
	for _, v := range []int32{0, 42, -7} {
		s.Require().NoError(buf.WriteInt(v))
	}

	r := stream.NewBytesReader(buf.Bytes())
	for _, want := range []int32{0, 42, -7} {
		got, err := r.ReadInt()
		s.Require().NoError(err)
		s.Equal(want, got)
	}
	s.Equal(int64(12), r.Offset())
}

func (s *BinaryStreamTestSuite) TestReadTruncated() {
	testCases := []struct {
		name   string
		block  []byte
		offset int64
	}{
		{"empty block", nil, 0},
		{"partial int", []byte{0x01, 0x00}, 0},
		{"partial second int", []byte{0x01, 0x00, 0x00, 0x00, 0x02}, 4},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := stream.NewReader(bytes.NewReader(tc.block))
			var err error
			for err == nil {
				_, err = r.ReadInt()
			}

			s.True(errors.IsDataLoss(err))
			s.True(stream.IsStreamError(err))
			s.Equal(tc.offset, errors.GetMeta(err)["offset"])
		})
	}
}

func (s *BinaryStreamTestSuite) TestWriteFailure() {
	w := stream.NewWriter(&failingWriter{after: 1})

	s.Require().NoError(w.WriteInt(5))
	err := w.WriteInt(6)

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.True(stream.IsStreamError(err))
	s.Equal(int64(4), errors.GetMeta(err)["offset"])
}

func (s *BinaryStreamTestSuite) TestIsStreamErrorForeign() {
	s.False(stream.IsStreamError(fmt.Errorf("other")))
	s.False(stream.IsStreamError(errors.Internal("other")))
	s.False(stream.IsStreamError(nil))
}
