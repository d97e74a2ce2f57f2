package codec_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/stream"
	streammock "github.com/KirkDiggler/rpg-savedata/internal/stream/mock"
)

type CodecTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	legacy *codec.Codec
	expand *codec.Codec
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	var err error
	s.legacy, err = codec.New(nil)
	s.Require().NoError(err)
	s.expand, err = codec.New(&codec.Config{WriteVersion: accessory.VersionExpanded})
	s.Require().NoError(err)
}

func (s *CodecTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CodecTestSuite) filledList(ids ...int32) *accessory.SlotList {
	list := accessory.NewCurrentSlotList()
	for i, id := range ids {
		s.Require().NoError(list.Equip(i, id))
	}
	return list
}

func block(values ...int32) []byte {
	buf := stream.NewBuffer()
	for _, v := range values {
		_ = buf.WriteInt(v)
	}
	return buf.Bytes()
}

func (s *CodecTestSuite) TestNewRejectsNegativeWriteVersion() {
	c, err := codec.New(&codec.Config{WriteVersion: -1})
	s.Nil(c)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestSerializeLegacyWritesMarkerAndFirstFourSlots() {
	list := s.filledList(3, 0, 5, 0, 11, 12, 13, 14)

	out, err := s.legacy.Encode(list)

	s.Require().NoError(err)
	s.Equal(block(0, 3, 0, 5, 0), out)
	s.Len(out, codec.BlockSize(accessory.VersionLegacy, accessory.CurrentCapacity))
}

func (s *CodecTestSuite) TestSerializeExpandedWritesEverySlot() {
	list := s.filledList(1, 2, 3, 4, 5, 6, 7, 8)

	out, err := s.expand.Encode(list)

	s.Require().NoError(err)
	s.Equal(block(1, 1, 2, 3, 4, 5, 6, 7, 8), out)
	s.Len(out, codec.BlockSize(accessory.VersionExpanded, accessory.CurrentCapacity))
}

func (s *CodecTestSuite) TestRoundTripLegacy() {
	list := s.filledList(3, 0, 5, 0)
	out, err := s.legacy.Encode(list)
	s.Require().NoError(err)

	decoded, report, err := s.legacy.Decode(out, accessory.CurrentCapacity)

	s.Require().NoError(err)
	s.Equal([]int32{3, 0, 5, 0, 0, 0, 0, 0}, decoded.ItemIDs())
	s.Equal(accessory.FormatLegacy, report.Format)
	s.Equal(accessory.LegacyCapacity, report.SlotsRead)
	s.False(report.Repaired)
}

func (s *CodecTestSuite) TestRoundTripExpandedIsRepaired() {
	list := s.filledList(1, 2, 3, 4, 5, 6, 7, 8)
	out, err := s.expand.Encode(list)
	s.Require().NoError(err)

	decoded, report, err := s.legacy.Decode(out, accessory.CurrentCapacity)

	s.Require().NoError(err)
	s.Equal(make([]int32, accessory.CurrentCapacity), decoded.ItemIDs())
	s.Equal(accessory.CurrentCapacity, decoded.Count())
	s.Equal(accessory.FormatExpanded, report.Format)
	s.Equal(accessory.CurrentCapacity, report.SlotsRead)
	s.True(report.Repaired)
}

func (s *CodecTestSuite) TestRepairRunsOnAlreadyEmptyBlock() {
	_, report, err := s.legacy.Decode(block(1, 0, 0, 0, 0, 0, 0, 0, 0), accessory.CurrentCapacity)

	s.Require().NoError(err)
	s.True(report.Repaired)
}

func (s *CodecTestSuite) TestAnyPositiveMarkerIsExpanded() {
	values := append([]int32{1 << 20}, 1, 2, 3, 4, 5, 6, 7, 8)

	decoded, report, err := s.legacy.Decode(block(values...), accessory.CurrentCapacity)

	s.Require().NoError(err)
	s.Equal(accessory.SchemaVersion(1<<20), report.Version)
	s.Equal(accessory.FormatExpanded, report.Format)
	s.Zero(decoded.EquippedCount())
}

func (s *CodecTestSuite) TestNegativeMarkerIsLegacy() {
	decoded, report, err := s.legacy.Decode(block(-3, 9, 9, 9, 9), accessory.CurrentCapacity)

	s.Require().NoError(err)
	s.Equal(accessory.FormatLegacy, report.Format)
	s.Equal([]int32{9, 9, 9, 9, 0, 0, 0, 0}, decoded.ItemIDs())
}

func (s *CodecTestSuite) TestLegacyReadStopsAfterFourthSlot() {
	reader := streammock.NewMockReader(s.ctrl)
	gomock.InOrder(
		reader.EXPECT().ReadInt().Return(int32(0), nil),
		reader.EXPECT().ReadInt().Return(int32(3), nil),
		reader.EXPECT().ReadInt().Return(int32(0), nil),
		reader.EXPECT().ReadInt().Return(int32(5), nil),
		reader.EXPECT().ReadInt().Return(int32(0), nil),
	)

	list := accessory.NewCurrentSlotList()
	s.Require().NoError(s.legacy.Deserialize(list, reader))

	s.Equal([]int32{3, 0, 5, 0, 0, 0, 0, 0}, list.ItemIDs())
}

func (s *CodecTestSuite) TestDeserializeResetsBeforeLegacyLoad() {
	list := s.filledList(91, 92, 93, 94, 95, 96, 97, 98)

	err := s.legacy.Deserialize(list, stream.NewBytesReader(block(0, 1, 2, 3, 4)))

	s.Require().NoError(err)
	s.Equal([]int32{1, 2, 3, 4, 0, 0, 0, 0}, list.ItemIDs())
}

func (s *CodecTestSuite) TestMarkerReadFailureLeavesListEmpty() {
	list := s.filledList(1, 2, 3, 4, 5, 6, 7, 8)

	report, err := s.legacy.DeserializeWithReport(list, stream.NewBytesReader(nil))

	s.Require().Error(err)
	s.True(stream.IsStreamError(err))
	s.True(errors.IsDataLoss(err))
	s.Zero(report.SlotsRead)
	s.Zero(list.EquippedCount())
}

func (s *CodecTestSuite) TestExpandedReadFailureMidSlot() {
	list := s.filledList(91, 92, 93, 94, 95, 96, 97, 98)
	streamErr := errors.DataLoss("save block truncated")

	reader := streammock.NewMockReader(s.ctrl)
	gomock.InOrder(
		reader.EXPECT().ReadInt().Return(int32(1), nil),
		reader.EXPECT().ReadInt().Return(int32(11), nil),
		reader.EXPECT().ReadInt().Return(int32(12), nil),
		reader.EXPECT().ReadInt().Return(int32(0), streamErr),
	)

	report, err := s.legacy.DeserializeWithReport(list, reader)

	s.Require().Error(err)
	s.Equal(streamErr, err, "stream errors are returned unchanged")
	s.Equal(2, report.SlotsRead)
	s.False(report.Repaired)
	s.Equal([]int32{11, 12, 0, 0, 0, 0, 0, 0}, list.ItemIDs())
}

func (s *CodecTestSuite) TestSerializePropagatesWriteFailure() {
	writeErr := errors.Internal("device full")

	writer := streammock.NewMockWriter(s.ctrl)
	gomock.InOrder(
		writer.EXPECT().WriteInt(int32(0)).Return(nil),
		writer.EXPECT().WriteInt(int32(3)).Return(writeErr),
	)

	err := s.legacy.Serialize(s.filledList(3, 4), writer)

	s.Equal(writeErr, err)
}

func (s *CodecTestSuite) TestTruncatedBlockIsDataLoss() {
	_, _, err := s.legacy.Decode(block(1, 1, 2, 3), accessory.CurrentCapacity)

	s.True(errors.IsDataLoss(err))
}

func (s *CodecTestSuite) TestLegacyCapacityRoster() {
	out, err := s.expand.Encode(accessory.NewSlotList(accessory.LegacyCapacity))
	s.Require().NoError(err)
	s.Len(out, codec.BlockSize(accessory.VersionExpanded, accessory.LegacyCapacity))

	_, report, err := s.legacy.Decode(out, accessory.LegacyCapacity)
	s.Require().NoError(err)
	s.Equal(accessory.LegacyCapacity, report.SlotsRead)
}
