package savedata_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
	"github.com/KirkDiggler/rpg-savedata/internal/pkg/clock"
	saverepo "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata"
	savedatamock "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata/mock"
	"github.com/KirkDiggler/rpg-savedata/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-savedata/internal/testutils/mocks"
)

const testUnitID = "unit_alear"

var testNow = time.Date(2024, 1, 19, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *savedatamock.MockRepository
	orchestrator savedata.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = savedatamock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	c, err := codec.New(nil)
	s.Require().NoError(err)

	s.orchestrator, err = savedata.NewOrchestrator(&savedata.Config{
		Repository: s.mockRepo,
		Codec:      c,
		Capacity:   accessory.CurrentCapacity,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func encode(version accessory.SchemaVersion, ids ...int32) []byte {
	c, _ := codec.New(&codec.Config{WriteVersion: version})
	block, _ := c.Encode(builders.NewRosterBuilder().WithItems(ids...).Build())
	return block
}

func (s *OrchestratorTestSuite) expectGet(block []byte, version accessory.SchemaVersion) {
	mocks.ExpectStoredBlock(s.ctx, s.mockRepo, testUnitID, block, version, testNow)
}

func (s *OrchestratorTestSuite) expectGetNotFound() {
	mocks.ExpectNoStoredBlock(s.ctx, s.mockRepo, testUnitID)
}

func (s *OrchestratorTestSuite) expectPut(block []byte, version accessory.SchemaVersion) {
	mocks.ExpectBlockPut(s.ctx, s.mockRepo, testUnitID, block, version, testNow)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name   string
		cfg    *savedata.Config
		errMsg string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"missing dependencies", &savedata.Config{Capacity: 8}, "Repository: is required"},
		{"capacity below legacy", &savedata.Config{Repository: s.mockRepo, Capacity: 2}, "Capacity: must be at least 4"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := savedata.NewOrchestrator(tc.cfg)
			s.Nil(svc)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *OrchestratorTestSuite) TestLoadSlotsLegacyBlock() {
	s.expectGet(encode(accessory.VersionLegacy, 3, 0, 5, 0), accessory.VersionLegacy)

	out, err := s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})

	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal([]int32{3, 0, 5, 0, 0, 0, 0, 0}, out.Slots.ItemIDs())
	s.Equal(accessory.FormatLegacy, out.Report.Format)
}

func (s *OrchestratorTestSuite) TestLoadSlotsExpandedBlockIsRepaired() {
	s.expectGet(encode(accessory.VersionExpanded, 1, 2, 3, 4, 5, 6, 7, 8), accessory.VersionExpanded)

	out, err := s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})

	s.Require().NoError(err)
	s.True(out.Report.Repaired)
	s.Zero(out.Slots.EquippedCount())
	s.Equal(accessory.CurrentCapacity, out.Slots.Count())
}

func (s *OrchestratorTestSuite) TestLoadSlotsMissingReturnsFreshRoster() {
	s.expectGetNotFound()

	out, err := s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})

	s.Require().NoError(err)
	s.False(out.Found)
	s.Nil(out.Report)
	s.Equal(accessory.CurrentCapacity, out.Slots.Count())
}

func (s *OrchestratorTestSuite) TestLoadSlotsErrors() {
	_, err := s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockRepo.EXPECT().
		Get(s.ctx, saverepo.GetInput{UnitID: testUnitID}).
		Return(nil, errors.Internal("redis down"))
	_, err = s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})
	s.True(errors.IsInternal(err))

	s.expectGet([]byte{1, 0, 0, 0, 7}, accessory.VersionExpanded)
	_, err = s.orchestrator.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestSaveSlotsUsesConfiguredMarker() {
	list := builders.NewRosterBuilder().WithItem(0, 12).WithItem(6, 13).Build()

	s.expectPut(encode(accessory.VersionLegacy, 12), accessory.VersionLegacy)

	out, err := s.orchestrator.SaveSlots(s.ctx, &savedata.SaveSlotsInput{UnitID: testUnitID, Slots: list})

	s.Require().NoError(err)
	s.Equal(accessory.VersionLegacy, out.Version)
	s.Equal(codec.BlockSize(accessory.VersionLegacy, accessory.CurrentCapacity), out.BlockSize)
	s.Equal(testNow, out.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestSaveSlotsValidation() {
	_, err := s.orchestrator.SaveSlots(s.ctx, &savedata.SaveSlotsInput{UnitID: testUnitID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SaveSlots(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEquip() {
	s.expectGet(encode(accessory.VersionLegacy, 3), accessory.VersionLegacy)
	s.expectPut(encode(accessory.VersionLegacy, 3, 0, 44), accessory.VersionLegacy)

	out, err := s.orchestrator.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 2, ItemID: 44})

	s.Require().NoError(err)
	s.Equal([]int32{3, 0, 44, 0, 0, 0, 0, 0}, out.Slots.ItemIDs())
}

func (s *OrchestratorTestSuite) TestEquipOutOfRangeDoesNotStore() {
	s.expectGetNotFound()

	_, err := s.orchestrator.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 8, ItemID: 1})

	s.True(errors.IsOutOfRange(err))
}

func (s *OrchestratorTestSuite) TestEquipBeyondLegacySlotsIsRejected() {
	s.expectGet(encode(accessory.VersionLegacy, 3), accessory.VersionLegacy)

	_, err := s.orchestrator.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 5, ItemID: 42})

	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEquipUnderExpandedWriterReturnsStoredRoster() {
	c, err := codec.New(&codec.Config{WriteVersion: accessory.VersionExpanded})
	s.Require().NoError(err)
	expanded, err := savedata.NewOrchestrator(&savedata.Config{
		Repository: s.mockRepo,
		Codec:      c,
		Capacity:   accessory.CurrentCapacity,
	})
	s.Require().NoError(err)

	s.expectGetNotFound()
	s.expectPut(encode(accessory.VersionExpanded, 0, 0, 0, 0, 0, 42), accessory.VersionExpanded)

	out, err := expanded.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 5, ItemID: 42})

	s.Require().NoError(err)
	s.Equal(0, out.Slots.EquippedCount())
}

func (s *OrchestratorTestSuite) TestEquippedSlotsSurviveReload() {
	repo, err := saverepo.NewSQLite(s.ctx, &saverepo.SQLiteConfig{
		Path:  ":memory:",
		Clock: clock.NewFixed(testNow),
	})
	s.Require().NoError(err)
	defer func() { _ = repo.Close() }()

	c, err := codec.New(nil)
	s.Require().NoError(err)
	svc, err := savedata.NewOrchestrator(&savedata.Config{
		Repository: repo,
		Codec:      c,
		Capacity:   accessory.CurrentCapacity,
	})
	s.Require().NoError(err)

	equipped, err := svc.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 3, ItemID: 42})
	s.Require().NoError(err)

	_, err = svc.Equip(s.ctx, &savedata.EquipInput{UnitID: testUnitID, Index: 5, ItemID: 43})
	s.True(errors.IsFailedPrecondition(err))

	loaded, err := svc.LoadSlots(s.ctx, &savedata.LoadSlotsInput{UnitID: testUnitID})
	s.Require().NoError(err)
	s.Equal(equipped.Slots.ItemIDs(), loaded.Slots.ItemIDs())
	s.Equal([]int32{0, 0, 0, 42, 0, 0, 0, 0}, loaded.Slots.ItemIDs())
}

func (s *OrchestratorTestSuite) TestUnequip() {
	s.expectGet(encode(accessory.VersionLegacy, 3, 4), accessory.VersionLegacy)
	s.expectPut(encode(accessory.VersionLegacy, 0, 4), accessory.VersionLegacy)

	out, err := s.orchestrator.Unequip(s.ctx, &savedata.UnequipInput{UnitID: testUnitID, Index: 0})

	s.Require().NoError(err)
	s.Equal(1, out.Slots.EquippedCount())
}

func (s *OrchestratorTestSuite) TestImportBlockStoresOriginalBytes() {
	block := append(encode(accessory.VersionLegacy, 3, 0, 5, 0), 0xde, 0xad)
	s.mockRepo.EXPECT().
		Put(s.ctx, saverepo.PutInput{UnitID: testUnitID, Block: block, Version: accessory.VersionLegacy}).
		Return(&saverepo.PutOutput{Save: &saverepo.SaveBlock{UnitID: testUnitID}}, nil)

	out, err := s.orchestrator.ImportBlock(s.ctx, &savedata.ImportBlockInput{UnitID: testUnitID, Block: block})

	s.Require().NoError(err)
	s.Equal([]int32{3, 0, 5, 0, 0, 0, 0, 0}, out.Slots.ItemIDs())
}

func (s *OrchestratorTestSuite) TestImportBlockRejectsTruncatedBlock() {
	_, err := s.orchestrator.ImportBlock(s.ctx, &savedata.ImportBlockInput{
		UnitID: testUnitID,
		Block:  []byte{0, 0, 0, 0, 1, 0, 0, 0},
	})

	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestExportBlock() {
	block := encode(accessory.VersionLegacy, 9)
	s.expectGet(block, accessory.VersionLegacy)

	out, err := s.orchestrator.ExportBlock(s.ctx, &savedata.ExportBlockInput{UnitID: testUnitID})

	s.Require().NoError(err)
	s.Equal(block, out.Block)
	s.Equal(testNow, out.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestMigrateLegacyToExpanded() {
	s.expectGet(encode(accessory.VersionLegacy, 3, 0, 5, 0), accessory.VersionLegacy)
	s.expectPut(encode(accessory.VersionExpanded, 3, 0, 5, 0), accessory.VersionExpanded)

	out, err := s.orchestrator.Migrate(s.ctx, &savedata.MigrateInput{
		UnitID:        testUnitID,
		TargetVersion: accessory.VersionExpanded,
	})

	s.Require().NoError(err)
	s.Equal(accessory.VersionLegacy, out.From)
	s.Equal(accessory.VersionExpanded, out.To)
	s.False(out.Repaired)
}

func (s *OrchestratorTestSuite) TestMigrateErrors() {
	_, err := s.orchestrator.Migrate(s.ctx, &savedata.MigrateInput{UnitID: testUnitID, TargetVersion: -1})
	s.True(errors.IsInvalidArgument(err))

	s.expectGetNotFound()
	_, err = s.orchestrator.Migrate(s.ctx, &savedata.MigrateInput{UnitID: testUnitID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestInspect() {
	out, err := s.orchestrator.Inspect(s.ctx, &savedata.InspectInput{Block: encode(accessory.VersionLegacy, 7)})

	s.Require().NoError(err)
	s.Equal(int32(7), out.Slots.ItemIDs()[0])
	s.Equal(accessory.FormatLegacy, out.Report.Format)

	_, err = s.orchestrator.Inspect(s.ctx, &savedata.InspectInput{})
	s.True(errors.IsInvalidArgument(err))
}
