package client

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/handlers/savedata/v1alpha1"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
	saveorchmock "github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata/mock"
	"github.com/KirkDiggler/rpg-savedata/internal/testutils/builders"
)

type ClientTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *saveorchmock.MockService
	server      *grpc.Server
	out         *bytes.Buffer
	origDial    func() (grpc.ClientConnInterface, func(), error)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = saveorchmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SaveService: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterAccessoryServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.origDial = dial
	dial = func() (grpc.ClientConnInterface, func(), error) {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return conn, func() { _ = conn.Close() }, nil
	}

	s.out = &bytes.Buffer{}
	ClientCmd.SetOut(s.out)
	ClientCmd.SetErr(&bytes.Buffer{})
}

func (s *ClientTestSuite) TearDownTest() {
	dial = s.origDial
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ClientTestSuite) execute(args ...string) error {
	ClientCmd.SetArgs(args)
	return ClientCmd.ExecuteContext(context.Background())
}

func (s *ClientTestSuite) TestGetSlotsEmptyRoster() {
	s.mockService.EXPECT().
		LoadSlots(gomock.Any(), &savedata.LoadSlotsInput{UnitID: "unit_1"}).
		Return(&savedata.LoadSlotsOutput{Slots: accessory.NewCurrentSlotList()}, nil)

	s.Require().NoError(s.execute("get-slots", "--unit-id", "unit_1"))

	s.Contains(s.out.String(), "No save block stored")
	s.Contains(s.out.String(), "Capacity: 8")
	s.Contains(s.out.String(), "[7] -")
}

func (s *ClientTestSuite) TestEquip() {
	s.mockService.EXPECT().
		Equip(gomock.Any(), &savedata.EquipInput{UnitID: "unit_1", Index: 5, ItemID: 301}).
		Return(&savedata.EquipOutput{Slots: builders.NewRosterBuilder().WithItems(0, 0, 0, 0, 0, 301).Build()}, nil)

	s.Require().NoError(s.execute("equip", "--unit-id", "unit_1", "--index", "5", "--item-id", "301"))

	s.Contains(s.out.String(), "Equipped item 301 in slot 5")
	s.Contains(s.out.String(), "[5] 301")
}

func (s *ClientTestSuite) TestEquipServerError() {
	s.mockService.EXPECT().
		Equip(gomock.Any(), gomock.Any()).
		Return(nil, errors.OutOfRangef("slot index %d out of range", 12))

	err := s.execute("equip", "--unit-id", "unit_1", "--index", "12", "--item-id", "1")

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to equip slot")
}

func (s *ClientTestSuite) TestExportWritesFile() {
	block := []byte{0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	s.mockService.EXPECT().
		ExportBlock(gomock.Any(), &savedata.ExportBlockInput{UnitID: "unit_1"}).
		Return(&savedata.ExportBlockOutput{Block: block}, nil)
	path := filepath.Join(s.T().TempDir(), "unit_1.bin")

	s.Require().NoError(s.execute("export", "--unit-id", "unit_1", "--file", path))

	written, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(block, written)
}

func (s *ClientTestSuite) TestImportSendsFileBytes() {
	block := []byte{0, 0, 0, 0, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	path := filepath.Join(s.T().TempDir(), "unit_1.bin")
	s.Require().NoError(os.WriteFile(path, block, 0o600))

	s.mockService.EXPECT().
		ImportBlock(gomock.Any(), &savedata.ImportBlockInput{UnitID: "unit_1", Block: block}).
		Return(&savedata.ImportBlockOutput{
			Slots: builders.NewRosterBuilder().WithItems(9).Build(),
			Report: &codec.Report{
				Version:   accessory.VersionLegacy,
				Format:    accessory.FormatLegacy,
				SlotsRead: accessory.LegacyCapacity,
			},
		}, nil)

	s.Require().NoError(s.execute("import", "--unit-id", "unit_1", "--file", path))

	s.Contains(s.out.String(), "Imported 20 bytes")
	s.Contains(s.out.String(), "Format: legacy (marker 0)")
	s.Contains(s.out.String(), "[0] 9")
}

func (s *ClientTestSuite) TestMigrate() {
	s.mockService.EXPECT().
		Migrate(gomock.Any(), &savedata.MigrateInput{UnitID: "unit_1", TargetVersion: accessory.VersionExpanded}).
		Return(&savedata.MigrateOutput{
			From:  accessory.VersionLegacy,
			To:    accessory.VersionExpanded,
			Slots: builders.NewRosterBuilder().WithItems(9).Build(),
		}, nil)

	s.Require().NoError(s.execute("migrate", "--unit-id", "unit_1", "--version", "1"))

	s.Contains(s.out.String(), "Migrated marker 0 -> 1")
	s.Contains(s.out.String(), "[0] 9")
}
