// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	saverepo "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata"
	savedatamock "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata/mock"
)

// ExpectStoredBlock makes the repository return block for unitID
func ExpectStoredBlock(
	ctx context.Context,
	mockRepo *savedatamock.MockRepository,
	unitID string,
	block []byte,
	version accessory.SchemaVersion,
	updatedAt time.Time,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, saverepo.GetInput{UnitID: unitID}).
		Return(&saverepo.GetOutput{Save: &saverepo.SaveBlock{
			UnitID:    unitID,
			Block:     block,
			Version:   version,
			UpdatedAt: updatedAt,
		}}, nil)
}

// ExpectNoStoredBlock makes the repository report unitID as missing
func ExpectNoStoredBlock(ctx context.Context, mockRepo *savedatamock.MockRepository, unitID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, saverepo.GetInput{UnitID: unitID}).
		Return(nil, errors.NotFoundf("save block for unit %s not found", unitID))
}

// ExpectBlockPut expects exactly block to be stored for unitID and echoes it back
func ExpectBlockPut(
	ctx context.Context,
	mockRepo *savedatamock.MockRepository,
	unitID string,
	block []byte,
	version accessory.SchemaVersion,
	updatedAt time.Time,
) *gomock.Call {
	return mockRepo.EXPECT().
		Put(ctx, saverepo.PutInput{UnitID: unitID, Block: block, Version: version}).
		Return(&saverepo.PutOutput{Save: &saverepo.SaveBlock{
			UnitID:    unitID,
			Block:     block,
			Version:   version,
			UpdatedAt: updatedAt,
		}}, nil)
}
