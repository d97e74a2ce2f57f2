// Package savedata provides persistence for units' accessory save blocks
package savedata

//go:generate mockgen -destination=mock/mock_repository.go -package=savedatamock github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
)

// Repository stores encoded save blocks keyed by unit ID. Blocks are opaque here;
// decoding belongs to the codec.
type Repository interface {
	// Get retrieves the save block for a unit
	// Returns errors.InvalidArgument for an empty unit ID
	// Returns errors.NotFound if no block is stored
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces the save block for a unit
	// Returns errors.InvalidArgument for an empty unit ID or block
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes the save block for a unit
	// Returns errors.InvalidArgument for an empty unit ID
	// Returns errors.NotFound if no block is stored
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveBlock is one unit's stored accessory block
type SaveBlock struct {
	UnitID    string
	Block     []byte
	Version   accessory.SchemaVersion
	UpdatedAt time.Time
}

// GetInput defines the input for getting a save block
type GetInput struct {
	UnitID string
}

// GetOutput defines the output for getting a save block
type GetOutput struct {
	Save *SaveBlock
}

// PutInput defines the input for storing a save block
type PutInput struct {
	UnitID  string
	Block   []byte
	Version accessory.SchemaVersion
}

// PutOutput defines the output for storing a save block
type PutOutput struct {
	Save *SaveBlock
}

// DeleteInput defines the input for deleting a save block
type DeleteInput struct {
	UnitID string
}

// DeleteOutput defines the output for deleting a save block
type DeleteOutput struct{}

const (
	errUnitIDEmpty = "unit ID cannot be empty"
	errBlockEmpty  = "save block cannot be empty"
)

func validatePut(input PutInput) error {
	if input.UnitID == "" {
		return errors.InvalidArgument(errUnitIDEmpty)
	}
	if len(input.Block) == 0 {
		return errors.InvalidArgument(errBlockEmpty)
	}
	return nil
}
