// Package savedata implements the orchestrator that loads, edits and stores units'
// accessory rosters through the versioned codec
package savedata

//go:generate mockgen -destination=mock/mock_service.go -package=saveorchmock github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	saverepo "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata"
)

// Service defines the roster operations exposed to handlers and the CLI
type Service interface {
	LoadSlots(ctx context.Context, input *LoadSlotsInput) (*LoadSlotsOutput, error)
	SaveSlots(ctx context.Context, input *SaveSlotsInput) (*SaveSlotsOutput, error)

	ImportBlock(ctx context.Context, input *ImportBlockInput) (*ImportBlockOutput, error)
	ExportBlock(ctx context.Context, input *ExportBlockInput) (*ExportBlockOutput, error)

	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	Migrate(ctx context.Context, input *MigrateInput) (*MigrateOutput, error)
	Inspect(ctx context.Context, input *InspectInput) (*InspectOutput, error)
}

// Config holds the dependencies for the save data orchestrator
type Config struct {
	Repository saverepo.Repository
	Codec      *codec.Codec
	// Capacity is the roster size every loaded record is expanded to
	Capacity int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.Capacity < accessory.LegacyCapacity {
		vb.Fieldf("Capacity", "must be at least %d", accessory.LegacyCapacity)
	}

	return vb.Build()
}

type orchestrator struct {
	repo     saverepo.Repository
	codec    *codec.Codec
	capacity int
}

// NewOrchestrator creates a new save data orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:     cfg.Repository,
		codec:    cfg.Codec,
		capacity: cfg.Capacity,
	}, nil
}

// LoadSlots reads and decodes the stored block for a unit
func (o *orchestrator) LoadSlots(ctx context.Context, input *LoadSlotsInput) (*LoadSlotsOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	list, report, found, err := o.load(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}

	return &LoadSlotsOutput{
		Slots:  list,
		Found:  found,
		Report: report,
	}, nil
}

// SaveSlots encodes the roster with the configured marker and stores it
func (o *orchestrator) SaveSlots(ctx context.Context, input *SaveSlotsInput) (*SaveSlotsOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}
	if input.Slots == nil {
		return nil, errors.InvalidArgument("slots are required")
	}

	out, _, err := o.store(ctx, input.UnitID, input.Slots, o.codec)
	return out, err
}

// ImportBlock validates a raw block by decoding it and stores the original bytes
func (o *orchestrator) ImportBlock(ctx context.Context, input *ImportBlockInput) (*ImportBlockOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}
	if len(input.Block) == 0 {
		return nil, errors.InvalidArgument("save block is required")
	}

	list, report, err := o.codec.Decode(input.Block, o.capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode save block for unit %s", input.UnitID)
	}

	_, err = o.repo.Put(ctx, saverepo.PutInput{
		UnitID:  input.UnitID,
		Block:   input.Block,
		Version: report.Version,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store imported save block")
	}

	slog.InfoContext(ctx, "Save block imported",
		"unit_id", input.UnitID,
		"version", report.Version,
		"format", report.Format,
		"repaired", report.Repaired,
		"bytes", len(input.Block))

	return &ImportBlockOutput{
		Slots:  list,
		Report: report,
	}, nil
}

// ExportBlock returns the stored block exactly as persisted
func (o *orchestrator) ExportBlock(ctx context.Context, input *ExportBlockInput) (*ExportBlockOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	out, err := o.repo.Get(ctx, saverepo.GetInput{UnitID: input.UnitID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get save block")
	}

	return &ExportBlockOutput{
		Block:     out.Save.Block,
		Version:   out.Save.Version,
		UpdatedAt: out.Save.UpdatedAt,
	}, nil
}

// Equip loads the roster, places the item and stores the roster again.
// The legacy writer persists only the first LegacyCapacity slots, so equipping
// past them returns FailedPrecondition. Under an expanded writer the stored
// block loads back empty, and the returned roster shows that.
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	list, err := o.edit(ctx, input.UnitID, func(list *accessory.SlotList) error {
		if err := o.checkPersisted(list, input.Index); err != nil {
			return err
		}
		return list.Equip(input.Index, input.ItemID)
	})
	if err != nil {
		return nil, err
	}

	return &EquipOutput{Slots: list}, nil
}

// Unequip loads the roster, empties the slot and stores the roster again
func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	list, err := o.edit(ctx, input.UnitID, func(list *accessory.SlotList) error {
		return list.Unequip(input.Index)
	})
	if err != nil {
		return nil, err
	}

	return &UnequipOutput{Slots: list}, nil
}

// Migrate decodes the stored block in whatever layout it has and rewrites it
// under the target marker. Migrating an expanded block stores an empty roster
// because decoding it runs the repair pass.
func (o *orchestrator) Migrate(ctx context.Context, input *MigrateInput) (*MigrateOutput, error) {
	if input == nil || input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	target, err := codec.New(&codec.Config{WriteVersion: input.TargetVersion})
	if err != nil {
		return nil, errors.Wrap(err, "invalid target version")
	}

	list, report, found, err := o.load(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("save block for unit %s not found", input.UnitID)
	}

	if _, _, err := o.store(ctx, input.UnitID, list, target); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Save block migrated",
		"unit_id", input.UnitID,
		"from", report.Version,
		"to", input.TargetVersion,
		"repaired", report.Repaired)

	return &MigrateOutput{
		From:     report.Version,
		To:       input.TargetVersion,
		Repaired: report.Repaired,
		Slots:    list,
	}, nil
}

// Inspect decodes a block without touching storage
func (o *orchestrator) Inspect(_ context.Context, input *InspectInput) (*InspectOutput, error) {
	if input == nil || len(input.Block) == 0 {
		return nil, errors.InvalidArgument("save block is required")
	}

	list, report, err := o.codec.Decode(input.Block, o.capacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode save block")
	}

	return &InspectOutput{
		Slots:  list,
		Report: report,
	}, nil
}

// load returns the decoded roster for a unit, or a fresh roster when nothing is stored
func (o *orchestrator) load(ctx context.Context, unitID string) (*accessory.SlotList, *codec.Report, bool, error) {
	out, err := o.repo.Get(ctx, saverepo.GetInput{UnitID: unitID})
	if errors.IsNotFound(err) {
		return accessory.NewSlotList(o.capacity), nil, false, nil
	}
	if err != nil {
		return nil, nil, false, errors.Wrap(err, "failed to get save block")
	}

	list, report, err := o.codec.Decode(out.Save.Block, o.capacity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode save block",
			"unit_id", unitID,
			"stored_version", out.Save.Version,
			"error", err)
		return nil, nil, false, errors.Wrapf(err, "failed to decode save block for unit %s", unitID)
	}

	slog.DebugContext(ctx, "Save block loaded",
		"unit_id", unitID,
		"version", report.Version,
		"format", report.Format,
		"slots_read", report.SlotsRead,
		"repaired", report.Repaired)

	return list, report, true, nil
}

// store encodes and persists the roster, returning the stored block
func (o *orchestrator) store(ctx context.Context, unitID string, list *accessory.SlotList, c *codec.Codec) (*SaveSlotsOutput, []byte, error) {
	block, err := c.Encode(list)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode slots")
	}

	out, err := o.repo.Put(ctx, saverepo.PutInput{
		UnitID:  unitID,
		Block:   block,
		Version: c.WriteVersion(),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to store save block")
	}

	slog.InfoContext(ctx, "Save block stored",
		"unit_id", unitID,
		"version", c.WriteVersion(),
		"bytes", len(block),
		"equipped", list.EquippedCount())

	return &SaveSlotsOutput{
		Version:   c.WriteVersion(),
		BlockSize: len(block),
		UpdatedAt: out.Save.UpdatedAt,
	}, block, nil
}

func (o *orchestrator) edit(ctx context.Context, unitID string, mutate func(*accessory.SlotList) error) (*accessory.SlotList, error) {
	list, _, _, err := o.load(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if err := mutate(list); err != nil {
		return nil, err
	}

	_, block, err := o.store(ctx, unitID, list, o.codec)
	if err != nil {
		return nil, err
	}

	// report what the next load will see, not what was asked for
	stored, _, err := o.codec.Decode(block, o.capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode stored block for unit %s", unitID)
	}

	return stored, nil
}

// checkPersisted rejects slots the configured writer drops on encode
func (o *orchestrator) checkPersisted(list *accessory.SlotList, index int) error {
	if o.codec.WriteVersion().IsExpanded() {
		return nil
	}
	if index >= accessory.LegacyCapacity && index < list.Count() {
		return errors.FailedPreconditionf("slot %d is not persisted by the legacy layout (marker %d), which keeps %d slots",
			index, o.codec.WriteVersion(), accessory.LegacyCapacity)
	}
	return nil
}
