// Package v1alpha1 handles the accessory roster grpc service interface
package v1alpha1

import (
	"context"
	"encoding/base64"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
)

// Request and response field names
const (
	FieldUnitID        = "unit_id"
	FieldIndex         = "index"
	FieldItemID        = "item_id"
	FieldBlock         = "block"
	FieldTargetVersion = "target_version"
	FieldSlots         = "slots"
	FieldCapacity      = "capacity"
	FieldFound         = "found"
	FieldVersion       = "version"
	FieldFormat        = "format"
	FieldRepaired      = "repaired"
	FieldFromVersion   = "from_version"
	FieldToVersion     = "to_version"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SaveService savedata.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SaveService == nil {
		return errors.InvalidArgument("save service is required")
	}
	return nil
}

// Handler implements AccessoryServiceServer
type Handler struct {
	saveService savedata.Service
}

var _ AccessoryServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{saveService: cfg.SaveService}, nil
}

// GetSlots returns a unit's roster.
// Request: unit_id. Response: unit_id, found, capacity, slots, and version/format/repaired when found.
func (h *Handler) GetSlots(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.saveService.LoadSlots(ctx, &savedata.LoadSlotsInput{UnitID: unitID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := slotsFields(unitID, out.Slots)
	fields[FieldFound] = out.Found
	if out.Report != nil {
		addReport(fields, out.Report)
	}

	return toStruct(fields)
}

// EquipSlot equips an item. Request: unit_id, index, item_id. Response: unit_id, capacity, slots.
func (h *Handler) EquipSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	index, err := requiredInt(req, FieldIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemID, err := requiredInt(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.saveService.Equip(ctx, &savedata.EquipInput{
		UnitID: unitID,
		Index:  int(index),
		ItemID: itemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(slotsFields(unitID, out.Slots))
}

// UnequipSlot empties a slot. Request: unit_id, index. Response: unit_id, capacity, slots.
func (h *Handler) UnequipSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	index, err := requiredInt(req, FieldIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.saveService.Unequip(ctx, &savedata.UnequipInput{UnitID: unitID, Index: int(index)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(slotsFields(unitID, out.Slots))
}

// ImportSave stores a raw block. Request: unit_id, block (base64).
// Response: unit_id, capacity, slots, version, format, repaired.
func (h *Handler) ImportSave(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	encoded, err := requiredString(req, FieldBlock)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	block, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("block must be base64 encoded"))
	}

	out, err := h.saveService.ImportBlock(ctx, &savedata.ImportBlockInput{UnitID: unitID, Block: block})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := slotsFields(unitID, out.Slots)
	addReport(fields, out.Report)
	return toStruct(fields)
}

// ExportSave returns the stored block bytes. Request: unit_id.
func (h *Handler) ExportSave(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.saveService.ExportBlock(ctx, &savedata.ExportBlockInput{UnitID: unitID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return wrapperspb.Bytes(out.Block), nil
}

// MigrateSave rewrites a stored block. Request: unit_id, target_version.
// Response: unit_id, capacity, slots, from_version, to_version, repaired.
func (h *Handler) MigrateSave(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	unitID, err := requiredString(req, FieldUnitID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	target, err := requiredInt(req, FieldTargetVersion)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.saveService.Migrate(ctx, &savedata.MigrateInput{
		UnitID:        unitID,
		TargetVersion: accessory.SchemaVersion(target),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := slotsFields(unitID, out.Slots)
	fields[FieldFromVersion] = int32(out.From)
	fields[FieldToVersion] = int32(out.To)
	fields[FieldRepaired] = out.Repaired
	return toStruct(fields)
}

func slotsFields(unitID string, list *accessory.SlotList) map[string]interface{} {
	ids := list.ItemIDs()
	slots := make([]interface{}, len(ids))
	for i, id := range ids {
		slots[i] = id
	}

	return map[string]interface{}{
		FieldUnitID:   unitID,
		FieldCapacity: list.Count(),
		FieldSlots:    slots,
	}
}

func addReport(fields map[string]interface{}, report *codec.Report) {
	fields[FieldVersion] = int32(report.Version)
	fields[FieldFormat] = report.Format.String()
	fields[FieldRepaired] = report.Repaired
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return out, nil
}

func requiredString(req *structpb.Struct, field string) (string, error) {
	v, ok := req.GetFields()[field]
	if !ok || v.GetStringValue() == "" {
		return "", errors.InvalidArgumentf("%s is required", field)
	}
	return v.GetStringValue(), nil
}

func requiredInt(req *structpb.Struct, field string) (int32, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", field)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", field)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a 32-bit integer", field)
	}
	return int32(f), nil
}
