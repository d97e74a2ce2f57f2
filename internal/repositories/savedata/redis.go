package savedata

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-savedata/internal/redis"
)

const (
	// Key pattern: savedata:unit:{unit_id}
	saveKeyPrefix = "savedata:unit:"

	fieldBlock     = "block"
	fieldVersion   = "version"
	fieldUpdatedAt = "updated_at"
)

// RedisConfig contains configuration for the Redis save block repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed save block repository. Each unit is one hash.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, GetKey(input.UnitID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get save block for unit %s", input.UnitID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("save block for unit %s not found", input.UnitID).
			WithMeta("unit_id", input.UnitID)
	}

	save, err := decodeFields(input.UnitID, fields)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Save: save}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	save := &SaveBlock{
		UnitID:    input.UnitID,
		Block:     append([]byte(nil), input.Block...),
		Version:   input.Version,
		UpdatedAt: r.clock.Now().UTC(),
	}

	key := GetKey(input.UnitID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldBlock, save.Block,
		fieldVersion, int32(save.Version),
		fieldUpdatedAt, save.UpdatedAt.UnixMilli(),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store save block for unit %s", input.UnitID)
	}

	return &PutOutput{Save: save}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.UnitID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save block for unit %s", input.UnitID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save block for unit %s not found", input.UnitID)
	}

	return &DeleteOutput{}, nil
}

func decodeFields(unitID string, fields map[string]string) (*SaveBlock, error) {
	block, ok := fields[fieldBlock]
	if !ok {
		return nil, errors.DataLoss("stored save block has no block field").WithMeta("unit_id", unitID)
	}

	version, err := strconv.ParseInt(fields[fieldVersion], 10, 32)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored save block has an invalid version").
			WithMeta("unit_id", unitID)
	}

	updatedAt, err := strconv.ParseInt(fields[fieldUpdatedAt], 10, 64)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored save block has an invalid timestamp").
			WithMeta("unit_id", unitID)
	}

	return &SaveBlock{
		UnitID:    unitID,
		Block:     []byte(block),
		Version:   accessory.SchemaVersion(version),
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}, nil
}

// GetKey returns the Redis key for a unit's save block
// Exposed for testing purposes
func GetKey(unitID string) string {
	return fmt.Sprintf("%s%s", saveKeyPrefix, unitID)
}
