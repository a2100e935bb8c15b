package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix  = "draft:"
	defaultDraftTTL = 24 * time.Hour
)

// DraftRedisRepository keeps one JSON-encoded draft per client under
// draft:<client_id>. Every save refreshes the TTL.
type DraftRedisRepository struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

var _ interfaces.IDraftRepository = (*DraftRedisRepository)(nil)

func NewDraftRedisRepository(rdb goredis.Cmdable, ttl time.Duration) *DraftRedisRepository {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &DraftRedisRepository{rdb: rdb, ttl: ttl}
}

func (r *DraftRedisRepository) Get(ctx context.Context, clientID int64) (*entities.DraftOrder, error) {
	raw, err := r.rdb.Get(ctx, draftKey(clientID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var d entities.DraftOrder
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DraftRedisRepository) Save(ctx context.Context, d *entities.DraftOrder) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, draftKey(d.ClientID), raw, r.ttl).Err()
}

func (r *DraftRedisRepository) Delete(ctx context.Context, clientID int64) error {
	return r.rdb.Del(ctx, draftKey(clientID)).Err()
}

func draftKey(clientID int64) string {
	return draftKeyPrefix + strconv.FormatInt(clientID, 10)
}
