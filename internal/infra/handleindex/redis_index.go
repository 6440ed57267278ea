package handleindex

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const (
	reminderKeyPrefix = "schedule:reminder:"
	handleKeyPrefix   = "schedule:handle:"
	remindersKey      = "schedule:reminders"

	retentionAfterTrigger = 1 * time.Hour
)

type itemRecord struct {
	Handle     string            `json:"handle"`
	ReminderID string            `json:"reminder_id"`
	Metadata   map[string]string `json:"metadata"`
	TriggerAt  time.Time         `json:"trigger_at"`
}

// RedisIndex maps reminders to the handles scheduled for them. Entries
// expire an hour after the last trigger they hold.
type RedisIndex struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisIndex(client *redis.Client) *RedisIndex {
	return &RedisIndex{
		client: client,
		now:    time.Now,
	}
}

func (r *RedisIndex) Put(ctx context.Context, reminderID string, item domain.ScheduledItem) error {
	if reminderID == "" {
		return ErrMissingReminder
	}

	data, err := json.Marshal(itemRecord{
		Handle:     item.Handle.String(),
		ReminderID: reminderID,
		Metadata:   item.Metadata,
		TriggerAt:  item.TriggerAt,
	})
	if err != nil {
		return ErrInvalidItemData
	}

	ttl := item.TriggerAt.Sub(r.now()) + retentionAfterTrigger
	if ttl < retentionAfterTrigger {
		ttl = retentionAfterTrigger
	}

	reminderKey := reminderKeyPrefix + reminderID

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, reminderKey, item.Handle.String(), data)
	// NX covers the freshly created hash, GT only ever extends it
	pipe.ExpireNX(ctx, reminderKey, ttl)
	pipe.ExpireGT(ctx, reminderKey, ttl)
	pipe.Set(ctx, handleKeyPrefix+item.Handle.String(), reminderID, ttl)
	pipe.SAdd(ctx, remindersKey, reminderID)

	_, err = pipe.Exec(ctx)
	return err
}

// Remove is a no-op for unknown handles.
func (r *RedisIndex) Remove(ctx context.Context, handle domain.Handle) error {
	handleKey := handleKeyPrefix + handle.String()

	reminderID, err := r.client.Get(ctx, handleKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HDel(ctx, reminderKeyPrefix+reminderID, handle.String())
	pipe.Del(ctx, handleKey)

	_, err = pipe.Exec(ctx)
	return err
}

// Items returns every indexed item. Reminders whose hash has expired are
// dropped from the reminder set on the way.
func (r *RedisIndex) Items(ctx context.Context) ([]domain.ScheduledItem, error) {
	reminderIDs, err := r.client.SMembers(ctx, remindersKey).Result()
	if err != nil {
		return nil, err
	}
	if len(reminderIDs) == 0 {
		return []domain.ScheduledItem{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(reminderIDs))
	for i, id := range reminderIDs {
		cmds[i] = pipe.HGetAll(ctx, reminderKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	items := make([]domain.ScheduledItem, 0)
	stale := make([]any, 0)
	for i, cmd := range cmds {
		entries, err := cmd.Result()
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			stale = append(stale, reminderIDs[i])
			continue
		}

		for handle, raw := range entries {
			var record itemRecord
			if err := json.Unmarshal([]byte(raw), &record); err != nil {
				slog.WarnContext(ctx, "skipping undecodable index entry",
					slog.String("reminder_id", reminderIDs[i]),
					slog.String("handle", handle),
					slog.String("error", err.Error()),
				)
				continue
			}
			items = append(items, domain.ScheduledItem{
				Handle:    domain.Handle(record.Handle),
				Metadata:  domain.Metadata(record.Metadata),
				TriggerAt: record.TriggerAt,
			})
		}
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, remindersKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to prune expired reminders from index",
				slog.Int("count", len(stale)),
				slog.String("error", err.Error()),
			)
		}
	}

	return items, nil
}
