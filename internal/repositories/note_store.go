package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NoteStore is the remote day-note collaborator. It is strictly
// best-effort: the itinerary snapshot in Postgres is written first and is
// authoritative, a failed remote upsert is logged by the caller and
// dropped. There is no retry and no reconciliation between the two.
type NoteStore interface {
	Upsert(ctx context.Context, itineraryID string, dayNumber int, notes string) error
	Get(ctx context.Context, itineraryID string, dayNumber int) (string, error)
}

var ErrNoteNotFound = errors.New("note not found")

type redisNoteStore struct {
	client *redis.Client
}

func NewRedisNoteStore(client *redis.Client) NoteStore {
	return &redisNoteStore{client: client}
}

func noteKey(itineraryID string, dayNumber int) string {
	return fmt.Sprintf("notes:%s:%d", itineraryID, dayNumber)
}

func (s *redisNoteStore) Upsert(ctx context.Context, itineraryID string, dayNumber int, notes string) error {
	return s.client.Set(ctx, noteKey(itineraryID, dayNumber), notes, 0).Err()
}

func (s *redisNoteStore) Get(ctx context.Context, itineraryID string, dayNumber int) (string, error) {
	val, err := s.client.Get(ctx, noteKey(itineraryID, dayNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoteNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
