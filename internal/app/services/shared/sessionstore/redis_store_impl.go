package sessionstore

import (
	"context"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type redisStore struct {
	RedisRepository contracts.RedisRepository
}

func NewRedisStore(redisRepository contracts.RedisRepository) contracts.IntakeSessionStore {
	return &redisStore{RedisRepository: redisRepository}
}

func sessionKey(sessionID string) string {
	return constvars.RedisIntakeSessionKeyPrefix + sessionID
}

func (s *redisStore) Save(ctx context.Context, session *survey.Session, exp time.Duration) error {
	return s.RedisRepository.Set(ctx, sessionKey(session.ID), session, exp)
}

func (s *redisStore) Find(ctx context.Context, sessionID string) (*survey.Session, error) {
	data, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(survey.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
