package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		SessionTTL:      time.Duration(internalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, session.SessionID)
	return svc.RedisRepository.Set(ctx, key, session, svc.SessionTTL)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(errors.New("session not found"))
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, key)
}
