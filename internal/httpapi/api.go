package httpapi

import (
	"context"

	"go.uber.org/zap"

	"trivia-api/internal/trivia"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	service *trivia.Service
	store   Pinger
	logger  *zap.Logger
}

func NewAPI(service *trivia.Service, store Pinger, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		service: service,
		store:   store,
		logger:  logger,
	}
}
