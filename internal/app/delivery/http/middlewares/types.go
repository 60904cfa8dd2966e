package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
