package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lunelabs/cyclefem/internal/db"
	"github.com/lunelabs/cyclefem/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour

	// Prediction input favors recency: at most this many records feed
	// the engine.
	predictionHistoryLimit = 12

	chatHistoryLimit = 50
)

type Handler struct {
	repos       *db.Repositories
	auth        *services.AuthService
	assistant   *services.AssistantService
	secretKey   []byte
	authLimiter *clientRateLimiter
	logger      zerolog.Logger
}

type authClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewHandler(repos *db.Repositories, secretKey string, assistantService *services.AssistantService) *Handler {
	return &Handler{
		repos:       repos,
		auth:        services.NewAuthService(repos.Users),
		assistant:   assistantService,
		secretKey:   []byte(secretKey),
		authLimiter: newClientRateLimiter(defaultAuthRateLimit, defaultAuthRateBurst),
		logger:      log.With().Str("component", "api").Logger(),
	}
}
