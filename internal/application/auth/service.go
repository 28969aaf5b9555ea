package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domainAccount "github.com/critter-exchange/critter-exchange/internal/domain/account"
	domainSession "github.com/critter-exchange/critter-exchange/internal/domain/session"
)

// Service handles authentication. Tokens are HS256 JWTs; each issued token is
// also recorded as a session row keyed by its hash, so logout and expiry
// reaping revoke tokens before their JWT expiry.
type Service struct {
	accountRepo domainAccount.Repository
	sessionRepo domainSession.Repository
	jwtSecret   []byte
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewService creates an auth service.
func NewService(accountRepo domainAccount.Repository, sessionRepo domainSession.Repository, jwtSecret []byte, sessionTTL time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// LoginResult contains login response.
type LoginResult struct {
	Account *domainAccount.Account
	Session *domainSession.Session
	Token   string
}

// Login authenticates an account by email and creates a session.
func (s *Service) Login(ctx context.Context, email, password string, userAgent, ipAddress *string) (*LoginResult, error) {
	email = domainAccount.NormalizeEmail(email)
	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !domainAccount.VerifyPassword(a.PasswordHash, password) {
		return nil, fmt.Errorf("invalid email or password")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	token, err := s.signToken(a, now, expiresAt)
	if err != nil {
		return nil, err
	}

	sess := &domainSession.Session{
		SessionID:  uuid.New(),
		TokenHash:  hashToken(token),
		AccountID:  a.AccountID,
		CreatedAt:  now,
		ExpiresAt:  expiresAt,
		LastSeenAt: &now,
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", a.AccountID.String()).Msg("account login")
	return &LoginResult{Account: a, Session: sess, Token: token}, nil
}

// Authenticate validates a token and returns the account. Both checks must
// pass: the JWT signature/expiry and a live session row for the token.
func (s *Service) Authenticate(ctx context.Context, token string) (*domainAccount.Account, *domainSession.Session, error) {
	if token == "" {
		return nil, nil, fmt.Errorf("missing token")
	}
	if _, err := s.parseToken(token); err != nil {
		return nil, nil, fmt.Errorf("invalid token: %w", err)
	}
	sess, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, fmt.Errorf("session not found")
	}
	if sess.IsExpired(time.Now().UTC()) {
		_ = s.sessionRepo.DeleteByID(ctx, sess.SessionID)
		return nil, nil, fmt.Errorf("session expired")
	}
	a, err := s.accountRepo.GetByID(ctx, sess.AccountID)
	if err != nil {
		return nil, nil, err
	}
	if a == nil {
		return nil, nil, fmt.Errorf("account not found")
	}
	_ = s.sessionRepo.UpdateLastSeen(ctx, sess.SessionID)
	return a, sess, nil
}

// Logout deletes the session for a token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByTokenHash(ctx, hashToken(token))
}

func (s *Service) signToken(a *domainAccount.Account, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      a.AccountID.String(),
		"username": a.Username,
		"jti":      uuid.New().String(),
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *Service) parseToken(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
