// Package services contains server-side business logic. This file implements
// UserService: account creation, credential checks, and the session
// lifecycle behind login and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/cryptox"
	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/auth"
	"github.com/dmitrijs2005/scriptoria/internal/server/config"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is what a successful login hands back to the interactive surface.
type Session struct {
	Token     string
	Email     string
	UserName  string
	ExpiresAt time.Time
}

// UserService provides authentication-related operations:
// - SignUp: validate and create accounts
// - Login: verify credentials and open a session
// - Authenticate / Logout: check and revoke sessions
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
	logger                  logging.Logger
	now                     func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
		logger:                  logger.With("module", "users"),
		now:                     func() time.Time { return time.Now().UTC() },
	}
}

// SignUp validates the request and creates the account. It never opens a
// session; the caller logs in separately.
func (s *UserService) SignUp(ctx context.Context, req dto.SignUpRequest) (*models.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	digest, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return nil, s.infra(ctx, "hash password", err)
	}

	user := &models.User{
		UserName:       req.UserName,
		Email:          req.Email,
		PasswordDigest: digest,
		CreatedAt:      s.now(),
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, s.infra(ctx, "create user", err)
	}

	s.logger.Info(ctx, "account created", "user_id", u.ID)
	return u, nil
}

// VerifyCredentials returns the account when password matches. An unknown
// email and a wrong password both yield common.ErrInvalidCredentials and
// cost the same argon2 work.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = dto.NormalizeEmail(email)

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyDummy(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, s.infra(ctx, "get user", err)
	}

	ok, err := cryptox.VerifyPassword(user.PasswordDigest, password)
	if err != nil {
		s.logger.Error(ctx, "stored digest is unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// Login verifies the credentials and opens a server-side session, purging
// the account's expired sessions in the same transaction.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*Session, error) {
	req.Normalize()

	user, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionValidityDuration),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Sessions(tx)
		if _, err := repo.DeleteExpired(ctx, user.Email, now); err != nil {
			return fmt.Errorf("error purging sessions: %w", err)
		}
		if err := repo.Create(ctx, session); err != nil {
			return fmt.Errorf("error creating session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.infra(ctx, "open session", err)
	}

	token, err := auth.GenerateToken(session.ID, session.Email, s.jwtSecret, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return nil, s.infra(ctx, "sign token", err)
	}

	s.logger.Info(ctx, "logged in", "user_id", user.ID)
	return &Session{Token: token, Email: user.Email, UserName: user.UserName, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate returns the email bound to token. The token must be signed
// by this server and its session must still be active.
func (s *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrorUnauthorized
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", s.infra(ctx, "find session", err)
	}

	if session.Email != claims.Email || !session.Active(s.now()) {
		return "", common.ErrorUnauthorized
	}
	return session.Email, nil
}

// Logout revokes the session behind token. It always succeeds from the
// caller's point of view; revocation failures are only logged.
func (s *UserService) Logout(ctx context.Context, token string) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return
	}
	if err := s.repomanager.Sessions(s.db).Revoke(ctx, claims.SessionID, s.now()); err != nil {
		s.logger.Warn(ctx, "failed to revoke session", "error", err)
	}
}

func (s *UserService) infra(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s: %v", common.ErrInfrastructure, op, err)
}
