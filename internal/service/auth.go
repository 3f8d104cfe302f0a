package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/mail"
	"github.com/wanderlust-rentals/rental-service/internal/metrics"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing auth messages.
const (
	MsgAllFieldsRequired     = "All fields are required"
	MsgUserExists            = "User already exists"
	MsgUserDoesNotExist      = "User does not exist"
	MsgInvalidPassword       = "Invalid password"
	MsgEmailRequired         = "Email is required"
	MsgEmailConfigError      = "Email service configuration error"
	MsgEmailSendFailed       = "Failed to send reset email"
	MsgResetFieldsRequired   = "Token and new password are required"
	MsgPasswordTooShort      = "Password must be at least 8 characters long"
	MsgInvalidResetToken     = "Invalid or expired reset token"
	MsgResetLinkSent         = "If your email is registered, you will receive a password reset link"
	MsgAccountCreated        = "Account created successfully"
	MsgLoginSuccessful       = "Login successful"
	MsgPasswordResetComplete = "Password reset successful"
)

// MinPasswordLength applies to passwords set through a reset.
const MinPasswordLength = 8

// RegisterInput carries the registration form.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User        *models.User
	AccessToken string
}

// AuthService orchestrates registration, login and the password reset flow.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ForgotPassword issues a reset link. Unknown and throttled emails succeed silently.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset secret and returns a fresh access token.
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	hasher      PasswordHasher
	jwtService  JWTService
	mailer      mail.Mailer
	limiter     ResetLimiter
	metrics     *metrics.Metrics
	log         *slog.Logger
	frontendURL string
	now         func() time.Time
}

// NewAuthService creates a new AuthService. limiter and m may be nil.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	mailer mail.Mailer,
	limiter ResetLimiter,
	m *metrics.Metrics,
	log *slog.Logger,
	frontendURL string,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		mailer:      mailer,
		limiter:     limiter,
		metrics:     m,
		log:         log,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		now:         time.Now,
	}
}

// NormalizeEmail lower-cases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := NormalizeEmail(in.Email)
	if fullName == "" || email == "" || in.Password == "" {
		return nil, apperr.Validation(MsgAllFieldsRequired)
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		s.metrics.RecordAuth("register", metrics.OutcomeFailure)
		return nil, apperr.Conflict(MsgUserExists)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, internal(err, "user_lookup_failed", "email", email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, internal(err, "password_hash_failed")
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.RecordAuth("register", metrics.OutcomeFailure)
			return nil, apperr.Conflict(MsgUserExists)
		}
		return nil, internal(err, "user_create_failed", "email", email)
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, internal(err, "token_issue_failed", "user_id", user.ID)
	}

	s.metrics.RecordAuth("register", metrics.OutcomeSuccess)
	s.log.Info("user registered", "user_id", user.ID)

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation(MsgAllFieldsRequired)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordAuth("login", metrics.OutcomeFailure)
			return nil, apperr.Auth(MsgUserDoesNotExist)
		}
		return nil, internal(err, "user_lookup_failed", "email", email)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, internal(err, "password_compare_failed", "user_id", user.ID)
	}
	if !ok {
		s.metrics.RecordAuth("login", metrics.OutcomeFailure)
		return nil, apperr.Auth(MsgInvalidPassword)
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, internal(err, "token_issue_failed", "user_id", user.ID)
	}

	s.metrics.RecordAuth("login", metrics.OutcomeSuccess)

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return apperr.Validation(MsgEmailRequired)
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		switch {
		case err != nil:
			s.log.Warn("reset throttle unavailable, allowing request", "error", err)
		case !allowed:
			s.metrics.RecordAuth("forgot_password", metrics.OutcomeThrottled)
			s.log.Info("reset request throttled")
			return nil
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return internal(err, "user_lookup_failed", "email", email)
	}

	secret, digest, err := GenerateResetToken()
	if err != nil {
		return internal(err, "reset_token_generate_failed")
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, digest, s.now().Add(ResetTokenTTL)); err != nil {
		return internal(err, "reset_token_store_failed", "user_id", user.ID)
	}

	msg, err := mail.ResetPasswordMessage(user.Email, s.frontendURL+"/reset-password/"+secret)
	if err != nil {
		s.rollbackResetToken(ctx, user.ID)
		return internal(err, "reset_email_render_failed", "user_id", user.ID)
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.rollbackResetToken(ctx, user.ID)
		s.metrics.RecordAuth("forgot_password", metrics.OutcomeFailure)
		if errors.Is(err, mail.ErrNotConfigured) {
			return apperr.Transport(MsgEmailConfigError, err)
		}
		return apperr.Transport(MsgEmailSendFailed, err)
	}

	s.metrics.RecordAuth("forgot_password", metrics.OutcomeSuccess)
	s.log.Info("reset link sent", "user_id", user.ID)

	return nil
}

// rollbackResetToken clears a token whose link was never delivered.
func (s *authService) rollbackResetToken(ctx context.Context, userID string) {
	if err := s.userRepo.ClearResetToken(ctx, userID); err != nil {
		s.log.Error("failed to clear undelivered reset token", "user_id", userID, "error", err)
	}
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" || newPassword == "" {
		return "", apperr.Validation(MsgResetFieldsRequired)
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return "", apperr.Validation(MsgPasswordTooShort)
	}

	user, err := s.userRepo.FindByResetToken(ctx, HashResetToken(token), s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordAuth("reset_password", metrics.OutcomeFailure)
			return "", apperr.InvalidToken(MsgInvalidResetToken)
		}
		return "", internal(err, "reset_token_lookup_failed")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return "", internal(err, "password_hash_failed")
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.InvalidToken(MsgInvalidResetToken)
		}
		return "", internal(err, "password_update_failed", "user_id", user.ID)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", internal(err, "token_issue_failed", "user_id", user.ID)
	}

	s.metrics.RecordAuth("reset_password", metrics.OutcomeSuccess)
	s.log.Info("password reset", "user_id", user.ID)

	return accessToken, nil
}

// internal wraps an infrastructure failure with an oops code and context as an Internal error.
func internal(err error, code string, kv ...any) error {
	return apperr.Internal(oops.Code(code).With(kv...).Wrap(err))
}
