package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/mail"
	"github.com/wanderlust-rentals/rental-service/internal/metrics"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc         func(ctx context.Context, id string) (*models.User, error)
	findByResetTokenFunc func(ctx context.Context, digest string, now time.Time) (*models.User, error)
	listFunc             func(ctx context.Context) ([]models.User, error)
	createFunc           func(ctx context.Context, user *models.User) error
	updateProfileFunc    func(ctx context.Context, user *models.User) error
	setResetTokenFunc    func(ctx context.Context, id, digest string, expiresAt time.Time) error
	clearResetTokenFunc  func(ctx context.Context, id string) error
	updatePasswordFunc   func(ctx context.Context, id, passwordHash string) error
	deleteFunc           func(ctx context.Context, id string) error
	pingFunc             func(ctx context.Context) error
}

var errNotImplemented = errors.New("not implemented")

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, digest string, now time.Time) (*models.User, error) {
	if m.findByResetTokenFunc != nil {
		return m.findByResetTokenFunc(ctx, digest, now)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error {
	if m.setResetTokenFunc != nil {
		return m.setResetTokenFunc(ctx, id, digest, expiresAt)
	}
	return errNotImplemented
}

func (m *mockUserRepository) ClearResetToken(ctx context.Context, id string) error {
	if m.clearResetTokenFunc != nil {
		return m.clearResetTokenFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, passwordHash)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// =============================================================================
// In-memory UserRepository
// =============================================================================

// memUserRepository keeps users in a map and honors the repository contract.
type memUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]*models.User)}
}

func (r *memUserRepository) get(id string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone
	}
	return nil
}

func (r *memUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	if u := r.get(id); u != nil {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepository) FindByResetToken(_ context.Context, digest string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == digest && u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(now) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *memUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepository) UpdateProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepository) mutate(id string, fn func(u *models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	return nil
}

func (r *memUserRepository) SetResetToken(_ context.Context, id, digest string, expiresAt time.Time) error {
	return r.mutate(id, func(u *models.User) {
		u.ResetToken = &digest
		u.ResetTokenExpiresAt = &expiresAt
	})
}

func (r *memUserRepository) ClearResetToken(_ context.Context, id string) error {
	return r.mutate(id, func(u *models.User) {
		u.ResetToken = nil
		u.ResetTokenExpiresAt = nil
	})
}

func (r *memUserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	return r.mutate(id, func(u *models.User) {
		u.PasswordHash = passwordHash
		u.ResetToken = nil
		u.ResetTokenExpiresAt = nil
	})
}

func (r *memUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepository) Ping(context.Context) error { return nil }

// =============================================================================
// Mock Mailer
// =============================================================================

type mockMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMailer) last() mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return mail.Message{}
	}
	return m.sent[len(m.sent)-1]
}

// =============================================================================
// Test Helpers
// =============================================================================

const testFrontendURL = "http://localhost:3000"

type authFixture struct {
	service *authService
	repo    *memUserRepository
	mailer  *mockMailer
	metrics *metrics.Metrics
	redis   *miniredis.Miniredis
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func setupAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	redisClient, mr := setupTestRedis(t)
	repo := newMemUserRepository()
	mailer := &mockMailer{}
	m := metrics.New()

	svc := NewAuthService(
		repo,
		&bcryptHasher{cost: 4},
		newTestJWTService(t),
		mailer,
		NewResetLimiter(redisClient, DefaultResetRequestLimit, DefaultResetRequestWindow),
		m,
		discardLogger(),
		testFrontendURL+"/",
	).(*authService)

	return &authFixture{service: svc, repo: repo, mailer: mailer, metrics: m, redis: mr}
}

func setupMockAuthService(t *testing.T, repo repository.UserRepository, mailer mail.Mailer) *authService {
	t.Helper()
	return NewAuthService(repo, &bcryptHasher{cost: 4}, newTestJWTService(t), mailer, nil, nil, discardLogger(), testFrontendURL).(*authService)
}

func assertKind(t *testing.T, err error, kind apperr.Kind, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error %q, got nil", kind, message)
	}
	appErr := apperr.As(err)
	if appErr.Kind != kind {
		t.Errorf("error kind = %s, want %s (%v)", appErr.Kind, kind, err)
	}
	if message != "" && appErr.Message != message {
		t.Errorf("error message = %q, want %q", appErr.Message, message)
	}
}

// secretFromLink extracts the reset secret from the mailed HTML.
func secretFromLink(t *testing.T, html string) string {
	t.Helper()
	prefix := testFrontendURL + "/reset-password/"
	start := strings.Index(html, prefix)
	if start < 0 {
		t.Fatalf("reset link not found in %q", html)
	}
	rest := html[start+len(prefix):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		t.Fatalf("unterminated reset link in %q", html)
	}
	return rest[:end]
}

func (f *authFixture) register(t *testing.T, fullName, email, password string) *AuthResult {
	t.Helper()
	result, err := f.service.Register(context.Background(), RegisterInput{FullName: fullName, Email: email, Password: password})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return result
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegister_Success(t *testing.T) {
	f := setupAuthFixture(t)

	result := f.register(t, "Ann", "a@x.com", "secret12")

	if result.User.Email != "a@x.com" || result.User.FullName != "Ann" {
		t.Errorf("Register() user = %+v", result.User)
	}
	if result.User.Role != models.RoleUser {
		t.Errorf("Register() role = %s, want %s", result.User.Role, models.RoleUser)
	}
	if result.AccessToken == "" {
		t.Error("Register() should return an access token")
	}

	stored := f.repo.get(result.User.ID)
	if stored == nil {
		t.Fatal("Register() should persist the user")
	}
	if stored.PasswordHash == "secret12" {
		t.Error("Register() stored the plaintext password")
	}
	if ok, _ := f.service.hasher.Compare(stored.PasswordHash, "secret12"); !ok {
		t.Error("stored hash should verify the registered password")
	}
	if ok, _ := f.service.hasher.Compare(stored.PasswordHash, "secret13"); ok {
		t.Error("stored hash should reject a different password")
	}
	if got := testutil.ToFloat64(f.metrics.AuthEvents.WithLabelValues("register", metrics.OutcomeSuccess)); got != 1 {
		t.Errorf("register success metric = %v, want 1", got)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	f := setupAuthFixture(t)

	result := f.register(t, "  Ann  ", "  A@X.com ", "secret12")

	if result.User.Email != "a@x.com" {
		t.Errorf("Email = %q, want a@x.com", result.User.Email)
	}
	if result.User.FullName != "Ann" {
		t.Errorf("FullName = %q, want Ann", result.User.FullName)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	f := setupAuthFixture(t)

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "secret12"}},
		{"blank name", RegisterInput{FullName: "   ", Email: "a@x.com", Password: "secret12"}},
		{"missing email", RegisterInput{FullName: "Ann", Password: "secret12"}},
		{"missing password", RegisterInput{FullName: "Ann", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Register(context.Background(), tt.in)
			assertKind(t, err, apperr.KindValidation, MsgAllFieldsRequired)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := setupAuthFixture(t)

	first := f.register(t, "Ann", "a@x.com", "secret12")
	originalHash := f.repo.get(first.User.ID).PasswordHash

	_, err := f.service.Register(context.Background(), RegisterInput{FullName: "Other", Email: "A@x.com", Password: "different"})
	assertKind(t, err, apperr.KindConflict, MsgUserExists)

	if got := f.repo.get(first.User.ID).PasswordHash; got != originalHash {
		t.Error("duplicate registration changed the first account's hash")
	}
}

func TestRegister_CreateRace(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
		createFunc: func(ctx context.Context, user *models.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := setupMockAuthService(t, repo, &mockMailer{})

	_, err := svc.Register(context.Background(), RegisterInput{FullName: "Ann", Email: "a@x.com", Password: "secret12"})
	assertKind(t, err, apperr.KindConflict, MsgUserExists)
}

func TestRegister_StoreFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := setupMockAuthService(t, repo, &mockMailer{})

	_, err := svc.Register(context.Background(), RegisterInput{FullName: "Ann", Email: "a@x.com", Password: "secret12"})
	assertKind(t, err, apperr.KindInternal, apperr.InternalMessage)
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	f := setupAuthFixture(t)
	registered := f.register(t, "Ann", "a@x.com", "secret12")

	result, err := f.service.Login(context.Background(), "A@X.com", "secret12")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := f.service.jwtService.ValidateToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Errorf("token userId = %s, want %s", claims.UserID, registered.User.ID)
	}
	if lifetime := time.Until(claims.ExpiresAt.Time); lifetime < 71*time.Hour || lifetime > 72*time.Hour {
		t.Errorf("token expires in %v, want ~72h", lifetime)
	}
	if result.User.Role != models.RoleUser {
		t.Errorf("Login() role = %s", result.User.Role)
	}
}

func TestLogin_Failures(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")

	tests := []struct {
		name     string
		email    string
		password string
		kind     apperr.Kind
		message  string
	}{
		{"empty email", "", "secret12", apperr.KindValidation, MsgAllFieldsRequired},
		{"empty password", "a@x.com", "", apperr.KindValidation, MsgAllFieldsRequired},
		{"unknown user", "b@x.com", "secret12", apperr.KindAuth, MsgUserDoesNotExist},
		{"wrong password", "a@x.com", "wrong", apperr.KindAuth, MsgInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.service.Login(context.Background(), tt.email, tt.password)
			if result != nil {
				t.Error("failed Login() should not return a result")
			}
			assertKind(t, err, tt.kind, tt.message)
		})
	}

	if got := testutil.ToFloat64(f.metrics.AuthEvents.WithLabelValues("login", metrics.OutcomeFailure)); got != 2 {
		t.Errorf("login failure metric = %v, want 2", got)
	}
}

func TestLogin_ContextCancellation(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, ctx.Err()
		},
	}
	svc := setupMockAuthService(t, repo, &mockMailer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "a@x.com", "secret12")
	assertKind(t, err, apperr.KindInternal, apperr.InternalMessage)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Login() error = %v, want wrapped context.Canceled", err)
	}
}

// =============================================================================
// ForgotPassword Tests
// =============================================================================

func TestForgotPassword_RegisteredEmail(t *testing.T) {
	f := setupAuthFixture(t)
	registered := f.register(t, "Ann", "a@x.com", "secret12")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return now }

	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	msg := f.mailer.last()
	if msg.To != "a@x.com" {
		t.Errorf("mail sent to %q, want a@x.com", msg.To)
	}
	secret := secretFromLink(t, msg.HTML)
	if len(secret) != 64 {
		t.Errorf("reset secret length = %d, want 64 hex chars", len(secret))
	}

	stored := f.repo.get(registered.User.ID)
	if stored.ResetToken == nil || stored.ResetTokenExpiresAt == nil {
		t.Fatal("ForgotPassword() should set both reset fields")
	}
	if *stored.ResetToken == secret {
		t.Error("ForgotPassword() stored the plaintext secret")
	}
	if *stored.ResetToken != HashResetToken(secret) {
		t.Error("stored digest does not match the mailed secret")
	}
	if !stored.ResetTokenExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expiry = %v, want %v", stored.ResetTokenExpiresAt, now.Add(time.Hour))
	}
}

func TestForgotPassword_UnknownEmailLooksIdentical(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")

	errKnown := f.service.ForgotPassword(context.Background(), "a@x.com")
	errUnknown := f.service.ForgotPassword(context.Background(), "nobody@x.com")

	if errKnown != nil || errUnknown != nil {
		t.Fatalf("ForgotPassword() errors = %v / %v, want nil for both", errKnown, errUnknown)
	}
	if len(f.mailer.sent) != 1 {
		t.Errorf("mails sent = %d, want 1", len(f.mailer.sent))
	}
}

func TestForgotPassword_EmailRequired(t *testing.T) {
	f := setupAuthFixture(t)

	err := f.service.ForgotPassword(context.Background(), "  ")
	assertKind(t, err, apperr.KindValidation, MsgEmailRequired)
}

func TestForgotPassword_MailFailureRollsBack(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		message string
	}{
		{"not configured", mail.ErrNotConfigured, MsgEmailConfigError},
		{"send failure", errors.New("connection reset"), MsgEmailSendFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupAuthFixture(t)
			registered := f.register(t, "Ann", "a@x.com", "secret12")
			f.mailer.err = tt.sendErr

			err := f.service.ForgotPassword(context.Background(), "a@x.com")
			assertKind(t, err, apperr.KindTransport, tt.message)

			stored := f.repo.get(registered.User.ID)
			if stored.ResetToken != nil || stored.ResetTokenExpiresAt != nil {
				t.Error("reset fields should be cleared after a mail failure")
			}
		})
	}
}

func TestForgotPassword_OverwritesPreviousToken(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")

	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	first := secretFromLink(t, f.mailer.last().HTML)

	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	second := secretFromLink(t, f.mailer.last().HTML)

	_, err := f.service.ResetPassword(context.Background(), first, "newpass123")
	assertKind(t, err, apperr.KindInvalidToken, MsgInvalidResetToken)

	if _, err := f.service.ResetPassword(context.Background(), second, "newpass123"); err != nil {
		t.Errorf("latest token should work, got %v", err)
	}
}

func TestForgotPassword_Throttled(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")

	for i := 0; i < DefaultResetRequestLimit+2; i++ {
		if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
			t.Fatalf("ForgotPassword() #%d error = %v", i+1, err)
		}
	}

	if got := len(f.mailer.sent); got != DefaultResetRequestLimit {
		t.Errorf("mails sent = %d, want %d", got, DefaultResetRequestLimit)
	}
	if got := testutil.ToFloat64(f.metrics.AuthEvents.WithLabelValues("forgot_password", metrics.OutcomeThrottled)); got != 2 {
		t.Errorf("throttled metric = %v, want 2", got)
	}
}

func TestForgotPassword_LimiterUnavailableFailsOpen(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")
	f.redis.Close()

	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if len(f.mailer.sent) != 1 {
		t.Error("ForgotPassword() should still send mail when redis is down")
	}
}

// =============================================================================
// ResetPassword Tests
// =============================================================================

func TestResetPassword_Validation(t *testing.T) {
	f := setupAuthFixture(t)

	tests := []struct {
		name     string
		token    string
		password string
		message  string
	}{
		{"missing token", "", "newpass123", MsgResetFieldsRequired},
		{"missing password", "abc", "", MsgResetFieldsRequired},
		{"short password", "abc", "short12", MsgPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.ResetPassword(context.Background(), tt.token, tt.password)
			assertKind(t, err, apperr.KindValidation, tt.message)
		})
	}
}

func TestResetPassword_ShortPasswordLeavesStateUntouched(t *testing.T) {
	f := setupAuthFixture(t)
	registered := f.register(t, "Ann", "a@x.com", "secret12")
	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	secret := secretFromLink(t, f.mailer.last().HTML)
	before := f.repo.get(registered.User.ID)

	_, err := f.service.ResetPassword(context.Background(), secret, "short")
	assertKind(t, err, apperr.KindValidation, MsgPasswordTooShort)

	after := f.repo.get(registered.User.ID)
	if after.PasswordHash != before.PasswordHash || after.ResetToken == nil {
		t.Error("rejected reset should not change stored state")
	}
}

func TestResetPassword_SingleUse(t *testing.T) {
	f := setupAuthFixture(t)
	registered := f.register(t, "Ann", "a@x.com", "secret12")
	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	secret := secretFromLink(t, f.mailer.last().HTML)

	token, err := f.service.ResetPassword(context.Background(), secret, "newpass123")
	if err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	claims, err := f.service.jwtService.ValidateToken(token)
	if err != nil || claims.UserID != registered.User.ID {
		t.Errorf("ResetPassword() token claims = %+v, err = %v", claims, err)
	}

	stored := f.repo.get(registered.User.ID)
	if stored.ResetToken != nil || stored.ResetTokenExpiresAt != nil {
		t.Error("successful reset should clear both reset fields")
	}

	_, err = f.service.ResetPassword(context.Background(), secret, "another123")
	assertKind(t, err, apperr.KindInvalidToken, MsgInvalidResetToken)
}

func TestResetPassword_Expired(t *testing.T) {
	f := setupAuthFixture(t)
	f.register(t, "Ann", "a@x.com", "secret12")

	issued := time.Now()
	f.service.now = func() time.Time { return issued }
	if err := f.service.ForgotPassword(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	secret := secretFromLink(t, f.mailer.last().HTML)

	f.service.now = func() time.Time { return issued.Add(ResetTokenTTL) }
	_, err := f.service.ResetPassword(context.Background(), secret, "newpass123")
	assertKind(t, err, apperr.KindInvalidToken, MsgInvalidResetToken)

	f.service.now = func() time.Time { return issued.Add(ResetTokenTTL - time.Second) }
	if _, err := f.service.ResetPassword(context.Background(), secret, "newpass123"); err != nil {
		t.Errorf("token should be valid just before expiry, got %v", err)
	}
}

func TestResetPassword_UnknownToken(t *testing.T) {
	f := setupAuthFixture(t)

	_, err := f.service.ResetPassword(context.Background(), "deadbeef", "newpass123")
	assertKind(t, err, apperr.KindInvalidToken, MsgInvalidResetToken)
}

// =============================================================================
// End-to-end scenario
// =============================================================================

func TestAuthFlow_RegisterLoginForgotReset(t *testing.T) {
	f := setupAuthFixture(t)
	ctx := context.Background()

	registered := f.register(t, "Ann", "a@x.com", "secret12")
	if registered.User.Email != "a@x.com" {
		t.Fatalf("registered email = %s", registered.User.Email)
	}

	_, err := f.service.Login(ctx, "a@x.com", "wrong")
	assertKind(t, err, apperr.KindAuth, MsgInvalidPassword)

	if err := f.service.ForgotPassword(ctx, "a@x.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if !f.repo.get(registered.User.ID).HasPendingReset(time.Now()) {
		t.Fatal("user should have a pending reset")
	}

	secret := secretFromLink(t, f.mailer.last().HTML)
	token, err := f.service.ResetPassword(ctx, secret, "newpass123")
	if err != nil || token == "" {
		t.Fatalf("ResetPassword() token = %q, err = %v", token, err)
	}

	if _, err := f.service.Login(ctx, "a@x.com", "newpass123"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	_, err = f.service.Login(ctx, "a@x.com", "secret12")
	assertKind(t, err, apperr.KindAuth, MsgInvalidPassword)
}
