package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"moodsync-backend/models"
	"moodsync-backend/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrOTPNotFound        = errors.New("no code was sent to this identifier")
	ErrOTPExpired         = errors.New("code has expired, request a new one")
	ErrOTPMismatch        = errors.New("incorrect code")
)

// OTPTTL is how long a one-time passcode stays valid.
const OTPTTL = 5 * time.Minute

// AuthService handles password accounts and the legacy OTP flow.
type AuthService struct {
	users UserStore
	otps  *OTPStore
	now   func() time.Time
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithOTPStore sets the OTP store
func AuthWithOTPStore(store *OTPStore) AuthServiceOption {
	return func(s *AuthService) {
		s.otps = store
	}
}

// AuthWithClock sets the time source used for created_at stamps
func AuthWithClock(now func() time.Time) AuthServiceOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.otps == nil {
		s.otps = NewOTPStore(OTPTTL)
	}
	return s
}

// Signup creates a password account. The username check is a pre-insert
// existence check only; concurrent signups can still race.
func (s *AuthService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if name == "" {
		name = username
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SendOTP issues a 6-digit passcode for the identifier and returns it.
// The code goes back in the API response instead of out-of-band delivery;
// this is a demo shortcut, not a security design.
func (s *AuthService) SendOTP(identifier, method string) (string, error) {
	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	s.otps.Put(identifier, code, method)
	return code, nil
}

// OTPProfile is the sessionless payload returned on a successful verify.
type OTPProfile struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Method     string `json:"method"`
}

// VerifyOTP checks the passcode for an identifier. Expired records are
// evicted and unusable afterwards; a successful verify also consumes the
// record.
func (s *AuthService) VerifyOTP(identifier, code, name string) (*OTPProfile, error) {
	record, ok, expired := s.otps.Get(identifier)
	if expired {
		return nil, ErrOTPExpired
	}
	if !ok {
		return nil, ErrOTPNotFound
	}
	if record.Code != code {
		return nil, ErrOTPMismatch
	}

	s.otps.Delete(identifier)
	return &OTPProfile{
		Name:       name,
		Identifier: identifier,
		Method:     record.Method,
	}, nil
}

// generateOTPCode returns a random 6-digit numeric code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
