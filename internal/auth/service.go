package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/pkg/gravatar"
	"github.com/ferdiebergado/userkit/internal/platform/email"
	"github.com/ferdiebergado/userkit/internal/platform/hash"
	"github.com/ferdiebergado/userkit/internal/platform/jwt"
	"github.com/ferdiebergado/userkit/internal/user"
	"github.com/google/uuid"
)

var (
	ErrEmailInUse         = errors.New("auth service: email in use")
	ErrInvalidCredentials = errors.New("auth service: email or password is wrong")
	ErrNotVerified        = errors.New("auth service: email not verified")
	ErrAlreadyVerified    = errors.New("auth service: email already verified")
)

// Repository covers the verification mutation that matches by token instead
// of id.
type Repository interface {
	Verify(ctx context.Context, verificationToken string) error
}

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
}

type Service struct {
	repo   Repository
	users  user.Service
	hasher hash.Hasher
	signer jwt.Signer
	mailer email.Mailer
	cfg    *config.Config
}

func NewService(repo Repository, users user.Service, providers *Providers, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		hasher: providers.Hasher,
		signer: providers.Signer,
		mailer: providers.Mailer,
		cfg:    cfg,
	}
}

var _ AuthService = (*Service)(nil)

type RegisterParams struct {
	Email        string
	Password     string
	Subscription string
}

func (p *RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p *LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// Register creates an unverified account and sends the verification email.
// Each registration gets its own verification token. The email send is
// synchronous; when it fails the created record is deleted so a failed
// registration leaves nothing behind and the caller can simply retry.
func (s *Service) Register(ctx context.Context, params RegisterParams) (user.User, error) {
	existing, err := s.users.FindByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return user.User{}, fmt.Errorf("find user with email %s: %w", params.Email, err)
	}

	if existing != nil {
		return user.User{}, ErrEmailInUse
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, user.CreateParams{
		Email:             params.Email,
		PasswordHash:      passwordHash,
		Subscription:      params.Subscription,
		AvatarURL:         gravatar.URL(params.Email, s.cfg.Avatar.DefaultSize),
		VerificationToken: uuid.NewString(),
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, ErrEmailInUse
		}
		return user.User{}, fmt.Errorf("create user %s: %w", params.Email, err)
	}

	if err := s.sendVerification(newUser.Email, newUser.VerificationToken); err != nil {
		if delErr := s.users.Delete(ctx, newUser.ID); delErr != nil {
			slog.Error("failed to delete user after email failure", "reason", delErr)
		}
		return user.User{}, fmt.Errorf("send verification email: %w", err)
	}

	return newUser, nil
}

func (s *Service) sendVerification(to, verificationToken string) error {
	const subject = "Verify email"
	data := map[string]string{
		"Title": subject,
		"Link":  s.cfg.Server.URL + "/verify/" + verificationToken,
	}
	return s.mailer.SendHTML([]string{to}, subject, "verification", data)
}

// Login checks the credentials and issues a session token that is also
// persisted on the user record, so logout can invalidate it. Unknown email
// and wrong password both map to ErrInvalidCredentials; only the unverified
// case is reported distinctly.
func (s *Service) Login(ctx context.Context, params LoginParams) (string, *user.User, error) {
	u, err := s.users.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user with email %s: %w", params.Email, err)
	}

	if !u.Verified {
		return "", nil, ErrNotVerified
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password for user %s: %w", u.ID, err)
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(u.ID, []string{s.cfg.JWT.Issuer}, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token for user %s: %w", u.ID, err)
	}

	if err := s.users.StartSession(ctx, u.ID, token); err != nil {
		return "", nil, fmt.Errorf("start session for user %s: %w", u.ID, err)
	}

	return token, u, nil
}

// Verify consumes a verification token. The repository overwrites the token
// with a sentinel, so a second call with the same token reports not found.
func (s *Service) Verify(ctx context.Context, verificationToken string) error {
	if err := s.repo.Verify(ctx, verificationToken); err != nil {
		return fmt.Errorf("verify with token %s: %w", verificationToken, err)
	}
	return nil
}

// ResendVerification resends the verification email using the token stored at
// registration, unchanged.
func (s *Service) ResendVerification(ctx context.Context, emailAddr string) error {
	u, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("find user with email %s: %w", emailAddr, err)
	}

	if u.Verified {
		return ErrAlreadyVerified
	}

	if err := s.sendVerification(u.Email, u.VerificationToken); err != nil {
		return fmt.Errorf("resend verification email: %w", err)
	}

	return nil
}
