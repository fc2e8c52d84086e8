package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/userkit/internal/user"
)

type StubService struct {
	RegisterFunc           func(ctx context.Context, params RegisterParams) (user.User, error)
	LoginFunc              func(ctx context.Context, params LoginParams) (string, *user.User, error)
	VerifyFunc             func(ctx context.Context, verificationToken string) error
	ResendVerificationFunc func(ctx context.Context, email string) error
}

var _ AuthService = &StubService{}

func (s *StubService) Register(ctx context.Context, params RegisterParams) (user.User, error) {
	if s.RegisterFunc == nil {
		return user.User{}, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, *user.User, error) {
	if s.LoginFunc == nil {
		return "", nil, errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) Verify(ctx context.Context, verificationToken string) error {
	if s.VerifyFunc == nil {
		return errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(ctx, verificationToken)
}

func (s *StubService) ResendVerification(ctx context.Context, email string) error {
	if s.ResendVerificationFunc == nil {
		return errors.New("ResendVerification() not implemented by stub")
	}
	return s.ResendVerificationFunc(ctx, email)
}

type StubRepo struct {
	VerifyFunc func(ctx context.Context, verificationToken string) error
}

var _ Repository = &StubRepo{}

func (r *StubRepo) Verify(ctx context.Context, verificationToken string) error {
	if r.VerifyFunc == nil {
		return errors.New("Verify() not implemented by stub")
	}
	return r.VerifyFunc(ctx, verificationToken)
}
