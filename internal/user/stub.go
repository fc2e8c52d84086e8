package user

import (
	"context"
	"errors"
	"io"
)

type StubService struct {
	CreateFunc       func(ctx context.Context, params CreateParams) (User, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*User, error)
	FindFunc         func(ctx context.Context, userID string) (*User, error)
	StartSessionFunc func(ctx context.Context, userID, token string) error
	EndSessionFunc   func(ctx context.Context, userID string) error
	ChangeAvatarFunc func(ctx context.Context, userID, filename string, src io.Reader) (string, error)
	DeleteFunc       func(ctx context.Context, userID string) error
}

var _ Service = &StubService{}

func (s *StubService) Create(ctx context.Context, params CreateParams) (User, error) {
	if s.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubService) Find(ctx context.Context, userID string) (*User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) StartSession(ctx context.Context, userID, token string) error {
	if s.StartSessionFunc == nil {
		return errors.New("StartSession() not implemented by stub")
	}
	return s.StartSessionFunc(ctx, userID, token)
}

func (s *StubService) EndSession(ctx context.Context, userID string) error {
	if s.EndSessionFunc == nil {
		return errors.New("EndSession() not implemented by stub")
	}
	return s.EndSessionFunc(ctx, userID)
}

func (s *StubService) ChangeAvatar(ctx context.Context, userID, filename string, src io.Reader) (string, error) {
	if s.ChangeAvatarFunc == nil {
		return "", errors.New("ChangeAvatar() not implemented by stub")
	}
	return s.ChangeAvatarFunc(ctx, userID, filename, src)
}

func (s *StubService) Delete(ctx context.Context, userID string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID)
}

type StubRepo struct {
	CreateFunc            func(ctx context.Context, params CreateParams) (User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (*User, error)
	FindFunc              func(ctx context.Context, userID string) (*User, error)
	SaveSessionTokenFunc  func(ctx context.Context, userID, token string) error
	ClearSessionTokenFunc func(ctx context.Context, userID string) error
	UpdateAvatarURLFunc   func(ctx context.Context, userID, avatarURL string) error
	DeleteFunc            func(ctx context.Context, userID string) error
}

var _ Repository = &StubRepo{}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Find(ctx context.Context, userID string) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) SaveSessionToken(ctx context.Context, userID, token string) error {
	if r.SaveSessionTokenFunc == nil {
		return errors.New("SaveSessionToken() not implemented by stub")
	}
	return r.SaveSessionTokenFunc(ctx, userID, token)
}

func (r *StubRepo) ClearSessionToken(ctx context.Context, userID string) error {
	if r.ClearSessionTokenFunc == nil {
		return errors.New("ClearSessionToken() not implemented by stub")
	}
	return r.ClearSessionTokenFunc(ctx, userID)
}

func (r *StubRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	if r.UpdateAvatarURLFunc == nil {
		return errors.New("UpdateAvatarURL() not implemented by stub")
	}
	return r.UpdateAvatarURLFunc(ctx, userID, avatarURL)
}

func (r *StubRepo) Delete(ctx context.Context, userID string) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID)
}
