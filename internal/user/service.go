package user

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/platform/avatar"
	"github.com/ferdiebergado/userkit/internal/platform/image"
	"github.com/google/uuid"
)

// Repository is the interface for user record persistence.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, userID string) (*User, error)
	SaveSessionToken(ctx context.Context, userID, token string) error
	ClearSessionToken(ctx context.Context, userID string) error
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
	Delete(ctx context.Context, userID string) error
}

// Service exposes user record operations to handlers and the auth service.
type Service interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, userID string) (*User, error)
	StartSession(ctx context.Context, userID, token string) error
	EndSession(ctx context.Context, userID string) error
	ChangeAvatar(ctx context.Context, userID, filename string, src io.Reader) (string, error)
	Delete(ctx context.Context, userID string) error
}

type service struct {
	repo    Repository
	store   avatar.Store
	resizer image.Resizer
	cfg     *config.Avatar
}

var _ Service = (*service)(nil)

func NewService(repo Repository, store avatar.Store, resizer image.Resizer, cfg *config.Avatar) *service {
	return &service{
		repo:    repo,
		store:   store,
		resizer: resizer,
		cfg:     cfg,
	}
}

func (s *service) Create(ctx context.Context, params CreateParams) (User, error) {
	if params.Subscription == "" {
		params.Subscription = SubscriptionStarter
	}
	return s.repo.Create(ctx, params)
}

func (s *service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) Find(ctx context.Context, userID string) (*User, error) {
	return s.repo.Find(ctx, userID)
}

func (s *service) StartSession(ctx context.Context, userID, token string) error {
	if err := s.repo.SaveSessionToken(ctx, userID, token); err != nil {
		return fmt.Errorf("save session token for user %s: %w", userID, err)
	}
	return nil
}

func (s *service) EndSession(ctx context.Context, userID string) error {
	if err := s.repo.ClearSessionToken(ctx, userID); err != nil {
		return fmt.Errorf("clear session token for user %s: %w", userID, err)
	}
	return nil
}

// ChangeAvatar stores the uploaded file under a fresh name, scales it to the
// configured square size, and points the user's avatar at the public path.
// A resize failure propagates so the caller can retry the upload instead of
// being served an unprocessed image.
func (s *service) ChangeAvatar(ctx context.Context, userID, filename string, src io.Reader) (string, error) {
	storedName := fmt.Sprintf("%s_%s%s", userID, uuid.NewString(), filepath.Ext(filename))

	diskPath, publicURL, err := s.store.Save(storedName, src)
	if err != nil {
		return "", fmt.Errorf("store avatar for user %s: %w", userID, err)
	}

	if err := s.resizer.ResizeFile(diskPath, s.cfg.Size, s.cfg.Size); err != nil {
		return "", fmt.Errorf("resize avatar %s: %w", diskPath, err)
	}

	if err := s.repo.UpdateAvatarURL(ctx, userID, publicURL); err != nil {
		return "", fmt.Errorf("update avatar url for user %s: %w", userID, err)
	}

	return publicURL, nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
