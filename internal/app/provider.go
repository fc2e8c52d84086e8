package app

import (
	"fmt"

	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/platform/avatar"
	"github.com/ferdiebergado/userkit/internal/platform/email"
	"github.com/ferdiebergado/userkit/internal/platform/hash"
	"github.com/ferdiebergado/userkit/internal/platform/image"
	"github.com/ferdiebergado/userkit/internal/platform/jwt"
	"github.com/ferdiebergado/userkit/internal/platform/router"
	"github.com/ferdiebergado/userkit/internal/platform/validation"
)

type Providers struct {
	Signer      jwt.Signer
	Mailer      email.Mailer
	Validator   validation.Validator
	Hasher      hash.Hasher
	Router      router.Router
	AvatarStore avatar.Store
	Resizer     image.Resizer
}

func setupProviders(cfg *config.Config, securityKey string) (*Providers, error) {
	signer := jwt.NewGolangJWTSigner(cfg.JWT, securityKey)

	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("load smtp config: %w", err)
	}

	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	store, err := avatar.NewFSStore(cfg.Avatar)
	if err != nil {
		return nil, fmt.Errorf("new avatar store: %w", err)
	}

	return &Providers{
		Signer:      signer,
		Mailer:      mailer,
		Validator:   validation.NewGoPlaygroundValidator(),
		Hasher:      hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:      router.NewGoexpressRouter(),
		AvatarStore: store,
		Resizer:     image.NewImagingResizer(),
	}, nil
}
