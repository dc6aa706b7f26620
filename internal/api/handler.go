package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/mail"
	"github.com/symposiahq/symposia/internal/services"
)

type Handler struct {
	store        *db.Store
	auth         *services.AuthService
	sessions     *services.SessionService
	abstracts    *services.AbstractService
	invitations  *services.InvitationService
	reference    *services.ReferenceService
	uploads      *UploadStorage
	validate     *validator.Validate
	log          *logrus.Logger
	secretKey    []byte
	cookieSecure bool
}

type Options struct {
	SecretKey    string
	CookieSecure bool
	UploadDir    string
}

func NewHandler(store *db.Store, notifier *mail.Notifier, log *logrus.Logger, opts Options) (*Handler, error) {
	uploads, err := NewUploadStorage(opts.UploadDir)
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:        store,
		auth:         services.NewAuthService(store.Users, store.Profiles, log),
		sessions:     services.NewSessionService(store.Sessions, store.Users),
		abstracts:    services.NewAbstractService(store.Abstracts, store.Users, notifier, uploads, log),
		invitations:  services.NewInvitationService(store.Invitations, store.Users, notifier, log),
		reference:    services.NewReferenceService(store.Notifications, store.Committee, store.Awards, log),
		uploads:      uploads,
		validate:     validator.New(),
		log:          log,
		secretKey:    []byte(opts.SecretKey),
		cookieSecure: opts.CookieSecure,
	}, nil
}
