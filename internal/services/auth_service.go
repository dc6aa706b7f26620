package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/security"
)

type AuthService struct {
	users    db.UserStore
	profiles db.ProfileStore
	log      *logrus.Logger
}

func NewAuthService(users db.UserStore, profiles db.ProfileStore, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, profiles: profiles, log: log}
}

type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Institution string `json:"institution"`
}

// Register creates a User with role "user" plus an empty linked Profile.
// The duplicate check runs before anything is written.
func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	taken, err := service.users.IdentityTaken(username, email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrDuplicateIdentity
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Institution:  strings.TrimSpace(input.Institution),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := service.users.CreateUser(&user); err != nil {
		return models.User{}, err
	}

	if err := service.profiles.CreateProfile(&models.Profile{UserID: user.ID}); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login accepts a username or an email as the identifier; anything with
// an "@" is treated as an email. Unknown identity and wrong password both
// collapse to ErrInvalidCredentials for the caller; the distinction only
// reaches the server log.
func (service *AuthService) Login(identifier string, password string) (models.User, error) {
	identifier = strings.TrimSpace(identifier)

	var user models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = service.users.FindUserByEmail(normalizeEmail(identifier))
	} else {
		user, err = service.users.FindUserByUsername(identifier)
	}
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			service.log.WithField("identifier", identifier).Info("login rejected: unknown identity")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		service.log.WithField("user_id", user.ID).Info("login rejected: password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (service *AuthService) FindUserByID(userID uint) (models.User, error) {
	return service.users.FindUserByID(userID)
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
