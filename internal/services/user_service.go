package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/password"
	"finboard/internal/uuid"
)

// userIDEntropy is the number of random bytes behind a user id.
const userIDEntropy = 10

// userService handles user-related business logic.
type userService struct {
	db     *gorm.DB
	hasher *password.Hasher
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, hasher *password.Hasher) UserServicer {
	return &userService{db: db, hasher: hasher}
}

// CreateUser registers a new user. Username and password are trimmed before
// they are stored.
func (s *userService) CreateUser(username, plain string) (*models.User, error) {
	username = strings.TrimSpace(username)
	plain = strings.TrimSpace(plain)
	if username == "" || plain == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	id, err := uuid.NewOpaque(userIDEntropy)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.db.Create(user).Error; err != nil {
		// Lost a race with a concurrent sign-up for the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// AttemptLogin checks a username and password pair. An unknown user, a user
// without a stored hash and a wrong password all return ErrInvalidCredentials.
func (s *userService) AttemptLogin(username, plain string) (*models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(strings.TrimSpace(plain), user.PasswordHash)
	if err != nil {
		logger.Get().Warnw("stored password hash could not be verified", "user_id", user.ID, "error", err)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
