package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/uuid"
)

// sessionIDEntropy is the number of random bytes behind a session id.
const sessionIDEntropy = 15

// SessionOptions configures the session service.
type SessionOptions struct {
	// Secret signs the session token carried by the cookie.
	Secret []byte
	// ExpiresIn is the lifetime of a new or extended session.
	ExpiresIn time.Duration
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// sessionService issues, validates and revokes login sessions.
type sessionService struct {
	db        *gorm.DB
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(db *gorm.DB, opts SessionOptions) SessionServicer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &sessionService{
		db:        db,
		secret:    opts.Secret,
		expiresIn: opts.ExpiresIn,
		now:       func() time.Time { return now().UTC() },
	}
}

// CreateSession starts a new session for userID.
func (s *sessionService) CreateSession(userID string) (*models.Session, error) {
	id, err := uuid.NewOpaque(sessionIDEntropy)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	session := &models.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.expiresIn),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// IssueToken signs the cookie value for session.
func (s *sessionService) IssueToken(session *models.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.UserID,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return signed, nil
}

// ValidateSession resolves a token to its user and session. Missing,
// malformed, badly signed, unknown and expired tokens all yield nil, nil,
// nil; only store faults are returned as errors. A session past half of its
// lifetime is extended and marked Fresh so the caller re-issues the cookie.
func (s *sessionService) ValidateSession(token string) (*models.User, *models.Session, error) {
	if token == "" {
		return nil, nil, nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || claims.ID == "" {
		return nil, nil, nil
	}

	var session models.Session
	if err := s.db.Where("id = ?", claims.ID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if session.UserID != claims.Subject {
		return nil, nil, nil
	}

	now := s.now()
	if session.Expired(now) {
		if err := s.InvalidateSession(session.ID); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}

	var user models.User
	if err := s.db.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !now.Before(session.ExpiresAt.Add(-s.expiresIn / 2)) {
		session.ExpiresAt = now.Add(s.expiresIn)
		if err := s.db.Model(&session).Update("expires_at", session.ExpiresAt).Error; err != nil {
			return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		session.Fresh = true
	}

	return &user, &session, nil
}

// InvalidateSession deletes a session. Deleting an unknown session is not an error.
func (s *sessionService) InvalidateSession(sessionID string) error {
	if err := s.db.Where("id = ?", sessionID).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpiredSessions removes expired sessions of userID, or of every user
// when userID is empty, and reports how many were removed.
func (s *sessionService) DeleteExpiredSessions(userID string) (int64, error) {
	q := s.db.Where("expires_at <= ?", s.now())
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	res := q.Delete(&models.Session{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}
