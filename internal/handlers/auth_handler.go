package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/validator"
)

// Redirect targets of the auth form actions.
const (
	homePath   = "/"
	signInPath = "/sign-in"
)

// AuthHandler handles the sign-up, sign-in and sign-out form actions.
type AuthHandler struct {
	userService    services.UserServicer
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	cookie         middleware.SessionCookie
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer, sessionService services.SessionServicer, auditService services.AuditServicer, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		auditService:   auditService,
		cookie:         cookie,
	}
}

// SignUpRequest is the sign-up form.
type SignUpRequest struct {
	Username        string `form:"username" json:"username" binding:"credential"`
	Password        string `form:"password" json:"password" binding:"credential"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" binding:"credential"`
}

// SignInRequest is the sign-in form.
type SignInRequest struct {
	Username string `form:"username" json:"username" binding:"credential"`
	Password string `form:"password" json:"password" binding:"credential"`
}

// SessionResponse is the current user and session, both null when signed out.
type SessionResponse struct {
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session"`
}

// SignUp handles user registration
// @Summary     Sign up
// @Description Create a user, start a session and redirect home
// @Tags        auth
// @Accept      x-www-form-urlencoded,json
// @Produce     json
// @Param       request body SignUpRequest true "Sign-up form"
// @Success     303 "Redirect to /"
// @Failure     400 {object} FormErrorResponse "Invalid fields or passwords do not match"
// @Failure     409 {object} FormErrorResponse "Username already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if !bindForm(c, &req) {
		return
	}

	if strings.TrimSpace(req.Password) != strings.TrimSpace(req.ConfirmPassword) {
		respondWithFormError(c, apperrors.ErrPasswordMismatch)
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			respondWithFormError(c, apperrors.ErrDuplicateUsername)
			return
		}
		respondWithError(c, err)
		return
	}

	if !h.startSession(c, user) {
		return
	}

	h.auditService.Log(user.ID, "SIGN_UP", "user", user.ID, c.ClientIP(), nil)
	c.Redirect(http.StatusSeeOther, homePath)
}

// SignIn handles user login
// @Summary     Sign in
// @Description Check credentials, start a session and redirect home
// @Tags        auth
// @Accept      x-www-form-urlencoded,json
// @Produce     json
// @Param       request body SignInRequest true "Sign-in form"
// @Success     303 "Redirect to /"
// @Failure     400 {object} FormErrorResponse "Invalid fields"
// @Failure     401 {object} FormErrorResponse "Incorrect username or password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if !bindForm(c, &req) {
		return
	}

	user, err := h.userService.AttemptLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			respondWithFormError(c, apperrors.ErrInvalidCredentials)
			return
		}
		respondWithError(c, err)
		return
	}

	removed, err := h.sessionService.DeleteExpiredSessions(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if removed > 0 {
		logger.Get().Debugw("purged expired sessions", "user_id", user.ID, "count", removed)
	}

	if !h.startSession(c, user) {
		return
	}

	h.auditService.Log(user.ID, "SIGN_IN", "user", user.ID, c.ClientIP(), nil)
	c.Redirect(http.StatusSeeOther, homePath)
}

// SignOut ends the current session
// @Summary     Sign out
// @Description Delete the current session, clear the cookie and redirect to sign-in
// @Tags        auth
// @Produce     json
// @Success     303 "Redirect to /sign-in"
// @Failure     401 {object} FormErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	user, session := middleware.CurrentSession(c)
	if user == nil || session == nil {
		respondWithFormError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.sessionService.InvalidateSession(session.ID); err != nil {
		respondWithError(c, err)
		return
	}
	h.cookie.Clear(c)

	h.auditService.Log(user.ID, "SIGN_OUT", "session", session.ID, c.ClientIP(), nil)
	c.Redirect(http.StatusSeeOther, signInPath)
}

// GetSession returns the signed-in user and session
// @Summary     Current session
// @Description Return the current user and session, or nulls when signed out
// @Tags        auth
// @Produce     json
// @Success     200 {object} SessionResponse
// @Router      /api/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	user, session := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"data": SessionResponse{User: user, Session: session}})
}

// startSession creates a session for user and sets its cookie. It writes the
// error response itself and reports whether the caller may continue.
func (h *AuthHandler) startSession(c *gin.Context, user *models.User) bool {
	session, err := h.sessionService.CreateSession(user.ID)
	if err != nil {
		respondWithError(c, err)
		return false
	}
	token, err := h.sessionService.IssueToken(session)
	if err != nil {
		respondWithError(c, err)
		return false
	}
	h.cookie.Set(c, token, session.ExpiresAt)
	return true
}

// bindForm binds a form action body, answering with field errors when
// validation fails.
func bindForm(c *gin.Context, req interface{}) bool {
	err := c.ShouldBind(req)
	if err == nil {
		return true
	}
	if fields, ok := validator.FieldErrors(err); ok {
		respondWithFieldErrors(c, fields)
		return false
	}
	respondWithFormError(c, apperrors.ErrInvalidInput)
	return false
}
