package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	service       domain.AuthService
	allowNewUsers bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, allowNewUsers bool) *AuthHandler {
	return &AuthHandler{service: service, allowNewUsers: allowNewUsers}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.allowNewUsers {
		c.String(http.StatusNotFound, "New users not currently accepted")
		return
	}
	if loggedIn, _ := sessions.Default(c).Get(sessionKeyLoggedIn).(bool); loggedIn {
		c.String(http.StatusForbidden, "You are already logged in")
		return
	}

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("SessionId: %s post /register: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "Invalid data entered")
		return
	}

	if err := h.service.Register(req); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPassword),
			errors.Is(err, domain.ErrDuplicateUser),
			errors.Is(err, domain.ErrDuplicateEmail):
			c.String(http.StatusBadRequest, err.Error())
		default:
			log.Printf("SessionId: %s post /register: %v", sessionID(c), err)
			c.String(http.StatusBadRequest, "Error registering user")
		}
		return
	}
	c.String(http.StatusOK, "ok")
}

// Login handles POST /login. On success the session is regenerated: all
// previous values are dropped before the authenticated state is written.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("SessionId: %s post /login: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "Invalid email data entered")
		return
	}

	user, err := h.service.Authenticate(req)
	sess := sessions.Default(c)
	if err != nil {
		sess.Set(sessionKeyLoggedIn, false)
		if serr := sess.Save(); serr != nil {
			log.Printf("SessionId: %s post /login session save: %v", sessionID(c), serr)
		}
		switch {
		case errors.Is(err, domain.ErrMissingEmail),
			errors.Is(err, domain.ErrInvalidPassword),
			errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrAccountLocked),
			errors.Is(err, domain.ErrIncorrectPassword):
			log.Printf("SessionId: %s post /login. Login failed for request: %s", sessionID(c), req.Email)
			c.String(http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateUsers):
			log.Printf("SessionId: %s post /login integrity fault for %s", sessionID(c), req.Email)
			c.String(http.StatusBadRequest, err.Error())
		default:
			log.Printf("SessionId: %s post /login: %v", sessionID(c), err)
			c.String(http.StatusBadRequest, "error")
		}
		return
	}

	sess.Clear()
	sess.Set(sessionKeyLoggedIn, true)
	sess.Set(sessionKeyUserName, user.Name)
	sess.Set(sessionKeyUserEmail, user.Email)
	if err := sess.Save(); err != nil {
		log.Printf("SessionId: %s post /login session save: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s post /login. User: %s authenticated.", sessionID(c), user.Email)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /logout by invalidating the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		log.Printf("SessionId: %s post /logout: %v", sessionID(c), err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.String(http.StatusOK, "ok")
}
