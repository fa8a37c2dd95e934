package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	sessionapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
)

// SessionHandler handles authentication and session state requests
type SessionHandler struct {
	BaseHandler
	sessions *sessionapp.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *sessionapp.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers the session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/me", h.Me)
		auth.PUT("/profile", h.UpdateProfile)
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// UserView is the user representation returned to the UI
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionView is the session state returned to the UI
type SessionView struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserView `json:"user,omitempty"`
}

func newUserView(user *session.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

// Login authenticates the shopper and replaces the session
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SessionView{Authenticated: true, User: newUserView(user)})
}

// Register creates an account and signs the shopper in
func (h *SessionHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.sessions.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, SessionView{Authenticated: true, User: newUserView(user)})
}

// Logout clears the session. Always succeeds.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	h.Success(c, SessionView{Authenticated: false})
}

// Refresh exchanges the refresh token for a new access token
func (h *SessionHandler) Refresh(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		h.HandleError(c, shared.ErrNotAuthenticated)
		return
	}
	if err := h.sessions.Refresh(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SessionView{Authenticated: true, User: newUserView(h.sessions.User())})
}

// Me returns the current session state
func (h *SessionHandler) Me(c *gin.Context) {
	h.Success(c, SessionView{
		Authenticated: h.sessions.IsAuthenticated(),
		User:          newUserView(h.sessions.User()),
	})
}

// UpdateProfile edits the signed-in shopper's profile
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		h.HandleError(c, shared.ErrNotAuthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.sessions.UpdateProfile(c.Request.Context(), api.ProfileUpdate{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newUserView(user))
}
