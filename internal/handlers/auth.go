package handlers

import (
	"errors"
	"net/http"

	"Platform/internal/dto"
	"Platform/internal/service"
	"Platform/internal/token"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, register, token validation and user lookup.
type AuthHandler struct {
	svc   *service.AuthService
	codec *token.Codec
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, codec *token.Codec) *AuthHandler {
	return &AuthHandler{svc: svc, codec: codec}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	issued, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, issuedToResponse(issued))
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	issued, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, issuedToResponse(issued))
}

// ValidateToken godoc
// @Summary      Validate a token for another service
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateTokenRequest  true  "Token"
// @Success      200   {object}  dto.ValidateTokenResponse
// @Failure      401   {object}  dto.ValidateTokenResponse
// @Router       /auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req dto.ValidateTokenRequest
	_ = c.ShouldBindJSON(&req)

	if req.Token == "" {
		c.JSON(http.StatusUnauthorized, dto.ValidateTokenResponse{Valid: false, Error: "Token is required"})
		return
	}
	sub, err := h.codec.Verify(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ValidateTokenResponse{Valid: false, Error: "Invalid or expired token"})
		return
	}
	if sub.UserID <= 0 || sub.Username == "" {
		c.JSON(http.StatusUnauthorized, dto.ValidateTokenResponse{
			Valid: false,
			Error: "Failed to extract token claims: missing subject fields",
		})
		return
	}
	c.JSON(http.StatusOK, dto.ValidateTokenResponse{Valid: true, UserID: sub.UserID, Username: sub.Username})
}

// GetUser godoc
// @Summary      Get a user by ID
// @Tags         auth
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /auth/users/{id} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// ListUsers godoc
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, out)
}

func issuedToResponse(t service.IssuedToken) dto.TokenResponse {
	return dto.TokenResponse{
		Token:     t.Token,
		UserID:    t.UserID,
		Username:  t.Username,
		Email:     t.Email,
		ExpiresIn: t.ExpiresIn,
	}
}
