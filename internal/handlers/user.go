package handlers

import (
	"errors"
	"net/http"

	dom "Platform/internal/domain"
	"Platform/internal/dto"
	"Platform/internal/identity"
	"Platform/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// UserHandler serves profile endpoints in the user service. The service
// verifies tokens remotely, so handlers only see the propagated identity.
type UserHandler struct {
	repo repo.UserRepo
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(r repo.UserRepo) *UserHandler {
	return &UserHandler{repo: r}
}

// Me godoc
// @Summary      Current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": identity.ErrUnauthenticated.Error()})
		return
	}
	u, err := h.repo.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// GetByID godoc
// @Summary      Get a user profile by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	u, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
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

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Active:   u.Active,
	}
}
