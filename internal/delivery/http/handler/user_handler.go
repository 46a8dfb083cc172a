package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/user"
)

type UserHandler struct {
	userUseCase *user.UserUseCase
}

func NewUserHandler(userUseCase *user.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// CreateUser handles POST /api/users
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body user.CreateUserRequest true "Registration data"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.userUseCase.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUser handles GET /api/users/:userId
// @Summary Get a user
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	u, err := h.userUseCase.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get user")
		return
	}
	c.JSON(http.StatusOK, u)
}

// JoinWaitlist handles POST /api/waitlist
// @Summary Join the launch waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body user.WaitlistRequest true "Waitlist signup data"
// @Success 201 {object} domain.WaitlistEntry
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/waitlist [post]
func (h *UserHandler) JoinWaitlist(c *gin.Context) {
	var req user.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	entry, err := h.userUseCase.JoinWaitlist(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to join waitlist")
		return
	}
	c.JSON(http.StatusCreated, entry)
}
