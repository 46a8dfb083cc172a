package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/club"
)

type ClubHandler struct {
	clubUseCase *club.ClubUseCase
}

func NewClubHandler(clubUseCase *club.ClubUseCase) *ClubHandler {
	return &ClubHandler{
		clubUseCase: clubUseCase,
	}
}

// ListClubs handles GET /api/clubs
// @Summary List all clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} domain.Club
// @Failure 500 {object} ErrorResponse
// @Router /api/clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubUseCase.ListClubs(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list clubs")
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GetClub handles GET /api/clubs/:id
// @Summary Get a club with its categories and president
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} domain.ClubWithCategories
// @Failure 404 {object} ErrorResponse
// @Router /api/clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	clubDetail, err := h.clubUseCase.GetClub(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get club")
		return
	}
	c.JSON(http.StatusOK, clubDetail)
}

// FeaturedClubs handles GET /api/clubs/featured
// @Summary List featured clubs
// @Tags clubs
// @Produce json
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {array} domain.Club
// @Failure 500 {object} ErrorResponse
// @Router /api/clubs/featured [get]
func (h *ClubHandler) FeaturedClubs(c *gin.Context) {
	clubs, err := h.clubUseCase.FeaturedClubs(c.Request.Context(), queryLimit(c))
	if err != nil {
		respondError(c, err, "failed to list featured clubs")
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// CreateClub handles POST /api/clubs
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body club.CreateClubRequest true "Club data"
// @Success 201 {object} domain.ClubWithCategories
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req club.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.clubUseCase.CreateClub(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create club")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// JoinClub handles POST /api/clubs/:id/members
// @Summary Join a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param request body club.JoinClubRequest true "Membership data"
// @Success 201 {object} domain.ClubMember
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/clubs/{id}/members [post]
func (h *ClubHandler) JoinClub(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req club.JoinClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	member, err := h.clubUseCase.JoinClub(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "failed to join club")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /api/clubs/:id/members
// @Summary List club members
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {array} domain.ClubMember
// @Failure 404 {object} ErrorResponse
// @Router /api/clubs/{id}/members [get]
func (h *ClubHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.clubUseCase.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}
