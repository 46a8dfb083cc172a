package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	recommendationUseCase *recommendation.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *recommendation.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

// GetRecommendedEvents handles GET /api/users/:userId/recommended-events
// @Summary Get recommended events
// @Description Get events scored against the user's preferences
// @Tags recommendations
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {array} domain.RecommendedEvent
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/users/{userId}/recommended-events [get]
func (h *RecommendationHandler) GetRecommendedEvents(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	recommendations, err := h.recommendationUseCase.GetRecommendations(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		respondError(c, err, "failed to get recommendations")
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// GetPreferences handles GET /api/users/:userId/preferences
// @Summary Get user preferences
// @Tags recommendations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/users/{userId}/preferences [get]
func (h *RecommendationHandler) GetPreferences(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	prefs, err := h.recommendationUseCase.ResolvePreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /api/users/:userId/preferences
// @Summary Update user preferences
// @Description Merge the provided fields into the user's preferences
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body recommendation.UpdatePreferencesRequest true "Preference fields to update"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/users/{userId}/preferences [put]
func (h *RecommendationHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req recommendation.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	prefs, err := h.recommendationUseCase.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// PostFeedback handles POST /api/ai-suggestions/feedback
// @Summary Record suggestion feedback
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body recommendation.FeedbackRequest true "Feedback data"
// @Success 201 {object} domain.AiSuggestionFeedback
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai-suggestions/feedback [post]
func (h *RecommendationHandler) PostFeedback(c *gin.Context) {
	var req recommendation.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	feedback, err := h.recommendationUseCase.RecordFeedback(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to record feedback")
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// GetFeedback handles GET /api/users/:userId/ai-suggestions/feedback
// @Summary List a user's suggestion feedback
// @Tags recommendations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} domain.AiSuggestionFeedback
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/users/{userId}/ai-suggestions/feedback [get]
func (h *RecommendationHandler) GetFeedback(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	feedback, err := h.recommendationUseCase.FeedbackForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get feedback")
		return
	}

	c.JSON(http.StatusOK, feedback)
}
