package handlers

import (
	"errors"
	"net/http"

	reviewRepo "greenvilla/database/repository/review"
	"greenvilla/models"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the reviews collection.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// GetReviewsHandler handles GET /reviews.
func (h *ReviewHandler) GetReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /reviews. Any non-empty JSON object is accepted.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var review models.Document
	if err := c.ShouldBindJSON(&review); err != nil {
		respondBindError(c, err)
		return
	}
	if len(review) == 0 {
		respondBindError(c, errors.New("review must be a non-empty object"))
		return
	}

	result, err := h.Repo.Create(c.Request.Context(), review)
	if err != nil {
		respondError(c, "create review", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
