package handlers

import (
	"net/http"

	roomRepo "greenvilla/database/repository/room"
	"greenvilla/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the rooms collection.
type RoomHandler struct {
	Repo roomRepo.RoomRepository
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(repo roomRepo.RoomRepository) *RoomHandler {
	return &RoomHandler{Repo: repo}
}

// GetRoomsHandler handles GET /rooms.
func (h *RoomHandler) GetRoomsHandler(c *gin.Context) {
	rooms, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "list rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByIDHandler handles GET /rooms/:id. An unknown id yields a null body.
func (h *RoomHandler) GetRoomByIDHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoomStatusHandler handles PATCH /rooms/:id.
func (h *RoomHandler) UpdateRoomStatusHandler(c *gin.Context) {
	var update models.RoomStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindError(c, err)
		return
	}

	id := c.Param("id")
	result, err := h.Repo.UpdateStatus(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, "update room status", err)
		return
	}
	getLogger(c).Info("room status updated",
		zap.String("id", id), zap.String("status", update.Status), zap.Int64("matched", result.MatchedCount))
	c.JSON(http.StatusOK, result)
}
