// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-directory/internal/model"
	"employee-directory/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetAll handles GET /teams/ request.
// @Summary List all teams
// @Tags Teams
// @Produce json
// @Success 200 {array} model.TeamView
// @Router /teams/ [get]
func (h *Handler) GetAll(c *gin.Context) {
	views, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByID handles GET /teams/:id request.
// @Summary Get a team by id
// @Tags Teams
// @Produce json
// @Success 200 {object} model.TeamView
// @Failure 404 {object} ErrorMessage
// @Router /teams/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error getting team", "team_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create handles POST /teams/create request.
// @Summary Create a team with an optional lead and members
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Request"
// @Success 201 {object} model.TeamView
// @Failure 404 {object} ErrorMessage "Lead or some employees not found"
// @Failure 409 {object} ErrorMessage "Team name already exists"
// @Router /teams/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Update handles PUT /teams/:id/update request.
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Request"
// @Success 200 {object} model.TeamView
// @Failure 404 {object} ErrorMessage
// @Failure 409 {object} ErrorMessage "Team name already exists"
// @Router /teams/{id}/update [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error updating team", "team_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /teams/:id request.
// @Summary Delete a team
// @Tags Teams
// @Produce json
// @Success 200 {object} model.TeamView "The deleted team"
// @Failure 404 {object} ErrorMessage
// @Router /teams/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error deleting team", "team_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// parseID reads the :id path parameter, responding 400 when malformed.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid id parameter", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
