// Package handler provides HTTP handlers for employee endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-directory/internal/employee/service"
	"employee-directory/internal/model"
)

// Handler handles HTTP requests for employee endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new employee handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetAll handles GET /employees/ request.
// @Summary List all employees
// @Tags Employees
// @Produce json
// @Success 200 {array} model.EmployeeView
// @Router /employees/ [get]
func (h *Handler) GetAll(c *gin.Context) {
	views, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing employees", "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByID handles GET /employees/:id request.
// @Summary Get an employee by id
// @Tags Employees
// @Produce json
// @Success 200 {object} model.EmployeeView
// @Failure 404 {object} ErrorMessage
// @Router /employees/{id} [get]
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
		h.logger.Errorw("error getting employee", "employee_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create handles POST /employees/create request.
// @Summary Create an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body model.CreateEmployeeRequest true "Request"
// @Success 201 {object} model.EmployeeView
// @Failure 404 {object} ErrorMessage "Selected team doesn't exist"
// @Router /employees/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error creating employee", "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Update handles PUT /employees/:id/update request.
// @Summary Update an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body model.CreateEmployeeRequest true "Request"
// @Success 200 {object} model.EmployeeView
// @Failure 404 {object} ErrorMessage
// @Router /employees/{id}/update [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if apiErrorResponse(c, err) {
			return
		}
		h.logger.Errorw("error updating employee", "employee_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /employees/:id request.
// @Summary Delete an employee
// @Tags Employees
// @Produce json
// @Success 200 {object} model.EmployeeView "The deleted employee"
// @Failure 404 {object} ErrorMessage
// @Router /employees/{id} [delete]
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
		h.logger.Errorw("error deleting employee", "employee_id", id, "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Search handles GET /employees/search request.
// @Summary Search employees by optional filters
// @Tags Employees
// @Produce json
// @Param inATeam query bool false "Only employees with (true) or without (false) a team"
// @Param teamLeadsOnly query bool false "Only employees that lead a team"
// @Param name query string false "Name substring, case-insensitive"
// @Success 200 {array} model.EmployeeView
// @Router /employees/search [get]
func (h *Handler) Search(c *gin.Context) {
	inATeam, ok := parseOptionalBool(c, "inATeam")
	if !ok {
		return
	}
	teamLeadsOnly, ok := parseOptionalBool(c, "teamLeadsOnly")
	if !ok {
		return
	}

	query := model.SearchEmployeesQuery{
		InATeam:       inATeam,
		TeamLeadsOnly: teamLeadsOnly,
		Name:          c.Query("name"),
	}

	views, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("error searching employees", "error", err)
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, views)
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

// parseOptionalBool reads an optional boolean query parameter, responding 400
// when present but malformed.
func parseOptionalBool(c *gin.Context, name string) (*bool, bool) {
	raw, exists := c.GetQuery(name)
	if !exists || raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid "+name+" parameter", http.StatusBadRequest)
		return nil, false
	}
	return &value, true
}
