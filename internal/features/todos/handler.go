// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoapi/internal/pkg/response"
	apperrors "github.com/xyz-asif/todoapi/pkg/errors"
)

// incomingWindowDays is how far ahead the incoming query looks, endpoints inclusive
const incomingWindowDays = 7

type Handler struct {
	store Store
	now   func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// List godoc
// @Summary List all todos
// @Description Get every stored todo
// @Tags todos
// @Produce json
// @Success 200 {array} Todo
// @Failure 500 {object} response.ErrorResponse
// @Router /todo [get]
func (h *Handler) List(c *gin.Context) {
	todos, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to fetch todos")
		return
	}

	response.Success(c, todos)
}

// Get godoc
// @Summary Get a todo by ID
// @Description Get a specific todo by its ID
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todo/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	todo, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to fetch todo")
		return
	}

	response.Success(c, todo)
}

// Incoming godoc
// @Summary List todos expiring within the next 7 days
// @Description Get todos whose expiry date falls between today and today+7 (UTC, inclusive)
// @Tags todos
// @Produce json
// @Success 200 {array} Todo
// @Failure 500 {object} response.ErrorResponse
// @Router /todo/incoming [get]
func (h *Handler) Incoming(c *gin.Context) {
	start, end := incomingWindow(h.now())

	todos, err := h.store.GetByExpiryRange(c.Request.Context(), start, end)
	if err != nil {
		response.DatabaseError(c, "Failed to fetch incoming todos")
		return
	}

	response.Success(c, todos)
}

// Create godoc
// @Summary Create a new todo
// @Description Create a new todo; the id is assigned by the store
// @Tags todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todo [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTodo(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	todo := &Todo{
		Title:       req.Title,
		Description: req.Description,
		Expiry:      req.Expiry.UTC(),
	}
	if req.PercentComplete != nil {
		todo.PercentComplete = *req.PercentComplete
	}

	if err := h.store.Insert(c.Request.Context(), todo); err != nil {
		response.DatabaseError(c, "Failed to create todo")
		return
	}

	response.Created(c, fmt.Sprintf("/api/todo/%d", todo.ID), todo)
}

// Update godoc
// @Summary Replace a todo
// @Description Full update of an existing todo; body id must match the route id
// @Tags todos
// @Accept json
// @Param id path int true "Todo ID"
// @Param request body UpdateTodoRequest true "Complete todo record"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /todo/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.ID != id {
		response.BadRequest(c, "Mismatched todo ID", "ID_MISMATCH")
		return
	}

	if err := ValidateUpdateTodo(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	todo := &Todo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Expiry:      req.Expiry.UTC(),
	}
	if req.PercentComplete != nil {
		todo.PercentComplete = *req.PercentComplete
	}

	if err := h.store.Update(c.Request.Context(), todo); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "Todo not found")
		case errors.Is(err, apperrors.ErrConflict):
			response.Conflict(c, "Todo was modified concurrently", "UPDATE_CONFLICT")
		default:
			response.DatabaseError(c, "Failed to update todo")
		}
		return
	}

	response.NoContent(c)
}

// UpdatePercent godoc
// @Summary Set the completion percentage
// @Description Set percentComplete for a todo; body is a raw integer in [0,100]
// @Tags todos
// @Accept json
// @Param id path int true "Todo ID"
// @Param percent body int true "Completion percentage"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todo/{id}/updatePercent [patch]
func (h *Handler) UpdatePercent(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	var percent int
	if err := c.ShouldBindJSON(&percent); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidatePercent(percent); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.store.UpdatePercent(c.Request.Context(), id, percent); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to update todo")
		return
	}

	response.NoContent(c)
}

// Done godoc
// @Summary Mark a todo as done
// @Description Set percentComplete to 100 regardless of its prior value
// @Tags todos
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todo/{id}/done [patch]
func (h *Handler) Done(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	if err := h.store.UpdatePercent(c.Request.Context(), id, 100); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to update todo")
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a todo
// @Description Delete the todo with the given ID
// @Tags todos
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todo/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to delete todo")
		return
	}

	response.NoContent(c)
}

// todoID parses the id route parameter, writing a 400 on bad input
func (h *Handler) todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid todo ID", "INVALID_ID")
		return 0, false
	}
	return id, true
}

// incomingWindow computes the [today, today+7d] UTC date window, both
// endpoints inclusive
func incomingWindow(now time.Time) (start, end time.Time) {
	year, month, day := now.UTC().Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, incomingWindowDays)
	return start, end
}
