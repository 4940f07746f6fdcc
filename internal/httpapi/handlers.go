package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskwise/internal/httpapi/middleware"
	"taskwise/internal/logger"
	"taskwise/internal/models"
	"taskwise/internal/store"
)

// Handler serves the task resource over HTTP.
type Handler struct {
	Store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s}
}

// ListTasks returns every task in insertion order.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Store.List()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task by id.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask validates the draft and stores a new task.
func (h *Handler) CreateTask(c *gin.Context) {
	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.Store.Create(draft)
	if store.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	middleware.CountMutation("create")
	c.JSON(http.StatusCreated, task)
}

// UpdateTask replaces the mutable fields of an existing task.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.Store.Update(id, draft)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if store.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	middleware.CountMutation("update")
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task. The store treats a missing id as a no-op; the
// HTTP layer reports it as 404 so clients can tell the two apart.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	removed, err := h.Store.Delete(id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	middleware.CountMutation("delete")
	c.Status(http.StatusNoContent)
}

// PendingTasks returns tasks not yet completed, in store order.
func (h *Handler) PendingTasks(c *gin.Context) {
	tasks, err := h.Store.Pending()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// SuggestTasks returns pending tasks in recommended working order.
func (h *Handler) SuggestTasks(c *gin.Context) {
	tasks, err := h.Store.Suggest()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// SearchTasks matches the q parameter against task titles.
func (h *Handler) SearchTasks(c *gin.Context) {
	query, present := c.GetQuery("q")
	if !present {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	tasks, err := h.Store.Search(query)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	logger.Error("store operation failed", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return uint(id), true
}
