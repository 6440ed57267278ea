package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type ReminderHandler struct {
	scheduler ReminderScheduler
	lifecycle ReminderLifecycle
	locks     *KeyedMutex
}

func NewReminderHandler(scheduler ReminderScheduler, lifecycle ReminderLifecycle, locks *KeyedMutex) *ReminderHandler {
	return &ReminderHandler{
		scheduler: scheduler,
		lifecycle: lifecycle,
		locks:     locks,
	}
}

func (h *ReminderHandler) Register(r gin.IRouter) {
	r.POST("/reminders/notifications", h.HandleSchedule)
	r.PUT("/reminders/:id/notifications", h.HandleReschedule)
	r.DELETE("/reminders/:id/notifications", h.HandleCancel)
	r.POST("/reminders/:id/notifications/sync", h.HandleSync)
	r.POST("/reminders/:id/completion", h.HandleComplete)
	r.DELETE("/reminders/:id/completion", h.HandleReopen)
}

func (h *ReminderHandler) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.ID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "id is required")
		return
	}

	unlock := h.locks.Lock(req.ID)
	defer unlock()

	result := h.scheduler.Schedule(ctx, req.toDomain())

	status := http.StatusOK
	if isValidationFailure(result) {
		status = http.StatusBadRequest
	}
	c.JSON(status, newScheduleResponse(result))
}

func (h *ReminderHandler) HandleReschedule(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.ID != "" && req.ID != id {
		respondError(c, http.StatusBadRequest, "validation_error", "body id does not match path id")
		return
	}
	req.ID = id

	reminder := req.toDomain()
	if err := reminder.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, newScheduleResponse(scheduleFailure(err)))
		return
	}

	unlock := h.locks.Lock(id)
	defer unlock()

	result := h.scheduler.Reschedule(ctx, reminder)

	c.JSON(http.StatusOK, RescheduleResponse{
		Cancel:   newCancelResponse(result.Cancel),
		Schedule: newScheduleResponse(result.Schedule),
	})
}

func (h *ReminderHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	unlock := h.locks.Lock(id)
	defer unlock()

	result := h.scheduler.CancelAll(ctx, id)

	c.JSON(http.StatusOK, newCancelResponse(result))
}

func (h *ReminderHandler) HandleSync(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	unlock := h.locks.Lock(id)
	defer unlock()

	result, err := h.lifecycle.ScheduleByID(ctx, id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	status := http.StatusOK
	if isValidationFailure(result) {
		status = http.StatusBadRequest
	}
	c.JSON(status, newScheduleResponse(result))
}

func (h *ReminderHandler) HandleComplete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var completedAt time.Time
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	unlock := h.locks.Lock(id)
	defer unlock()

	result, err := h.lifecycle.Complete(ctx, id, req.CompletedBy, completedAt)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCancelResponse(result))
}

func (h *ReminderHandler) HandleReopen(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	unlock := h.locks.Lock(id)
	defer unlock()

	result, err := h.lifecycle.Reopen(ctx, id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newScheduleResponse(result))
}

func respondLifecycleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrReminderNotFound) {
		respondError(c, http.StatusNotFound, "not_found", err.Error())
		return
	}
	respondError(c, http.StatusBadGateway, "reminder_store_error", err.Error())
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}
