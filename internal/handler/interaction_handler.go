package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

// InteractionHandler receives notification taps forwarded by the device.
type InteractionHandler struct {
	dispatcher InteractionDispatcher
	locks      *KeyedMutex
}

// NewInteractionHandler takes the same locks as the ReminderHandler so a tap
// that completes a reminder never interleaves with its reschedule.
func NewInteractionHandler(dispatcher InteractionDispatcher, locks *KeyedMutex) *InteractionHandler {
	return &InteractionHandler{
		dispatcher: dispatcher,
		locks:      locks,
	}
}

func (h *InteractionHandler) Register(r gin.IRouter) {
	r.POST("/notifications/interactions", h.HandleInteraction)
}

func (h *InteractionHandler) HandleInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "interaction unmarshal failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	metadata := domain.Metadata(req.Metadata)
	if metadata.Kind() == domain.KindValueReminder && metadata.ReminderID() != "" {
		unlock := h.locks.Lock(metadata.ReminderID())
		defer unlock()
	}

	h.dispatcher.Dispatch(ctx, metadata)

	c.Status(http.StatusAccepted)
}
