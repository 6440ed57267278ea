package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/tracing"
)

type (
	ReminderHandler func(ctx context.Context, interaction ReminderInteraction)
	MessageHandler  func(ctx context.Context, interaction MessageInteraction)
	ActivityHandler func(ctx context.Context, interaction ActivityInteraction)
	UnknownHandler  func(ctx context.Context, kind string, metadata domain.Metadata)
)

// Dispatcher routes a tapped notification to the handler registered for
// its kind. A kind without a handler is a no-op.
type Dispatcher struct {
	mu               sync.RWMutex
	onReminder       ReminderHandler
	onLoveMessage    MessageHandler
	onCoupleActivity ActivityHandler
	onUnknown        UnknownHandler

	schedulerMetrics *metrics.SchedulerMetrics
}

func NewDispatcher(schedulerMetrics *metrics.SchedulerMetrics) *Dispatcher {
	return &Dispatcher{
		schedulerMetrics: schedulerMetrics,
	}
}

func (d *Dispatcher) OnReminder(h ReminderHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onReminder = h
}

func (d *Dispatcher) OnLoveMessage(h MessageHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onLoveMessage = h
}

func (d *Dispatcher) OnCoupleActivity(h ActivityHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onCoupleActivity = h
}

func (d *Dispatcher) OnUnknown(h UnknownHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onUnknown = h
}

// Dispatch never returns an error and never panics; handler panics are
// recovered and logged.
func (d *Dispatcher) Dispatch(ctx context.Context, metadata domain.Metadata) {
	rawKind := metadata.Kind()
	kind := ParseKind(rawKind)

	ctx, span := tracing.StartDispatchSpan(ctx, kind.String())
	defer span.End()

	d.schedulerMetrics.RecordDispatch(ctx, kind.String())

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("notification handler panicked: %v", r)
			tracing.RecordError(span, err)
			slog.ErrorContext(ctx, "notification handler panicked",
				slog.String("kind", rawKind),
				slog.String("error", err.Error()),
			)
		}
	}()

	d.mu.RLock()
	onReminder := d.onReminder
	onLoveMessage := d.onLoveMessage
	onCoupleActivity := d.onCoupleActivity
	onUnknown := d.onUnknown
	d.mu.RUnlock()

	switch kind {
	case KindReminder:
		interaction := reminderInteraction(metadata)
		slog.DebugContext(ctx, "dispatching reminder interaction",
			slog.String("reminder_id", interaction.ReminderID),
			slog.Bool("is_warning", interaction.IsWarning),
			slog.String("action", interaction.Action),
		)
		if onReminder != nil {
			onReminder(ctx, interaction)
		}
	case KindLoveMessage:
		if onLoveMessage != nil {
			onLoveMessage(ctx, messageInteraction(metadata))
		}
	case KindCoupleActivity:
		if onCoupleActivity != nil {
			onCoupleActivity(ctx, activityInteraction(metadata))
		}
	default:
		slog.WarnContext(ctx, "ignoring notification of unknown kind",
			slog.String("kind", rawKind),
		)
		if onUnknown != nil {
			onUnknown(ctx, rawKind, metadata)
		}
	}
}
