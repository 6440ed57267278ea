package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/dispatch"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"
)

type fakeScheduler struct {
	scheduled []*domain.Reminder
	cancelled []string
}

func (f *fakeScheduler) Schedule(ctx context.Context, reminder *domain.Reminder) schedule.Result {
	f.scheduled = append(f.scheduled, reminder)
	return schedule.Result{Accepted: 2, Handles: []domain.Handle{"a", "b"}}
}

func (f *fakeScheduler) CancelAll(ctx context.Context, reminderID string) schedule.CancelResult {
	f.cancelled = append(f.cancelled, reminderID)
	return schedule.CancelResult{Cancelled: 3}
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(source domain.ReminderSource, scheduler Scheduler) *Service {
	svc := NewService(source, scheduler)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := domain.NewMockReminderSource(ctrl)
	scheduler := &fakeScheduler{}

	mockSource.EXPECT().
		MarkCompleted(gomock.Any(), "r-1", "user-9", fixedNow).
		Return(nil)

	svc := newTestService(mockSource, scheduler)
	result, err := svc.Complete(context.Background(), "r-1", "user-9", time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Cancelled != 3 {
		t.Errorf("cancelled: got %d, want 3", result.Cancelled)
	}
	if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != "r-1" {
		t.Errorf("expected CancelAll(r-1), got %v", scheduler.cancelled)
	}
}

func TestComplete_StoreFailureKeepsSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := domain.NewMockReminderSource(ctrl)
	scheduler := &fakeScheduler{}
	storeErr := errors.New("store unavailable")

	mockSource.EXPECT().
		MarkCompleted(gomock.Any(), "r-1", gomock.Any(), gomock.Any()).
		Return(storeErr)

	svc := newTestService(mockSource, scheduler)
	_, err := svc.Complete(context.Background(), "r-1", "user-9", fixedNow)
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
	if len(scheduler.cancelled) != 0 {
		t.Error("nothing should be cancelled when the store write fails")
	}
}

func TestReopen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := domain.NewMockReminderSource(ctrl)
	scheduler := &fakeScheduler{}

	completedAt := fixedNow.Add(-time.Hour)
	gomock.InOrder(
		mockSource.EXPECT().MarkIncomplete(gomock.Any(), "r-1").Return(nil),
		mockSource.EXPECT().Get(gomock.Any(), "r-1").Return(&domain.Reminder{
			ID:          "r-1",
			Title:       "Pay rent",
			DueDate:     fixedNow.Add(24 * time.Hour),
			Completed:   true,
			CompletedBy: "user-9",
			CompletedAt: &completedAt,
		}, nil),
	)

	svc := newTestService(mockSource, scheduler)
	result, err := svc.Reopen(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Accepted != 2 {
		t.Errorf("accepted: got %d, want 2", result.Accepted)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected one schedule call, got %d", len(scheduler.scheduled))
	}
	if got := scheduler.scheduled[0]; got.Completed || got.CompletedAt != nil {
		t.Errorf("reopened reminder should be scheduled as incomplete, got %+v", got)
	}
}

func TestScheduleByID(t *testing.T) {
	tests := []struct {
		name      string
		reminder  *domain.Reminder
		getErr    error
		wantErr   error
		scheduled int
	}{
		{
			name:      "found",
			reminder:  &domain.Reminder{ID: "r-1", Title: "Gym", DueDate: fixedNow.Add(time.Hour)},
			scheduled: 1,
		},
		{
			name:    "not found",
			wantErr: domain.ErrReminderNotFound,
		},
		{
			name:    "store error",
			getErr:  errors.New("timeout"),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSource := domain.NewMockReminderSource(ctrl)
			scheduler := &fakeScheduler{}
			mockSource.EXPECT().Get(gomock.Any(), "r-1").Return(tt.reminder, tt.getErr)

			svc := newTestService(mockSource, scheduler)
			_, err := svc.ScheduleByID(context.Background(), "r-1")

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.getErr != nil:
				if !errors.Is(err, tt.getErr) {
					t.Errorf("expected %v, got %v", tt.getErr, err)
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
			if len(scheduler.scheduled) != tt.scheduled {
				t.Errorf("schedule calls: got %d, want %d", len(scheduler.scheduled), tt.scheduled)
			}
		})
	}
}

func TestHandleReminderInteraction(t *testing.T) {
	t.Run("complete action completes the reminder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSource := domain.NewMockReminderSource(ctrl)
		scheduler := &fakeScheduler{}
		mockSource.EXPECT().
			MarkCompleted(gomock.Any(), "r-7", completedByNotification, fixedNow).
			Return(nil)

		svc := newTestService(mockSource, scheduler)
		svc.HandleReminderInteraction(context.Background(), dispatch.ReminderInteraction{
			ReminderID: "r-7",
			Action:     dispatch.ActionComplete,
		})

		if len(scheduler.cancelled) != 1 {
			t.Errorf("expected one cancel pass, got %d", len(scheduler.cancelled))
		}
	})

	t.Run("open action touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSource := domain.NewMockReminderSource(ctrl)
		scheduler := &fakeScheduler{}

		svc := newTestService(mockSource, scheduler)
		svc.HandleReminderInteraction(context.Background(), dispatch.ReminderInteraction{
			ReminderID: "r-7",
			Action:     dispatch.ActionOpen,
		})

		if len(scheduler.cancelled) != 0 || len(scheduler.scheduled) != 0 {
			t.Error("open should not schedule or cancel")
		}
	})

	t.Run("store errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSource := domain.NewMockReminderSource(ctrl)
		mockSource.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("down"))

		svc := newTestService(mockSource, &fakeScheduler{})
		svc.HandleReminderInteraction(context.Background(), dispatch.ReminderInteraction{
			ReminderID: "r-7",
			Action:     dispatch.ActionComplete,
		})
	})
}

func TestHandleReminderInteraction_ViaDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := domain.NewMockReminderSource(ctrl)
	scheduler := &fakeScheduler{}
	mockSource.EXPECT().
		MarkCompleted(gomock.Any(), "r-3", completedByNotification, fixedNow).
		Return(nil)

	svc := newTestService(mockSource, scheduler)
	d := dispatch.NewDispatcher(nil)
	d.OnReminder(svc.HandleReminderInteraction)

	d.Dispatch(context.Background(), domain.Metadata{
		domain.MetadataKeyKind:       domain.KindValueReminder,
		domain.MetadataKeyReminderID: "r-3",
		domain.MetadataKeyAction:     dispatch.ActionComplete,
	})

	if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != "r-3" {
		t.Errorf("expected cancel of r-3, got %v", scheduler.cancelled)
	}
}
