package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/compose"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/expand"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func createTestService(platform domain.NotificationPlatform, recorder domain.ScheduleResultRecorder, opts Options) *Service {
	opts.Now = func() time.Time { return testNow }
	return NewService(platform, expand.NewExpander(), compose.NewComposer(), recorder, nil, opts)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// fiveDailyReminder yields exactly five due requests and no warnings.
func fiveDailyReminder() *domain.Reminder {
	return &domain.Reminder{
		ID:                "reminder-1",
		Title:             "Water plants",
		Priority:          domain.PriorityLow,
		Type:              domain.ReminderTypePersonal,
		DueDate:           time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Recurrence:        domain.RecurrenceDaily,
		RecurrenceEndDate: timePtr(time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)),
	}
}

func TestSchedule_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	calls := 0
	mockPlatform.EXPECT().
		Schedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
			calls++
			if calls == 3 {
				return "", errors.New("quota exceeded")
			}
			return domain.Handle(fmt.Sprintf("task-%d", calls)), nil
		}).
		Times(5)

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	result := svc.Schedule(context.Background(), fiveDailyReminder())

	if result.Accepted != 4 {
		t.Errorf("accepted: got %d, want 4", result.Accepted)
	}
	if result.Rejected != 1 {
		t.Errorf("rejected: got %d, want 1", result.Rejected)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("failures: got %d, want 1", len(result.Failures))
	}

	var submissionErr *domain.SubmissionError
	if !errors.As(result.Failures[0], &submissionErr) {
		t.Fatalf("failure is %T, want *domain.SubmissionError", result.Failures[0])
	}
	wantTrigger := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	if !submissionErr.TriggerAt.Equal(wantTrigger) {
		t.Errorf("failed trigger: got %v, want %v", submissionErr.TriggerAt, wantTrigger)
	}
	if !errors.Is(result.Failures[0], domain.ErrPlatformSubmission) {
		t.Error("failure should wrap ErrPlatformSubmission")
	}

	wantHandles := []domain.Handle{"task-1", "task-2", "task-4", "task-5"}
	if len(result.Handles) != len(wantHandles) {
		t.Fatalf("handles: got %v, want %v", result.Handles, wantHandles)
	}
	for i, h := range wantHandles {
		if result.Handles[i] != h {
			t.Errorf("handle[%d]: got %q, want %q", i, result.Handles[i], h)
		}
	}
}

func TestSchedule_ConcurrentAggregatesPerRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	rejectedDay := 3
	mockPlatform.EXPECT().
		Schedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
			if req.TriggerAt.Day() == rejectedDay {
				return "", errors.New("unavailable")
			}
			return domain.Handle(fmt.Sprintf("task-day-%d", req.TriggerAt.Day())), nil
		}).
		Times(5)

	opts := DefaultOptions()
	opts.Concurrency = 4
	svc := createTestService(mockPlatform, nil, opts)

	result := svc.Schedule(context.Background(), fiveDailyReminder())

	if result.Accepted != 4 || result.Rejected != 1 {
		t.Fatalf("got %d accepted / %d rejected, want 4 / 1", result.Accepted, result.Rejected)
	}

	// handles keep request order regardless of completion order
	wantHandles := []domain.Handle{"task-day-1", "task-day-2", "task-day-4", "task-day-5"}
	for i, h := range wantHandles {
		if result.Handles[i] != h {
			t.Errorf("handle[%d]: got %q, want %q", i, result.Handles[i], h)
		}
	}
}

func TestSchedule_CompletedIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any platform call fails the test
	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	reminder := fiveDailyReminder()
	reminder.Completed = true

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	result := svc.Schedule(context.Background(), reminder)

	if result.Accepted != 0 || result.Rejected != 0 || len(result.Failures) != 0 {
		t.Errorf("expected zero result, got %+v", result)
	}
}

func TestSchedule_ValidationFailure(t *testing.T) {
	tests := []struct {
		name     string
		reminder *domain.Reminder
		field    string
	}{
		{
			name: "blank title",
			reminder: &domain.Reminder{
				ID:      "r-1",
				Title:   "   ",
				DueDate: testNow.Add(time.Hour),
			},
			field: "title",
		},
		{
			name: "missing due date",
			reminder: &domain.Reminder{
				ID:    "r-2",
				Title: "Call mom",
			},
			field: "due_date",
		},
		{
			name:     "nil reminder",
			reminder: nil,
			field:    "reminder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPlatform := domain.NewMockNotificationPlatform(ctrl)
			svc := createTestService(mockPlatform, nil, DefaultOptions())

			result := svc.Schedule(context.Background(), tt.reminder)

			if len(result.Failures) != 1 {
				t.Fatalf("failures: got %d, want 1", len(result.Failures))
			}
			if !errors.Is(result.Failures[0], domain.ErrValidation) {
				t.Errorf("failure should wrap ErrValidation, got %v", result.Failures[0])
			}
			var validationErr *domain.ValidationError
			if !errors.As(result.Failures[0], &validationErr) || validationErr.Field != tt.field {
				t.Errorf("expected validation error on %q, got %v", tt.field, result.Failures[0])
			}
		})
	}
}

func TestSchedule_UrgentDueSoonSkipsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	reminder := &domain.Reminder{
		ID:         "urgent-1",
		Title:      "Take medication",
		Priority:   domain.PriorityUrgent,
		DueDate:    testNow.Add(10 * time.Minute),
		Recurrence: domain.RecurrenceNone,
	}

	mockPlatform.EXPECT().
		Schedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
			if req.IsWarning() {
				t.Error("warning request should have been suppressed")
			}
			if req.Channel != domain.ChannelUrgent {
				t.Errorf("channel: got %q, want %q", req.Channel, domain.ChannelUrgent)
			}
			if !req.TriggerAt.Equal(reminder.DueDate) {
				t.Errorf("trigger: got %v, want %v", req.TriggerAt, reminder.DueDate)
			}
			return "task-urgent", nil
		}).
		Times(1)

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	result := svc.Schedule(context.Background(), reminder)

	if result.Accepted != 1 || result.Rejected != 0 {
		t.Errorf("got %d accepted / %d rejected, want 1 / 0", result.Accepted, result.Rejected)
	}
}

func TestSchedule_SubmitTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	reminder := &domain.Reminder{
		ID:       "slow-1",
		Title:    "Standup",
		Priority: domain.PriorityLow,
		DueDate:  testNow.Add(time.Hour),
	}

	mockPlatform.EXPECT().
		Schedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	opts := DefaultOptions()
	opts.SubmitTimeout = 20 * time.Millisecond
	svc := createTestService(mockPlatform, nil, opts)

	result := svc.Schedule(context.Background(), reminder)

	if result.Rejected != 1 {
		t.Fatalf("rejected: got %d, want 1", result.Rejected)
	}
	if !errors.Is(result.Failures[0], context.DeadlineExceeded) {
		t.Errorf("failure should wrap context.DeadlineExceeded, got %v", result.Failures[0])
	}
	if !errors.Is(result.Failures[0], domain.ErrPlatformSubmission) {
		t.Errorf("failure should wrap ErrPlatformSubmission, got %v", result.Failures[0])
	}
}

func TestSchedule_PacingHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	opts := DefaultOptions()
	opts.RatePerSecond = 1
	opts.Burst = 1
	svc := createTestService(mockPlatform, nil, opts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := svc.Schedule(ctx, fiveDailyReminder())

	if result.Accepted != 0 || result.Rejected != 5 {
		t.Errorf("got %d accepted / %d rejected, want 0 / 5", result.Accepted, result.Rejected)
	}
	for _, err := range result.Failures {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("failure should wrap context.Canceled, got %v", err)
		}
	}
}

func TestSchedule_RecordsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)
	mockRecorder := domain.NewMockScheduleResultRecorder(ctrl)

	mockPlatform.EXPECT().
		Schedule(gomock.Any(), gomock.Any()).
		Return(domain.Handle("task"), nil).
		Times(5)

	mockRecorder.EXPECT().
		RecordScheduleResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, records []domain.ScheduleResultRecord) error {
			if len(records) != 1 {
				t.Fatalf("records: got %d, want 1", len(records))
			}
			r := records[0]
			if r.RunID == "" {
				t.Error("run id should be set")
			}
			if r.Operation != domain.OperationSchedule {
				t.Errorf("operation: got %q, want %q", r.Operation, domain.OperationSchedule)
			}
			if r.Occurrences != 5 || r.Accepted != 5 || r.Rejected != 0 {
				t.Errorf("unexpected counts: %+v", r)
			}
			if r.Recurrence != "daily" || r.Priority != "low" {
				t.Errorf("unexpected labels: %+v", r)
			}
			return errors.New("recorder offline")
		})

	svc := createTestService(mockPlatform, mockRecorder, DefaultOptions())
	result := svc.Schedule(context.Background(), fiveDailyReminder())

	// recorder failures never reach the result
	if result.Accepted != 5 || len(result.Failures) != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

// fakePlatform keeps scheduled items in memory so cancellation can be
// observed across calls.
type fakePlatform struct {
	mu     sync.Mutex
	items  map[domain.Handle]domain.ScheduledItem
	failOn map[domain.Handle]bool
}

func newFakePlatform(items ...domain.ScheduledItem) *fakePlatform {
	p := &fakePlatform{
		items:  make(map[domain.Handle]domain.ScheduledItem),
		failOn: make(map[domain.Handle]bool),
	}
	for _, item := range items {
		p.items[item.Handle] = item
	}
	return p
}

func (p *fakePlatform) Schedule(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := domain.Handle(fmt.Sprintf("task-%d", len(p.items)+1))
	p.items[h] = domain.ScheduledItem{Handle: h, Metadata: req.Metadata.Clone(), TriggerAt: req.TriggerAt}
	return h, nil
}

func (p *fakePlatform) Cancel(ctx context.Context, handle domain.Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOn[handle] {
		return errors.New("backend unavailable")
	}
	delete(p.items, handle)
	return nil
}

func (p *fakePlatform) List(ctx context.Context) ([]domain.ScheduledItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ScheduledItem, 0, len(p.items))
	for _, item := range p.items {
		out = append(out, item)
	}
	return out, nil
}

func (p *fakePlatform) SetChannel(ctx context.Context, channel domain.Channel) error {
	return nil
}

func itemFor(handle, reminderID string) domain.ScheduledItem {
	return domain.ScheduledItem{
		Handle:    domain.Handle(handle),
		Metadata:  domain.Metadata{domain.MetadataKeyReminderID: reminderID},
		TriggerAt: testNow.Add(time.Hour),
	}
}

func TestCancelAll_Idempotent(t *testing.T) {
	platform := newFakePlatform(
		itemFor("a", "reminder-1"),
		itemFor("b", "reminder-1"),
		itemFor("c", "reminder-2"),
	)
	svc := createTestService(platform, nil, DefaultOptions())
	ctx := context.Background()

	first := svc.CancelAll(ctx, "reminder-1")
	if first.Cancelled != 2 || first.Failed != 0 {
		t.Errorf("first cancel: got %d cancelled / %d failed, want 2 / 0", first.Cancelled, first.Failed)
	}

	second := svc.CancelAll(ctx, "reminder-1")
	if second.Cancelled != 0 || second.Failed != 0 {
		t.Errorf("second cancel: got %d cancelled / %d failed, want 0 / 0", second.Cancelled, second.Failed)
	}

	remaining, _ := platform.List(ctx)
	if len(remaining) != 1 || remaining[0].Metadata.ReminderID() != "reminder-2" {
		t.Errorf("other reminders must be untouched, remaining: %v", remaining)
	}
}

func TestCancelAll_PartialFailure(t *testing.T) {
	platform := newFakePlatform(
		itemFor("a", "reminder-1"),
		itemFor("b", "reminder-1"),
	)
	platform.failOn["b"] = true

	svc := createTestService(platform, nil, DefaultOptions())
	result := svc.CancelAll(context.Background(), "reminder-1")

	if result.Cancelled != 1 || result.Failed != 1 {
		t.Fatalf("got %d cancelled / %d failed, want 1 / 1", result.Cancelled, result.Failed)
	}

	var cancelErr *domain.CancellationError
	if !errors.As(result.Failures[0], &cancelErr) || cancelErr.Handle != "b" {
		t.Errorf("expected cancellation error for handle b, got %v", result.Failures[0])
	}
	if !errors.Is(result.Failures[0], domain.ErrPlatformCancellation) {
		t.Error("failure should wrap ErrPlatformCancellation")
	}
}

func TestCancelAll_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)
	mockPlatform.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	result := svc.CancelAll(context.Background(), "reminder-1")

	if result.Cancelled != 0 {
		t.Errorf("cancelled: got %d, want 0", result.Cancelled)
	}
	if len(result.Failures) != 1 || !errors.Is(result.Failures[0], domain.ErrPlatformCancellation) {
		t.Errorf("expected one cancellation failure, got %v", result.Failures)
	}
}

func TestReschedule_ReplacesSchedule(t *testing.T) {
	platform := newFakePlatform(
		itemFor("old-1", "reminder-1"),
		itemFor("old-2", "reminder-1"),
		itemFor("old-3", "reminder-1"),
	)
	svc := createTestService(platform, nil, DefaultOptions())
	ctx := context.Background()

	result := svc.Reschedule(ctx, fiveDailyReminder())

	if result.Cancel.Cancelled != 3 {
		t.Errorf("cancelled: got %d, want 3", result.Cancel.Cancelled)
	}
	if result.Schedule.Accepted != 5 {
		t.Errorf("accepted: got %d, want 5", result.Schedule.Accepted)
	}

	items, _ := platform.List(ctx)
	if len(items) != 5 {
		t.Errorf("platform should hold exactly the new schedule, got %d items", len(items))
	}
}

func TestReschedule_NilReminderKeepsSchedule(t *testing.T) {
	platform := newFakePlatform(itemFor("old-1", "reminder-1"))
	svc := createTestService(platform, nil, DefaultOptions())
	ctx := context.Background()

	result := svc.Reschedule(ctx, nil)

	if result.Cancel.Cancelled != 0 {
		t.Errorf("cancelled: got %d, want 0", result.Cancel.Cancelled)
	}
	if len(result.Schedule.Failures) != 1 || !errors.Is(result.Schedule.Failures[0], domain.ErrValidation) {
		t.Errorf("expected one validation failure, got %v", result.Schedule.Failures)
	}

	items, _ := platform.List(ctx)
	if len(items) != 1 {
		t.Errorf("existing schedule should be untouched, got %d items", len(items))
	}
}

func TestEnsureChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)

	registered := make(map[domain.ChannelID]bool)
	mockPlatform.EXPECT().
		SetChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, channel domain.Channel) error {
			registered[channel.ID] = true
			return nil
		}).
		Times(3)

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	if err := svc.EnsureChannels(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []domain.ChannelID{domain.ChannelReminder, domain.ChannelUrgent, domain.ChannelRecurring} {
		if !registered[id] {
			t.Errorf("channel %q not registered", id)
		}
	}
}

func TestEnsureChannels_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := domain.NewMockNotificationPlatform(ctrl)
	platformErr := errors.New("permission denied")
	mockPlatform.EXPECT().
		SetChannel(gomock.Any(), gomock.Any()).
		Return(platformErr)

	svc := createTestService(mockPlatform, nil, DefaultOptions())
	err := svc.EnsureChannels(context.Background())
	if !errors.Is(err, platformErr) {
		t.Errorf("expected wrapped platform error, got %v", err)
	}
}
