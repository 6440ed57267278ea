//go:build gcloud

package schedulerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	RunID          string    `bigquery:"run_id"`
	Operation      string    `bigquery:"operation"`
	ReminderID     string    `bigquery:"reminder_id"`
	Recurrence     string    `bigquery:"recurrence"`
	Priority       string    `bigquery:"priority"`
	Occurrences    int64     `bigquery:"occurrences"`
	Accepted       int64     `bigquery:"accepted"`
	Rejected       int64     `bigquery:"rejected"`
	Cancelled      int64     `bigquery:"cancelled"`
	Failed         int64     `bigquery:"failed"`
	DurationMillis int64     `bigquery:"duration_millis"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, schedule result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, schedule result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "schedule result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordScheduleResults(ctx context.Context, records []domain.ScheduleResultRecord) error {
	if len(records) == 0 {
		return nil
	}

	bqRecords := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, toBigQueryRecord(record))
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert schedule results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func toBigQueryRecord(record domain.ScheduleResultRecord) *bigQueryRecord {
	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return &bigQueryRecord{
		RecordedAt:     recordedAt,
		RunID:          record.RunID,
		Operation:      string(record.Operation),
		ReminderID:     record.ReminderID,
		Recurrence:     record.Recurrence,
		Priority:       record.Priority,
		Occurrences:    int64(record.Occurrences),
		Accepted:       int64(record.Accepted),
		Rejected:       int64(record.Rejected),
		Cancelled:      int64(record.Cancelled),
		Failed:         int64(record.Failed),
		DurationMillis: record.Duration.Milliseconds(),
	}
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
