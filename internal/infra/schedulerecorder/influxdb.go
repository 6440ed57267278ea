//go:build !gcloud

package schedulerecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const influxMeasurement = "schedule_result"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, schedule result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "schedule result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordScheduleResults(ctx context.Context, records []domain.ScheduleResultRecord) error {
	for _, record := range records {
		if err := r.writeAPI.WritePoint(ctx, toPoint(record)); err != nil {
			slog.WarnContext(ctx, "failed to write schedule result to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("reminder_id", record.ReminderID),
				slog.String("operation", string(record.Operation)),
			)
		}
	}

	return nil
}

func toPoint(record domain.ScheduleResultRecord) *write.Point {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	tags := map[string]string{
		"run_id":    runID,
		"operation": string(record.Operation),
	}
	if record.Recurrence != "" {
		tags["recurrence"] = record.Recurrence
	}
	if record.Priority != "" {
		tags["priority"] = record.Priority
	}

	return influxdb2.NewPoint(
		influxMeasurement,
		tags,
		map[string]any{
			"reminder_id":     record.ReminderID,
			"occurrences":     record.Occurrences,
			"accepted":        record.Accepted,
			"rejected":        record.Rejected,
			"cancelled":       record.Cancelled,
			"failed":          record.Failed,
			"duration_millis": record.Duration.Milliseconds(),
		},
		recordedAt,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
