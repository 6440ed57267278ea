//go:build gcloud

package observability

import (
	"context"
	"errors"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var errProjectIDMissing = errors.New("gcp project id is required for cloud exporters")

func newTracerProvider(_ context.Context, cfg Config, res *resource.Resource, sampler sdktrace.Sampler) (*sdktrace.TracerProvider, error) {
	if cfg.GCPProjectID == "" {
		return nil, errProjectIDMissing
	}

	exporter, err := texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	), nil
}

func newMeterProvider(_ context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	if cfg.GCPProjectID == "" {
		return nil, errProjectIDMissing
	}

	exporter, err := mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	), nil
}
