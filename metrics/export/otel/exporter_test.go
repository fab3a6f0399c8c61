package otel

import (
	"context"
	"sync"
	"testing"

	appcore "github.com/feedrecap/appcore"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeSource struct {
	mu       sync.RWMutex
	snapshot appcore.MetricsSnapshot
}

func (f *fakeSource) MetricsSnapshot() appcore.MetricsSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := appcore.MetricsSnapshot{
		Counters: make(map[appcore.MetricID]uint64, len(f.snapshot.Counters)),
	}
	for k, v := range f.snapshot.Counters {
		out.Counters[k] = v
	}
	return out
}

func (f *fakeSource) set(snapshot appcore.MetricsSnapshot) {
	f.mu.Lock()
	f.snapshot = snapshot
	f.mu.Unlock()
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	values := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				values[m.Name] = dp.Value
			}
		}
	}
	return values
}

func TestOTelExporterObservesCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("appcore-test")

	source := &fakeSource{}
	source.set(appcore.MetricsSnapshot{
		Counters: map[appcore.MetricID]uint64{
			appcore.MetricLoginSuccess: 3,
			appcore.MetricOTPVerified:  5,
		},
	})

	exporter, err := NewOTelExporterFromSource(meter, source)
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	defer func() { _ = exporter.Close() }()

	values := collect(t, reader)
	if values["feedrecap_login_success_total"] != 3 {
		t.Fatalf("expected login counter 3, got %d", values["feedrecap_login_success_total"])
	}
	if values["feedrecap_otp_verified_total"] != 5 {
		t.Fatalf("expected otp counter 5, got %d", values["feedrecap_otp_verified_total"])
	}

	source.set(appcore.MetricsSnapshot{
		Counters: map[appcore.MetricID]uint64{
			appcore.MetricLoginSuccess: 4,
		},
	})
	values = collect(t, reader)
	if values["feedrecap_login_success_total"] != 4 {
		t.Fatalf("expected login counter 4 after update, got %d", values["feedrecap_login_success_total"])
	}
}

func TestOTelExporterRejectsNilInputs(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("appcore-test")

	if _, err := NewOTelExporterFromSource(nil, &fakeSource{}); err != ErrNilMeter {
		t.Fatalf("expected ErrNilMeter, got %v", err)
	}
	if _, err := NewOTelExporterFromSource(meter, nil); err != ErrNilSource {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}
