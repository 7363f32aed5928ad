package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/pyramid-smash/status"

// Meter returns the package meter from the global provider, a no-op unless one is installed
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// RegisterMeter exposes the registry through observable instruments on m
// Int metrics become gauges named after their key, floats share one gauge keyed by attribute
// Metrics created after registration are picked up on the next collection for floats only
func RegisterMeter(m metric.Meter, r *Registry) (metric.Registration, error) {
	gauges := make(map[string]metric.Int64ObservableGauge)
	instruments := make([]metric.Observable, 0, r.Ints.Count()+1)

	var regErr error
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		if regErr != nil {
			return
		}
		g, err := m.Int64ObservableGauge(key, metric.WithDescription("status registry "+key))
		if err != nil {
			regErr = fmt.Errorf("creating gauge %s: %w", key, err)
			return
		}
		gauges[key] = g
		instruments = append(instruments, g)
	})
	if regErr != nil {
		return nil, regErr
	}

	floats, err := m.Float64ObservableGauge(
		"status.floats",
		metric.WithDescription("Float metrics from the status registry"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}
	instruments = append(instruments, floats)

	reg, err := m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			for key, g := range gauges {
				o.ObserveInt64(g, r.Ints.Get(key).Load())
			}
			r.Floats.Range(func(key string, f *AtomicFloat) {
				o.ObserveFloat64(floats, f.Get(),
					metric.WithAttributes(attribute.String("metric", key)))
			})
			return nil
		},
		instruments...,
	)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}
	return reg, nil
}
