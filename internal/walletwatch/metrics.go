package walletwatch

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/ethtracker/internal/walletwatch"

var tracer = otel.Tracer(instrumentationName)

type metrics struct {
	cycles         metric.Int64Counter
	detected       metric.Int64Counter
	notifyFailures metric.Int64Counter
}

// newMetrics registers the engine counters on the global meter provider.
// Instruments that fail to register are replaced by no-ops.
func newMetrics() metrics {
	meter := otel.Meter(instrumentationName)

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			return noop.Int64Counter{}
		}
		return c
	}

	return metrics{
		cycles:         counter("walletwatch.cycles", "Poll cycles executed, by result"),
		detected:       counter("walletwatch.transactions.detected", "New transactions stored"),
		notifyFailures: counter("walletwatch.notifications.failed", "Notifications that could not be delivered"),
	}
}
