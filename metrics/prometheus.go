package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	intentionCounter   *prometheus.CounterVec
	directTradeCounter prometheus.Counter
	ammTradeCounter    *prometheus.CounterVec
	resolutionFailures prometheus.Counter
	activePairsGauge   prometheus.Gauge
)

// Setup registers all the engine instruments with the default
// prometheus registry. Calling it twice is an error.
func Setup() error {
	intentionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peerswap",
		Subsystem: "exchange",
		Name:      "intentions_total",
		Help:      "Number of intentions accepted per direction",
	}, []string{"direction"})
	if err := prometheus.Register(intentionCounter); err != nil {
		return err
	}

	directTradeCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "peerswap",
		Subsystem: "exchange",
		Name:      "direct_trades_total",
		Help:      "Number of peer to peer settlements executed",
	})
	if err := prometheus.Register(directTradeCounter); err != nil {
		return err
	}

	ammTradeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peerswap",
		Subsystem: "exchange",
		Name:      "amm_trades_total",
		Help:      "Number of AMM fallback trades executed per direction",
	}, []string{"direction"})
	if err := prometheus.Register(ammTradeCounter); err != nil {
		return err
	}

	resolutionFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "peerswap",
		Subsystem: "exchange",
		Name:      "resolution_failures_total",
		Help:      "Number of resolutions aborted before fully settling",
	})
	if err := prometheus.Register(resolutionFailures); err != nil {
		return err
	}

	activePairsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "peerswap",
		Subsystem: "exchange",
		Name:      "active_pairs",
		Help:      "Number of asset pairs with intentions in the current round",
	})
	return prometheus.Register(activePairsGauge)
}

// Start exposes the prometheus handler on the given address,
// blocking until the server stops.
func Start(addr string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, nil)
}

// IntentionRegisteredInc increments the intention counter for the
// given direction, no-op when Setup was not called.
func IntentionRegisteredInc(direction string) {
	if intentionCounter == nil {
		return
	}
	intentionCounter.WithLabelValues(direction).Inc()
}

// DirectTradeInc increments the direct trade counter.
func DirectTradeInc() {
	if directTradeCounter == nil {
		return
	}
	directTradeCounter.Inc()
}

// AMMTradeInc increments the AMM trade counter for the given direction.
func AMMTradeInc(direction string) {
	if ammTradeCounter == nil {
		return
	}
	ammTradeCounter.WithLabelValues(direction).Inc()
}

// ResolutionFailureInc increments the aborted resolution counter.
func ResolutionFailureInc() {
	if resolutionFailures == nil {
		return
	}
	resolutionFailures.Inc()
}

// ActivePairsSet records the number of pairs drained this round.
func ActivePairsSet(n int) {
	if activePairsGauge == nil {
		return
	}
	activePairsGauge.Set(float64(n))
}
