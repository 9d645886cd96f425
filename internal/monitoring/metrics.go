package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_total",
			Help: "Rounds placed per game",
		},
		[]string{"game"},
	)

	Payouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_payouts_total",
			Help: "Total amount paid out per game",
		},
		[]string{"game"},
	)

	NonceRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_nonce_retries_total",
			Help: "Round creations retried after a nonce collision",
		},
	)

	RealizedRTP = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "casino_realized_rtp",
			Help: "Observed payout/stake ratio since start",
		},
	)

	WalletDebits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_debits_total",
			Help: "Successful wallet debits",
		},
	)

	WalletCredits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_credits_total",
			Help: "Wallet credits",
		},
	)
)

func Init() {
	prometheus.MustRegister(BetsPlaced)
	prometheus.MustRegister(Payouts)
	prometheus.MustRegister(NonceRetries)
	prometheus.MustRegister(RealizedRTP)
	prometheus.MustRegister(WalletDebits)
	prometheus.MustRegister(WalletCredits)
}
