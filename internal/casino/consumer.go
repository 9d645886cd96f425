package casino

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"bx-casino/internal/event"
	"bx-casino/internal/logger"
)

type Audit interface {
	Log(uid int, action string, metadata string)
}

type Broadcaster interface {
	Broadcast(data []byte)
}

// RegisterConsumers wires the side effects of a settled round: audit trail,
// leaderboard update, live broadcast. Wallet crediting stays in the
// service's settle path; the bus is fire-and-forget.
func RegisterConsumers(bus *event.Bus, audit Audit, lb *Leaderboard, ws Broadcaster) {

	bus.Subscribe(event.EventRoundSettled, func(payload interface{}) {
		ev, ok := payload.(*SettledEvent)
		if !ok {
			return
		}

		audit.Log(ev.UID, "casino_round_settled",
			fmt.Sprintf("game=%s round=%s stake=%.8f payout=%.8f", ev.Game, ev.RoundID, ev.Stake, ev.Payout))

		if err := lb.Record(ev.UID, ev.Payout-ev.Stake); err != nil {
			logger.Log.Warn("leaderboard update failed", zap.Error(err))
		}

		if data, err := json.Marshal(ev); err == nil {
			ws.Broadcast(data)
		}
	})
}
