package event

const (
	EventRoundSettled = "casino.round.settled"
)
