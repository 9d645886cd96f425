package casino

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "casino:leaderboard"

type LeaderboardEntry struct {
	UID    int     `json:"uid"`
	Profit float64 `json:"profit"`
}

// Leaderboard keeps per-user profit in a redis sorted set so it survives
// restarts and is shared across instances.
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

func (l *Leaderboard) Record(uid int, profit float64) error {
	return l.rdb.ZIncrBy(context.Background(), leaderboardKey, profit, strconv.Itoa(uid)).Err()
}

func (l *Leaderboard) Top(n int) ([]LeaderboardEntry, error) {
	zs, err := l.rdb.ZRevRangeWithScores(context.Background(), leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		uid, _ := strconv.Atoi(z.Member.(string))
		entries = append(entries, LeaderboardEntry{UID: uid, Profit: z.Score})
	}
	return entries, nil
}
