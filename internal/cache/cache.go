package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func Init(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

const commitmentTTL = 24 * time.Hour

// Commitments keeps published seed hashes in redis so the verification UI
// can fetch them without hitting the round store.
type Commitments struct {
	rdb *redis.Client
}

func NewCommitments(rdb *redis.Client) *Commitments {
	return &Commitments{rdb: rdb}
}

func (c *Commitments) Put(roundID, hash string) {
	c.rdb.Set(context.Background(), "casino:commit:"+roundID, hash, commitmentTTL)
}

func (c *Commitments) Get(roundID string) (string, bool) {
	v, err := c.rdb.Get(context.Background(), "casino:commit:"+roundID).Result()
	if err != nil {
		return "", false
	}
	return v, true
}
