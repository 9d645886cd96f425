package audit

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"bx-casino/internal/logger"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Log appends an audit row. Best effort: an audit failure is logged, never
// propagated into the round flow.
func (s *Service) Log(uid int, action string, metadata string) {
	_, err := s.db.Exec(`
	INSERT INTO audit_logs(uid, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, uid, action, metadata, time.Now().Unix())
	if err != nil {
		logger.Log.Warn("audit write failed", zap.Error(err))
	}
}
