package logger

import "go.uber.org/zap"

// Log defaults to a no-op logger so packages can log before (or without)
// Init, which matters for tests.
var Log = zap.NewNop()

func Init() {
	l, _ := zap.NewProduction()
	Log = l
}

func Sync() {
	Log.Sync()
}
