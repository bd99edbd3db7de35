package app

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cadence-cli/cadence/config"
)

// initLogger routes structured logs to a rotated file in the data
// directory so they never interfere with the countdown display.
func initLogger() {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("CADENCE_DEBUG"), "true") {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
