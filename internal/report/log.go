package report

import (
	"net"

	"go.uber.org/zap"

	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/logging"
)

// Log writes one structured log entry per event through the global logger
type Log struct{}

// NewLog creates a log sink
func NewLog() *Log {
	return &Log{}
}

// Started logs the bound address
func (*Log) Started(addr *net.UDPAddr) {
	if addr == nil {
		return
	}
	logging.Info("Listening for OTA broadcasts", zap.Int("port", addr.Port))
}

// Report logs the event
func (*Log) Report(ev listener.Event) error {
	fields := []zap.Field{
		zap.String("ip", ev.SourceIP),
		zap.Int("source_port", ev.SourcePort),
		zap.String("message", ev.Message),
		zap.Bool("binary", ev.Binary),
		zap.String("action", ev.Hint()),
	}
	if ev.DeviceID != "" {
		fields = append(fields, zap.String("device_id", ev.DeviceID))
	}
	if ev.Truncated {
		fields = append(fields, zap.Bool("truncated", true))
	}
	logging.Info("Device found", fields...)
	return nil
}

// Stopped logs the shutdown notice
func (*Log) Stopped() {
	logging.Info("Stopping listener")
}
