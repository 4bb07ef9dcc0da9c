package commands

import (
	"io"
	"log/slog"
)

// MetricsWriter writes collected metrics in a text exposition format.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// RunWriteMetrics dumps the metrics gathered during a command to w.
func RunWriteMetrics(provider MetricsWriter, logger *slog.Logger, w io.Writer) error {
	if err := provider.WriteText(w); err != nil {
		return err
	}
	logger.Debug("metrics written")
	return nil
}
