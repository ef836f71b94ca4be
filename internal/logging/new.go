package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a Logger writing to w. Format "console" uses zap's console
// encoder; "json" uses slog's JSON handler.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", "console":
		var lvl zapcore.Level
		if strings.EqualFold(level, "warning") {
			level = "warn"
		}
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
		return NewZapLogger(zap.New(core)), nil
	case "json":
		return NewSlogJSONLogger(w, level)
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}
