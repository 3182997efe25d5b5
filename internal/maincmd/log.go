package maincmd

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger that writes only the message of each entry, one
// per line, to w. With quiet set, only warnings and errors are written.
func NewLogger(w io.Writer, quiet bool) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	lvl := zapcore.InfoLevel
	if quiet {
		lvl = zapcore.WarnLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core)
}
