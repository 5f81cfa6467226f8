package cli

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	conf := zap.NewDevelopmentEncoderConfig()
	conf.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(conf), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
