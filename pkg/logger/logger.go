package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	atom = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log  *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		atom,
	)

	log = zap.New(core).Sugar()
}

// SetDebug lowers the log level so Debugf output is emitted.
func SetDebug() {
	atom.SetLevel(zapcore.DebugLevel)
}

func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	log.Infof(template, args...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Error(err error) {
	log.Error(err)
}

func Errorf(template string, args ...interface{}) {
	log.Errorf(template, args...)
}
