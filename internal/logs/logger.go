package logs

import (
	"github.com/sirupsen/logrus"
)

// Logger — logger global de la aplicación (se inicializa con Init).
var Logger = logrus.New()

// Options — parámetros de inicialización del logger.
type Options struct {
	Level  string // trace|debug|info|warning|error|fatal
	Format string // text|json
}

// Init configura el logger global según las opciones dadas.
func Init(opts Options) {
	switch opts.Level {
	case "trace":
		Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Logger.SetLevel(logrus.FatalLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if opts.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
