package shikaku

import "github.com/sirupsen/logrus"

// log is the package logger. Per-solve progress is logged at debug level so
// the hot paths stay quiet by default.
var log = logrus.New()

// SetVerbose toggles debug-level search progress logging.
func SetVerbose(v bool) {
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}
