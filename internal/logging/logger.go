package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logger. Development gets colored
// text, production gets JSON lines.
func Setup(level string, development bool) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetOutput(os.Stdout)

	if development {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
