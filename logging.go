package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func setupLogger(level string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(out)

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("Unknown log level %q, using info", level)
		return
	}
	log.SetLevel(parsed)
}
