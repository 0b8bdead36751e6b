package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stdout)
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
