package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/threadexio/hid-tester/cmd"
)

func main() {
	// stdout carries the generated table
	log.SetOutput(os.Stderr)

	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	cmd.Execute()
}
