package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/controlj/regexc/cmd"
)

func main() {
	log.SetOutput(os.Stdout)

	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	cmd.Execute()
}
