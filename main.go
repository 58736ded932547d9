package main

import (
	"os"

	"github.com/gallegodamar/sinonimoak/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
