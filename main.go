package main

import (
	"os"

	"github.com/amehta/practik/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
