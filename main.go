package main

import (
	"os"

	"github.com/okanta/memloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
