package main

import (
	"os"

	"github.com/rustyeddy/trilemma/cmd/trilemma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
