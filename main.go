package main

import (
	"os"

	"github.com/httpdex/httpdex/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
