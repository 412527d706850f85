package main

import (
	"os"

	"github.com/devfest-vale/workshop-enrollment/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
