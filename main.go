package main

import (
	"os"

	"github.com/skyreport/skyreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
