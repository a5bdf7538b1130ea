package main

import (
	"os"

	"github.com/amanah-dev/masjid-finance/cmd/treasury/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
