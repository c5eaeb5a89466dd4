package main

import (
	"os"

	"github.com/20238643/UPSC-PrepHub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
