package main

import (
	"os"

	"github.com/msto63/aoc2023/cmd/aoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
