package main

import (
	"os"

	"github.com/shlvgit07/basmach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
