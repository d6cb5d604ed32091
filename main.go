package main

import (
	"os"

	"github.com/abhisek/articlequest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
