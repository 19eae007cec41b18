package main

import (
	"os"

	"github.com/gokaykeskin/duygu/cmd/duygu/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.OutputError("%v", err)
		os.Exit(1)
	}
}
