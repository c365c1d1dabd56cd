package main

import (
	"os"

	"github.com/kosmi-edu/kosmi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
