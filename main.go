package main

import (
	"os"

	"github.com/aulalab/aula/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
