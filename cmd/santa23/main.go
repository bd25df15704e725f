package main

import (
	"fmt"
	"os"

	"github.com/santa23kit/solver/internal/cli"
	"github.com/santa23kit/solver/internal/xerr"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(xerr.InvariantPanic); ok {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", iv)
				os.Exit(1)
			}
			panic(r)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
