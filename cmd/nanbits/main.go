package main

import (
	"fmt"
	"os"

	"github.com/shabbyrobe/go-nan/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nanbits:", err)
		os.Exit(1)
	}
}
