// Package main is the entry point for the jobsummary CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/jobsummary/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
