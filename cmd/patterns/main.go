// Package main is the entry point for the patterns command.
package main

import "github.com/dshills/patterns/internal/cli"

func main() {
	cli.Execute()
}
