// Package main is the entry point of the parkinglot command.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/parkinglot/parkinglot/cmd"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
