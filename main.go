package main

import (
	"fmt"
	"os"

	"gridworld-dp/experiments"
)

// main entry point to the solver commands
func main() {
	// rootCommand defines a command line argument parser (some arguments and a subcommand to run)
	rootCommand := experiments.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
