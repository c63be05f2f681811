package main

import (
	"fmt"

	"github.com/benbaarber/rl/examples"
)

// main entry point to the example experiments
func main() {
	rootCommand := examples.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
