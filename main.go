// main.go
package main

import (
	"os"

	"github.com/gewnthar/flightqa/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
