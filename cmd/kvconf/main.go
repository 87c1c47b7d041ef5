// kvconf inspects and validates key=value config files.
package main

import (
	"fmt"
	"os"

	"github.com/ttd2089/kvconf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
