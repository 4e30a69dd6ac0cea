// Command arcedb runs a minimal RESP-speaking key-value server.
package main

import (
	"fmt"
	"os"

	"github.com/arcedb/arcedb/cmd/arcedb/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
