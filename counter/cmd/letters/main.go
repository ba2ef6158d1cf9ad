// Command letters counts how often each letter occurs in a text.
// Run without arguments, it counts "hola mundo" both ways and prints
// the two results, one per line.
package main

import (
	"os"
)

// Version is set at build time
var Version = "dev"

func main() {
	if err := newRootCommand(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
