// filepath: cmd/mediacheck/main.go
package main

import (
	"mediacheck/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
