package main

import (
	"fmt"
	"os"

	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/registry"
)

func main() {
	err := newRootCmd(registry.Default()).Execute()
	if shutdownErr := logging.Shutdown(); shutdownErr != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", shutdownErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
