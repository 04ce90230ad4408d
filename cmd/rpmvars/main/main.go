package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/rpmvars/cmd/rpmvars"
	"github.com/arthur-debert/rpmvars/pkg/style"
)

func main() {
	rootCmd := rpmvars.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(rpmvars.ExitCode(err))
	}
}
