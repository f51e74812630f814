// Package cli is the entry point shared by the c2f binary
package cli

import (
	"fmt"
	"os"

	cmdpkg "github.com/berrythewa/c2f/internal/cli/cmd"
)

// SetVersionInfo records build information for --version and c2f version
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}

// Execute runs c2f and exits non-zero on failure
func Execute() {
	env := cmdpkg.DefaultEnv()
	if err := cmdpkg.NewRootCmd(env).Execute(); err != nil {
		fmt.Fprintln(env.Err, err)
		os.Exit(1)
	}
}
