package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(env.Out, "c2f\n")
			fmt.Fprintf(env.Out, "Version:    %s\n", version)
			fmt.Fprintf(env.Out, "Build Time: %s\n", buildTime)
			fmt.Fprintf(env.Out, "Commit:     %s\n", commit)
		},
	}
}
