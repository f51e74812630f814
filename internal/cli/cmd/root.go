package cmd

import (
	"github.com/spf13/cobra"
)

type saveOptions struct {
	append    bool
	quiet     bool
	appendExt bool
	detect    bool
}

// NewRootCmd builds the c2f command tree against env
func NewRootCmd(env *Env) *cobra.Command {
	st := &state{}
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "c2f [filename]",
		Short: "Save clipboard contents to a file",
		Long: `c2f writes whatever is on the clipboard to a file.

Images are saved as PNG. Text is classified (JSON, YAML, Go, Markdown, ...)
and, without an explicit filename, saved as clipboard.<ext>, numbered
clipboard-2.<ext>, clipboard-3.<ext>, ... when the name is taken.

Examples:
  c2f                   # clipboard.json, clipboard.png, ...
  c2f notes             # write to ./notes
  c2f -e notes          # write to ./notes.md if the clipboard holds markdown
  c2f -a log.txt        # append to log.txt
  c2f --detect=false    # skip detection, save as clipboard.txt
  c2f ./history         # a file named like a subcommand (history, version)`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runSave(cmd, st, opts, args)
		},
	}

	cmd.SetIn(env.In)
	cmd.SetOut(env.Out)
	cmd.SetErr(env.Err)
	cmd.SetVersionTemplate("c2f {{.Version}}\n")

	// Global flags
	cmd.PersistentFlags().StringVar(&st.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/c2f/config.yaml)")
	cmd.PersistentFlags().BoolVar(&st.verbose, "verbose", false, "enable debug logging")

	cmd.Flags().BoolVarP(&opts.append, "append", "a", false, "append to the file instead of overwriting")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress output")
	cmd.Flags().BoolVarP(&opts.appendExt, "append-ext", "e", false, "add the detected extension to the given filename")
	cmd.Flags().BoolVar(&opts.detect, "detect", true, "detect the content type (overrides detect_type in config)")
	cmd.Flags().BoolP("version", "V", false, "print version")

	cmd.AddCommand(
		newHistoryCmd(env, st),
		newVersionCmd(env),
	)

	return cmd
}
