package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/berrythewa/c2f/internal/storage"
)

func newHistoryCmd(env *Env, st *state) *cobra.Command {
	var (
		limit      int
		since      time.Duration
		typeFilter string
		reverse    bool
		useJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List files saved from the clipboard",
		Long: `List files previously written by c2f, newest first.

Examples:
  c2f history                 # last 20 saves
  c2f history -n 5            # last 5 saves
  c2f history --since 24h     # saves from the last day
  c2f history --type json     # only JSON saves
  c2f history clear           # forget everything`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(typeFilter)
			if err != nil {
				return err
			}
			options := storage.HistoryOptions{
				Limit:   limit,
				Type:    t,
				Reverse: reverse,
			}
			if since > 0 {
				options.Since = time.Now().Add(-since)
			}

			store, err := openStorage(st)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.GetHistory(options)
			if err != nil {
				return err
			}

			if useJSON {
				if records == nil {
					records = []*storage.Record{}
				}
				enc := json.NewEncoder(env.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			fmt.Fprintln(env.Out, env.formatter(st).FormatRecordList(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries to show (0 = all)")
	cmd.Flags().DurationVar(&since, "since", 0, "only show saves newer than this (e.g. 24h)")
	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "filter by content type or extension (json, md, image, ...)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "oldest first")
	cmd.Flags().BoolVar(&useJSON, "json", false, "output history as JSON")

	cmd.AddCommand(newHistoryClearCmd(env, st))
	return cmd
}

func newHistoryClearCmd(env *Env, st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(st)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(env.Out, "Removed %d history entries\n", removed)
			return nil
		},
	}
}
