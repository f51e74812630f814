package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/c2f/internal/detect"
	"github.com/berrythewa/c2f/internal/output"
	"github.com/berrythewa/c2f/internal/storage"
	"github.com/berrythewa/c2f/internal/types"
)

func (e *Env) runSave(cmd *cobra.Command, st *state, opts *saveOptions, args []string) error {
	cfg := st.cfg
	logger := st.logger

	quiet := opts.quiet || cfg.Quiet
	detectType := cfg.DetectType
	if cmd.Flags().Changed("detect") {
		detectType = opts.detect
	}

	var filename string
	if len(args) > 0 {
		filename = args[0]
	}

	content, err := detect.Prepare(e.Source(logger), detectType)
	if err != nil {
		return err
	}
	logger.Debug("Clipboard classified",
		zap.String("type", string(content.Type)),
		zap.Int("size", len(content.Data)))

	name := output.ResolveFilename(e.Fs, output.Request{
		Filename:  filename,
		Type:      content.Type,
		AppendExt: opts.appendExt,
		Detect:    detectType,
		Append:    opts.append,
	})

	if cfg.AskConfirmation {
		action := output.DetermineAction(e.Fs, name, opts.append)
		if !output.Confirm(e.In, e.Out, name, action) {
			if !quiet {
				fmt.Fprintln(e.Out, "Cancelled.")
			}
			return nil
		}
	}

	if err := output.Write(e.Fs, name, content, opts.append); err != nil {
		if errors.Is(err, output.ErrAppendImage) {
			return err
		}
		return fmt.Errorf("error writing to file: %w", err)
	}
	logger.Info("Clipboard saved",
		zap.String("filename", name),
		zap.String("type", string(content.Type)),
		zap.Bool("appended", opts.append))

	if cfg.History.Enabled {
		e.record(st, storage.NewRecord(name, content, opts.append))
	}

	if !quiet {
		f := e.formatter(st)
		if detectType && filename == "" {
			fmt.Fprintln(e.Out, f.Detected(content.Type))
		}
		fmt.Fprintln(e.Out, f.Saved(name, opts.append))
	}
	return nil
}

// record adds a save to the history. The file is already written, so a
// history failure is only logged.
func (e *Env) record(st *state, record *storage.Record) {
	store, err := openStorage(st)
	if err != nil {
		st.logger.Warn("History unavailable", zap.Error(err))
		return
	}
	defer store.Close()

	if err := store.SaveRecord(record); err != nil {
		st.logger.Warn("Failed to record save", zap.Error(err))
	}
}

// openStorage uses the OS filesystem, not Env.Fs: bbolt mmaps a real file.
func openStorage(st *state) (*storage.BoltStorage, error) {
	return storage.NewBoltStorage(storage.StorageConfig{
		DBPath:    st.cfg.History.DBPath,
		Logger:    st.logger,
		KeepItems: st.cfg.History.KeepItems,
	})
}

// parseType resolves a --type value given as a type name or an extension
func parseType(s string) (types.ContentType, error) {
	if s == "" {
		return "", nil
	}
	for _, t := range types.AllContentTypes() {
		if string(t) == s || t.Extension() == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q", s)
}
