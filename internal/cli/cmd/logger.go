package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/berrythewa/c2f/internal/common"
	"github.com/berrythewa/c2f/internal/config"
)

// setup loads the configuration and builds the logger. A config that cannot
// be read or parsed is reported and replaced by defaults; c2f never refuses
// to run over its config file.
func (e *Env) setup(st *state) error {
	cfg, loadErr := config.Load(st.cfgFile)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	st.cfg = cfg

	if e.Logger != nil {
		st.logger = e.Logger
	} else {
		logger, err := common.NewLogger(cfg.Log.Level, st.verbose)
		if err != nil {
			return fmt.Errorf("failed to setup logger: %w", err)
		}
		st.logger = logger
	}

	if loadErr != nil {
		st.logger.Warn("Using default configuration", zap.Error(loadErr))
	}
	st.logger.Debug("Configuration loaded",
		zap.Bool("ask_confirmation", cfg.AskConfirmation),
		zap.Bool("quiet", cfg.Quiet),
		zap.Bool("detect_type", cfg.DetectType),
		zap.Bool("history", cfg.History.Enabled))
	return nil
}
