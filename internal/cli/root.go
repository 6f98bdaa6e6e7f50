// Package cli implements the shelf command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/config"
	"github.com/shelfapp/shelf/internal/logger"
	"github.com/shelfapp/shelf/internal/metadata"
	"github.com/shelfapp/shelf/internal/model"
	"github.com/shelfapp/shelf/internal/output"
	"github.com/shelfapp/shelf/internal/profilexml"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

type contextKey string

const (
	cfgKey      contextKey = "cfg"
	settingsKey contextKey = "settings"
	logKey      contextKey = "log"
)

// CmdError wraps an error with a machine-readable error code for structured output.
type CmdError struct {
	Err  error
	Code output.ErrorCode
}

func (e *CmdError) Error() string { return e.Err.Error() }

func cmdErr(err error, code output.ErrorCode) *CmdError {
	return &CmdError{Err: err, Code: code}
}

var rootCmd = &cobra.Command{
	Use:     "shelf",
	Short:   "Local-first Steam library profile manager",
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve()
		if err != nil {
			return err
		}

		settings, err := config.LoadSettings(cfg.SettingsPath)
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := settings.LogLevel
		if verbose {
			level = "debug"
		}
		log := logger.New(level, settings.LogPretty)

		ctx := context.WithValue(cmd.Context(), cfgKey, cfg)
		ctx = context.WithValue(ctx, settingsKey, settings)
		ctx = context.WithValue(ctx, logKey, log)
		cmd.SetContext(ctx)

		if _, ok := cmd.Annotations["skipProfile"]; ok {
			return nil
		}

		if _, err := os.Stat(cfg.ProfilePath); os.IsNotExist(err) {
			return cmdErr(
				fmt.Errorf("no profile found, run 'shelf init' to create one"),
				output.ErrNotFound,
			)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log := getLogger(cmd); log != nil {
			log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func getWriter(cmd *cobra.Command) *output.Writer {
	jsonMode, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return output.New(jsonMode, quietMode)
}

func getCfg(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(cfgKey).(*config.Config)
	return cfg
}

func getSettings(cmd *cobra.Command) *config.Settings {
	s, _ := cmd.Context().Value(settingsKey).(*config.Settings)
	return s
}

func getLogger(cmd *cobra.Command) logger.Logger {
	log, _ := cmd.Context().Value(logKey).(logger.Logger)
	return log
}

// openMetadata opens the catalog metadata database when present. The
// returned close func is always safe to call. A missing database is
// not an error; the codec just seeds empty tag and flag lists.
func openMetadata(cmd *cobra.Command) (*metadata.DB, func()) {
	cfg := getCfg(cmd)
	if _, err := os.Stat(cfg.MetadataDBPath); err != nil {
		return nil, func() {}
	}
	db, err := metadata.Open(cfg.MetadataDBPath)
	if err != nil {
		getLogger(cmd).Warn("opening metadata database", logger.Error(err))
		return nil, func() {}
	}
	return db, func() { db.Close() }
}

// newCodec builds the profile codec from the resolved settings.
func newCodec(cmd *cobra.Command, meta *metadata.DB) *profilexml.Codec {
	c := &profilexml.Codec{
		BackupCount: getSettings(cmd).BackupCount,
		Log:         getLogger(cmd),
	}
	if meta != nil {
		c.Meta = meta
	}
	return c
}

// loadProfile decodes the profile at the configured path.
func loadProfile(cmd *cobra.Command, codec *profilexml.Codec) (*model.Profile, error) {
	p, err := codec.Load(getCfg(cmd).ProfilePath)
	if err != nil {
		return nil, cmdErr(err, output.ErrGeneral)
	}
	return p, nil
}

// Execute runs the root command and returns an exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		jsonMode, _ := rootCmd.PersistentFlags().GetBool("json")
		quietMode, _ := rootCmd.PersistentFlags().GetBool("quiet")
		w := output.New(jsonMode, quietMode)

		var ce *CmdError
		if errors.As(err, &ce) {
			return w.Error(ce.Err, ce.Code)
		}
		return w.Error(err, output.ErrGeneral)
	}
	return 0
}
