package cli

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/fetch"
	"github.com/shelfapp/shelf/internal/output"
	"github.com/shelfapp/shelf/internal/refresh"
	"github.com/shelfapp/shelf/internal/render"
)

var refreshCmd = &cobra.Command{
	Use:     "refresh",
	Aliases: []string{"update"},
	Short:   "Fetch the remote game list and merge it into the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)
		settings := getSettings(cmd)
		log := getLogger(cmd)

		sourceFlag, _ := cmd.Flags().GetString("source")
		if sourceFlag == "" {
			sourceFlag = settings.ListSource
		}
		mode, err := fetch.ParseMode(sourceFlag)
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		codec := newCodec(cmd, meta)
		p, err := loadProfile(cmd, codec)
		if err != nil {
			return err
		}
		if p.AccountID64 == 0 {
			return cmdErr(
				fmt.Errorf("profile has no account, run 'shelf init --account <id>' or pick one from 'shelf accounts'"),
				output.ErrValidation,
			)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		job := &refresh.Job{
			Client: fetch.NewHTTPClient(&http.Client{Timeout: 2 * time.Minute}, log),
			Mode:   mode,
			Log:    log,
		}

		report, err := job.Run(ctx, p)
		if err != nil {
			return cmdErr(err, output.ErrFetch)
		}

		if err := codec.Save(p, cfg.ProfilePath); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		if report.Failover {
			w.Warn("XML fetch failed, results came from the website fallback")
		}

		msg := render.StyledText(
			fmt.Sprintf("Fetched %d games (%d new)", report.Fetched, report.Added),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		)
		w.Success(report, msg)

		return nil
	},
}

func init() {
	refreshCmd.Flags().String("source", "", "Fetch method: xml-preferred, xml, or website (default from settings)")
	rootCmd.AddCommand(refreshCmd)
}
