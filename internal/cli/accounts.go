package cli

import (
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/model"
	"github.com/shelfapp/shelf/internal/names"
	"github.com/shelfapp/shelf/internal/render"
	"github.com/shelfapp/shelf/internal/steam"
)

var accountsCmd = &cobra.Command{
	Use:         "accounts",
	Short:       "Discover local accounts and resolve their display names",
	Annotations: map[string]string{"skipProfile": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		settings := getSettings(cmd)
		log := getLogger(cmd)

		noResolve, _ := cmd.Flags().GetBool("no-resolve")

		dirs := steam.EnumerateAccountDirs(settings.SteamPath)

		rows := make([]render.AccountRow, len(dirs))
		ids := make([]int64, len(dirs))
		for i, dir := range dirs {
			ids[i] = model.DirNameToID64(dir)
			rows[i] = render.AccountRow{Dir: dir, ID64: ids[i]}
		}

		if len(rows) > 0 && !noResolve {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hc := &http.Client{Timeout: 15 * time.Second}
			pool := &names.Pool{
				Min: settings.WorkerMinimum,
				Resolve: func(id64 int64) (string, error) {
					return steam.ResolveDisplayName(ctx, hc, id64)
				},
				Log: log,
			}

			var mu sync.Mutex
			done := make(chan struct{})
			pool.Start(ids, func(index int, name *string) {
				mu.Lock()
				rows[index].Name = name
				mu.Unlock()
			}, func() { close(done) })

			select {
			case <-done:
			case <-ctx.Done():
				pool.Stop()
				<-done
			}
		}

		w.Success(rows, render.RenderAccountsTable(rows))
		return nil
	},
}

func init() {
	accountsCmd.Flags().Bool("no-resolve", false, "Skip display-name resolution")
	rootCmd.AddCommand(accountsCmd)
}
