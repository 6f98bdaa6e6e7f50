package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/autocat"
	"github.com/shelfapp/shelf/internal/metadata"
	"github.com/shelfapp/shelf/internal/model"
	"github.com/shelfapp/shelf/internal/output"
	"github.com/shelfapp/shelf/internal/render"
)

const gettingStarted = `
## Next steps

- ` + "`shelf refresh`" + ` fetches your game list from the community site
- ` + "`shelf games`" + ` lists the library; ` + "`shelf show`" + ` summarizes the profile
- ` + "`shelf accounts`" + ` discovers local accounts if you skipped --account
`

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Create a new profile",
	Annotations: map[string]string{"skipProfile": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		account, _ := cmd.Flags().GetString("account")
		force, _ := cmd.Flags().GetBool("force")

		exists, err := cfg.Exists()
		if err != nil {
			return cmdErr(fmt.Errorf("checking profile: %w", err), output.ErrGeneral)
		}

		if exists && !force {
			if w.JSONMode || w.QuietMode {
				return cmdErr(
					fmt.Errorf("profile already exists at %s, pass --force to overwrite", cfg.ProfilePath),
					output.ErrValidation,
				)
			}

			overwrite := false
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("A profile already exists at %s", cfg.ProfilePath)).
				Description("Overwrite it? The existing game list and categories will be lost.").
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&overwrite)
			if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
				return cmdErr(fmt.Errorf("reading confirmation: %w", err), output.ErrGeneral)
			}
			if !overwrite {
				w.Info("Keeping existing profile")
				return nil
			}
		}

		if err := os.MkdirAll(cfg.ShelfDir, 0o755); err != nil {
			return cmdErr(fmt.Errorf("creating directory: %w", err), output.ErrGeneral)
		}

		settings := getSettings(cmd)
		if _, err := os.Stat(cfg.SettingsPath); os.IsNotExist(err) {
			if err := settings.Save(cfg.SettingsPath); err != nil {
				return cmdErr(err, output.ErrGeneral)
			}
		}

		meta, err := metadata.Open(cfg.MetadataDBPath)
		if err != nil {
			return cmdErr(fmt.Errorf("opening metadata database: %w", err), output.ErrGeneral)
		}
		defer meta.Close()
		if err := metadata.Initialize(meta); err != nil {
			return cmdErr(fmt.Errorf("initializing metadata database: %w", err), output.ErrGeneral)
		}

		p := model.NewProfile()
		if account != "" {
			p.AccountID64 = model.ParseAccountID(account)
			if p.AccountID64 == 0 {
				return cmdErr(fmt.Errorf("invalid account identifier %q", account), output.ErrValidation)
			}
		}
		p.AutoCats = autocat.GenerateDefaultSet(meta)

		codec := newCodec(cmd, meta)
		if err := codec.Save(p, cfg.ProfilePath); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		successMsg := render.StyledText("Initialized profile",
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")))

		w.Success(struct {
			Path      string `json:"path"`
			AccountID int64  `json:"account_id"`
			AutoCats  int    `json:"autocats"`
		}{
			Path:      cfg.ProfilePath,
			AccountID: p.AccountID64,
			AutoCats:  len(p.AutoCats),
		}, successMsg)

		w.Info("Profile created at %s", cfg.ProfilePath)
		if guide, err := render.RenderMarkdown(gettingStarted); err == nil {
			w.Info("%s", guide)
		}

		return nil
	},
}

func init() {
	initCmd.Flags().String("account", "", "Owning account: 64-bit ID or userdata directory name")
	initCmd.Flags().Bool("force", false, "Overwrite an existing profile without confirmation")
	rootCmd.AddCommand(initCmd)
}
