package cli

import (
	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		p, err := loadProfile(cmd, newCodec(cmd, meta))
		if err != nil {
			return err
		}

		games, shortcuts, hidden := 0, 0, 0
		for _, g := range p.GameData.Games {
			if g.IsShortcut() {
				shortcuts++
			} else {
				games++
			}
			if g.Hidden {
				hidden++
			}
		}

		w.Success(struct {
			Path       string `json:"path"`
			AccountID  int64  `json:"account_id"`
			Games      int    `json:"games"`
			Shortcuts  int    `json:"shortcuts"`
			Hidden     int    `json:"hidden"`
			Categories int    `json:"categories"`
			Filters    int    `json:"filters"`
			Ignored    int    `json:"ignored"`
			AutoCats   int    `json:"autocats"`
		}{
			Path:       p.FilePath,
			AccountID:  p.AccountID64,
			Games:      games,
			Shortcuts:  shortcuts,
			Hidden:     hidden,
			Categories: len(p.GameData.Categories),
			Filters:    len(p.GameData.Filters),
			Ignored:    len(p.IgnoreList),
			AutoCats:   len(p.AutoCats),
		}, render.RenderProfileDetail(p))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
