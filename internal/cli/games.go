package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/filter"
	"github.com/shelfapp/shelf/internal/model"
	"github.com/shelfapp/shelf/internal/output"
	"github.com/shelfapp/shelf/internal/render"
)

// gameRow is the JSON shape for one listed game.
type gameRow struct {
	ID         int      `json:"id"`
	Name       string   `json:"name,omitempty"`
	Source     string   `json:"source"`
	Hidden     bool     `json:"hidden"`
	Categories []string `json:"categories,omitempty"`
	LastPlayed string   `json:"last_played,omitempty"`
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List games in the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		filterName, _ := cmd.Flags().GetString("filter")
		board, _ := cmd.Flags().GetBool("board")

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		p, err := loadProfile(cmd, newCodec(cmd, meta))
		if err != nil {
			return err
		}

		games := make([]*model.Game, 0, len(p.GameData.Games))
		for _, id := range p.GameData.SortedIDs() {
			games = append(games, p.GameData.Games[id])
		}

		if filterName != "" {
			f := p.GameData.GetFilter(filterName)
			if f == nil {
				return cmdErr(fmt.Errorf("no filter named %q", filterName), output.ErrNotFound)
			}
			games = filter.Apply(f, p.GameData)
		}

		rows := make([]gameRow, 0, len(games))
		for _, g := range games {
			row := gameRow{
				ID:     g.ID,
				Name:   g.Name,
				Source: g.Source.String(),
				Hidden: g.Hidden,
			}
			for _, c := range g.Categories {
				row.Categories = append(row.Categories, c.Name)
			}
			sort.Strings(row.Categories)
			if g.LastPlayed != 0 {
				row.LastPlayed = time.Unix(g.LastPlayed, 0).UTC().Format(time.RFC3339)
			}
			rows = append(rows, row)
		}

		var body string
		if board {
			body = render.RenderCategoryBoard(p.GameData)
		} else {
			body = render.RenderGamesTable(games)
		}

		w.Success(rows, body)
		return nil
	},
}

func init() {
	gamesCmd.Flags().String("filter", "", "Apply a saved filter by name")
	gamesCmd.Flags().Bool("board", false, "Group games into category columns")
	rootCmd.AddCommand(gamesCmd)
}
