package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/output"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore",
	Short: "Manage the import ignore list",
}

var ignoreListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ignored game IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		p, err := loadProfile(cmd, newCodec(cmd, meta))
		if err != nil {
			return err
		}

		ids := p.IgnoreList.Sorted()
		var msg string
		if len(ids) == 0 {
			msg = "Ignore list is empty."
		} else {
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.Itoa(id)
			}
			msg = fmt.Sprintf("%d ignored: %s", len(ids), strings.Join(parts, ", "))
		}

		w.Success(ids, msg)
		return nil
	},
}

var ignoreAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Add game IDs to the ignore list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		codec := newCodec(cmd, meta)
		p, err := loadProfile(cmd, codec)
		if err != nil {
			return err
		}

		added := 0
		for _, id := range ids {
			if !p.IgnoreGame(id) {
				continue
			}
			added++
			// Drop any store-sourced entry so the next save does not
			// resurrect it; manual entries stay.
			if g, ok := p.GameData.Games[id]; ok && g.Source.IgnoreEligible() {
				delete(p.GameData.Games, id)
			}
		}

		if err := codec.Save(p, cfg.ProfilePath); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		w.Success(struct {
			Added int   `json:"added"`
			Total int   `json:"total"`
			IDs   []int `json:"ids"`
		}{added, len(p.IgnoreList), ids}, fmt.Sprintf("Ignoring %d game(s)", added))

		return nil
	},
}

var ignoreRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove game IDs from the ignore list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		codec := newCodec(cmd, meta)
		p, err := loadProfile(cmd, codec)
		if err != nil {
			return err
		}

		removed := 0
		for _, id := range ids {
			if p.IgnoreList.Remove(id) {
				removed++
			}
		}

		if err := codec.Save(p, cfg.ProfilePath); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		w.Success(struct {
			Removed int   `json:"removed"`
			Total   int   `json:"total"`
			IDs     []int `json:"ids"`
		}{removed, len(p.IgnoreList), ids}, fmt.Sprintf("Unignored %d game(s)", removed))

		return nil
	},
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, cmdErr(fmt.Errorf("invalid game ID %q", a), output.ErrValidation)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	ignoreCmd.AddCommand(ignoreListCmd, ignoreAddCmd, ignoreRemoveCmd)
	rootCmd.AddCommand(ignoreCmd)
}
