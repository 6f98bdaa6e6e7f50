package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/autocat"
	"github.com/shelfapp/shelf/internal/output"
)

// autocatRow is the JSON shape for one category-generation rule.
type autocatRow struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Filter string `json:"filter,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

var autocatsCmd = &cobra.Command{
	Use:   "autocats",
	Short: "Manage category-generation rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		p, err := loadProfile(cmd, newCodec(cmd, meta))
		if err != nil {
			return err
		}

		rows := make([]autocatRow, 0, len(p.AutoCats))
		var lines []string
		for _, ac := range p.AutoCats {
			base := ac.GetBase()
			rows = append(rows, autocatRow{
				Name:   base.Name,
				Type:   ac.Type(),
				Filter: base.Filter,
				Prefix: base.Prefix,
			})
			lines = append(lines, fmt.Sprintf("%-12s %-18s %s", base.Name, ac.Type(), base.Prefix))
		}

		msg := "No category rules defined."
		if len(lines) > 0 {
			msg = fmt.Sprintf("%-12s %-18s %s\n%s", "Name", "Type", "Prefix", strings.Join(lines, "\n"))
		}

		w.Success(rows, msg)
		return nil
	},
}

var autocatsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the rule set with the generated defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		meta, closeMeta := openMetadata(cmd)
		defer closeMeta()

		codec := newCodec(cmd, meta)
		p, err := loadProfile(cmd, codec)
		if err != nil {
			return err
		}

		var src autocat.MetadataSource
		if meta != nil {
			src = meta
		}
		p.AutoCats = autocat.GenerateDefaultSet(src)

		if err := codec.Save(p, cfg.ProfilePath); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		w.Success(struct {
			AutoCats int `json:"autocats"`
		}{len(p.AutoCats)}, fmt.Sprintf("Reset to %d default rules", len(p.AutoCats)))

		return nil
	},
}

func init() {
	autocatsCmd.AddCommand(autocatsResetCmd)
	rootCmd.AddCommand(autocatsCmd)
}
