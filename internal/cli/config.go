package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shelfapp/shelf/internal/output"
	"github.com/shelfapp/shelf/internal/render"
)

type configInfo struct {
	ShelfDir         string `json:"shelf_dir"`
	ProfilePath      string `json:"profile_path"`
	ProfileSizeBytes int64  `json:"profile_size_bytes"`
	SettingsPath     string `json:"settings_path"`
	MetadataDBPath   string `json:"metadata_db_path"`
	ListSource       string `json:"list_source"`
	BackupCount      int    `json:"backup_count"`
	SteamPath        string `json:"steam_path"`
	WorkerMinimum    int    `json:"worker_minimum"`
	ShelfPathEnv     string `json:"shelf_path_env"`
	ShelfPathSet     bool   `json:"shelf_path_set"`
}

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Display shelf configuration",
	Annotations: map[string]string{"skipProfile": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)
		settings := getSettings(cmd)

		exists, err := cfg.Exists()
		if err != nil {
			return cmdErr(fmt.Errorf("checking profile: %w", err), output.ErrGeneral)
		}

		info := configInfo{
			ShelfDir:       cfg.ShelfDir,
			ProfilePath:    cfg.ProfilePath,
			SettingsPath:   cfg.SettingsPath,
			MetadataDBPath: cfg.MetadataDBPath,
			ListSource:     settings.ListSource,
			BackupCount:    settings.BackupCount,
			SteamPath:      settings.SteamPath,
			WorkerMinimum:  settings.WorkerMinimum,
			ShelfPathEnv:   os.Getenv("SHELF_PATH"),
			ShelfPathSet:   cfg.EnvVarSet,
		}

		if !exists {
			w.Warn("No profile found. Run 'shelf init' to create one.")
			w.Success(info, formatConfigHuman(info, true))
			return nil
		}

		stat, err := os.Stat(cfg.ProfilePath)
		if err != nil {
			return cmdErr(fmt.Errorf("reading profile file: %w", err), output.ErrGeneral)
		}
		info.ProfileSizeBytes = stat.Size()

		w.Success(info, formatConfigHuman(info, false))
		return nil
	},
}

func formatSize(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func formatEnvValue(val string) string {
	if val == "" {
		return "(not set)"
	}
	return val
}

func formatConfigHuman(info configInfo, notFound bool) string {
	if !render.ColorsEnabled() {
		return formatConfigPlain(info, notFound)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	lines := headerStyle.Render("Shelf Configuration") + "\n\n"

	if notFound {
		indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("●")
		lines += fmt.Sprintf("  %s %s %s\n", keyStyle.Render("Profile path:"), indicator, valStyle.Render(info.ProfilePath+" (not found)"))
	} else {
		indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("●")
		lines += fmt.Sprintf("  %s %s %s\n", keyStyle.Render("Profile path:"), indicator, valStyle.Render(info.ProfilePath))
		lines += fmt.Sprintf("  %s  %s\n", keyStyle.Render("Profile size:"), valStyle.Render(formatSize(info.ProfileSizeBytes)))
	}

	lines += fmt.Sprintf("  %s   %s\n", keyStyle.Render("List source:"), valStyle.Render(info.ListSource))
	lines += fmt.Sprintf("  %s  %s\n", keyStyle.Render("Backup count:"), valStyle.Render(fmt.Sprintf("%d", info.BackupCount)))
	lines += fmt.Sprintf("  %s    %s\n", keyStyle.Render("Steam path:"), valStyle.Render(formatEnvValue(info.SteamPath)))
	lines += fmt.Sprintf("  %s    %s", keyStyle.Render("SHELF_PATH:"), valStyle.Render(formatEnvValue(info.ShelfPathEnv)))

	return lines
}

func formatConfigPlain(info configInfo, notFound bool) string {
	profilePath := info.ProfilePath
	if notFound {
		profilePath = fmt.Sprintf("%s (not found)", info.ProfilePath)
	}

	lines := fmt.Sprintf("Profile path:   %s\n", profilePath)
	if !notFound {
		lines += fmt.Sprintf("Profile size:   %s\n", formatSize(info.ProfileSizeBytes))
	}
	lines += fmt.Sprintf("List source:    %s\n", info.ListSource)
	lines += fmt.Sprintf("Backup count:   %d\n", info.BackupCount)
	lines += fmt.Sprintf("Steam path:     %s\n", formatEnvValue(info.SteamPath))
	lines += fmt.Sprintf("SHELF_PATH:     %s", formatEnvValue(info.ShelfPathEnv))

	return lines
}

func init() {
	rootCmd.AddCommand(configCmd)
}
