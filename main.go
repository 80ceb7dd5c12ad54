package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"overtime_tui/internal"
	"overtime_tui/internal/clock"
	"overtime_tui/internal/config"
	"overtime_tui/internal/history"
)

var (
	configFile   string
	historyLimit int

	rootCmd = &cobra.Command{
		Use:   "overtime_tui",
		Short: "Full-screen countdown timer that keeps counting into overtime.",
		Long: `Counts down from a fixed duration, switches to a warning color in the
final minute and keeps counting below zero once time is up.

Keys: space/enter start or pause, r resets, ? toggles help, q quits.
The buttons under the time can also be clicked.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runTimer,
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Print recorded timer segments, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
)

func init() {
	logrus.SetOutput(os.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file (default: search for overtime_tui.yaml)")
	flags.String(config.KeyDuration, config.DefaultStartDuration.String(), "starting duration, in minutes or as a Go duration")
	flags.String(config.KeyWarning, config.DefaultWarningThreshold.String(), "warning window before zero")
	flags.String(config.KeyHistory, "", "sqlite file to record run segments in (disabled when empty)")
	flags.String(config.KeyLogFile, "", "write logs to this file while the timer is on screen")
	flags.BoolP(config.KeyVerbose, "v", false, "enable debug logging")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of segments to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}

func runTimer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var repo *history.Repository
	if cfg.HistoryPath != "" {
		repo, err = history.NewRepository(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
	}

	// The screen belongs to the TUI; logs go to the log file or nowhere.
	prevOut := logrus.StandardLogger().Out
	defer logrus.SetOutput(prevOut)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			if repo != nil {
				repo.Close()
			}
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logrus.SetOutput(f)
	} else {
		logrus.SetOutput(io.Discard)
	}

	log := logrus.WithField("component", "timer")
	m := internal.NewModel(cfg, clock.Real(), history.NewRecorder(repo), log)
	log.WithFields(logrus.Fields{
		"duration": cfg.StartDuration,
		"warning":  cfg.WarningThreshold,
		"history":  cfg.HistoryPath != "",
	}).Info("starting timer")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	closeErr := m.Close()
	if runErr != nil {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return closeErr
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" {
		return errors.New("no history file configured, pass --history or set OVERTIME_HISTORY")
	}

	repo, err := history.NewRepository(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer repo.Close()

	segments, err := repo.GetRecent(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), internal.HistoryTable(segments))
	return nil
}
