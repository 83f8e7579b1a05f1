package main

import (
	"fmt"
	"os"

	"github.com/fentz26/planner/internal/config"
	"github.com/fentz26/planner/internal/registry"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "planner - interactive task and subtask organizer",
	Long: `planner keeps tasks and their subtasks in memory for one session and
shows the task-to-subtask graph. With no subcommand it starts the numbered menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	reg *registry.Registry
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors in the TUI")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, configures logging and creates the session
// registry. Flags win over the environment, which wins over the file.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	c.ApplyEnv(os.LookupEnv)
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if noColor {
		c.Color = false
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	log.WithField("config", configPath).Debug("configuration loaded")

	reg = registry.New()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
