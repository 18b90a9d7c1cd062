package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trooper/internal/bookmarks"
	"trooper/internal/command"
	"trooper/internal/config"
	"trooper/internal/fileops"
	"trooper/internal/keymap"
	"trooper/internal/log"
	"trooper/internal/tui"
	"trooper/internal/watch"
)

var (
	version = "dev"
	cfgFile string
)

const logo = `
 _
| |_ _ __ ___   ___  _ __   ___ _ __
| __| '__/ _ \ / _ \| '_ \ / _ \ '__|
| |_| | | (_) | (_) | |_) |  __/ |
 \__|_|  \___/ \___/| .__/ \___|_|
                    |_|`

// Entry point for the application
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		startDir string
		debug    bool
	)

	cmd := &cobra.Command{
		Use:   "trooper",
		Short: "A modal terminal file manager",
		Long: logo + `

Trooper is a vim-flavored file manager: key chords, visual range
selection, an ex-style command line and a bookmark panel.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if startDir != "" {
				cfg.Directories.Start = startDir
			}
			if cmd.Flags().Changed("debug") {
				cfg.Settings.Debug = debug
			}
			return runApp(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/trooper/config.yaml)")
	cmd.Flags().StringVarP(&startDir, "dir", "d", "", "Directory to open (overrides the configured start directory)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(bindingsCmd())
	cmd.AddCommand(initCmd())

	return cmd
}

// loadConfig loads the configured or default config file, falling back
// to built-in defaults so the interface always comes up.
func loadConfig() *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Printf("Warning: could not load config: %v. Using defaults.\n", err)
		cfg = config.New()
	}
	return cfg
}

// runApp wires the engines together, runs the interface and persists
// session state on the way out.
func runApp(cfg *config.Config) error {
	// Logs must never hit the terminal while the interface owns it
	if err := log.ConfigureFile(cfg.Paths.LogFile, cfg.Settings.Debug); err != nil {
		log.Disable()
	}
	defer log.Close()

	tables, err := keymap.LoadBindings(cfg.Paths.Bindings)
	if err != nil {
		log.Warnf("Falling back to default bindings: %v", err)
	}

	marks, err := bookmarks.NewManager(bookmarks.NewFileStore(cfg.Paths.Bookmarks))
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	engine := fileops.New(fileops.NewFileRegister(cfg.Paths.YankFile))
	engine.SetIgnores(cfg.CompiledIgnores())

	history, err := command.LoadHistory(cfg.Paths.History)
	if err != nil {
		log.Warnf("Could not load command history: %v", err)
	}
	cmdline := command.NewWithHistory(history)

	watcher, err := watch.New()
	if err != nil {
		log.Warnf("Filesystem watching unavailable: %v", err)
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		log.Warnf("Filesystem watching unavailable: %v", err)
		watcher = nil
	}

	m, err := tui.New(tui.App{
		Config:    cfg,
		Engine:    engine,
		Bookmarks: marks,
		Tables:    tables,
		Command:   cmdline,
		Watcher:   watcher,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	if watcher != nil {
		watcher.Stop()
	}
	if err := marks.Save(); err != nil {
		log.Warnf("Could not save bookmarks: %v", err)
	}
	if err := command.SaveHistory(cfg.Paths.History, cmdline.History()); err != nil {
		log.Warnf("Could not save command history: %v", err)
	}
	return runErr
}

// bindingsCmd prints the chord tables after user overrides are applied.
func bindingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "Print the active key bindings",
		Long:  `Print the Normal and Visual mode chord tables, with binding file overrides applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			tables, err := keymap.LoadBindings(cfg.Paths.Bindings)
			if err != nil {
				fmt.Printf("Warning: %v. Showing defaults.\n", err)
			}
			printTable("normal", tables.Normal)
			fmt.Println()
			printTable("visual", tables.Visual)
			return nil
		},
	}
}

func printTable(name string, table *keymap.Table) {
	fmt.Printf("[%s]\n", name)
	for _, b := range table.Bindings() {
		fmt.Printf("%-12s %s\n", b.Chord.String(), b.Action)
	}
}

// initCmd writes a starter config so the default paths and settings are
// visible and editable.
func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolving home directory: %w", err)
				}
				path = filepath.Join(home, ".config", "trooper", "config.yaml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
