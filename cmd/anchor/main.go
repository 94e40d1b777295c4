package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/currencydash/anchor/internal/backend"
	"github.com/currencydash/anchor/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var backendURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/anchor/config.yml)")
	flag.StringVar(&backendURL, "backend", "", "override backend base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Anchor - Currency Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if backendURL != "" {
		cfg.BackendURL = backendURL
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	configDir := os.Getenv("HOME") + "/.config/anchor"
	if err := tui.InitializeSkin(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL:         cfg.BackendURL,
		UserID:          cfg.UserID,
		CheckTimeout:    cfg.CheckTimeout,
		AnalysisTimeout: cfg.AnalysisTimeout,
	})
	if err != nil {
		return fmt.Errorf("invalid backend configuration: %w", err)
	}

	dashboard := tui.NewDashboardModel(client, version)
	dashPage := tui.NewDashboardPage(dashboard)
	app := tui.NewApp(dashPage)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
