package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/cpexport/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Long:  "Writes the example config.toml (default: $XDG_CONFIG_HOME/cpexport/config.toml).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		if path, err = config.Discover(); err != nil {
			if errors.Is(err, config.ErrNotFound) {
				fmt.Println("No config file found. Run 'cpexport config init' to create one.")
			}
			return err
		}
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			fmt.Printf("%d problem(s) found\n\n", configErr.Count())
			printConfigErrors(configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func printConfigErrors(e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Println("Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Printf("  - %s\n", m)
		}
		fmt.Println()
	}

	if len(e.Errors) > 0 {
		fmt.Println("Validation errors:")
		for _, err := range e.Errors {
			fmt.Printf("  - %s\n", err)
		}
		fmt.Println()
	}
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Printf("  Database:   %s\n", cfg.Database.Path)
	fmt.Printf("  Site:       %s\n", cfg.Site.URL)

	auth := "anonymous"
	if cfg.Site.Username != "" {
		auth = "application password (" + cfg.Site.Username + ")"
	}
	fmt.Printf("  Auth:       %s\n", auth)
	fmt.Printf("  Embed:      %t\n", cfg.Site.EmbedEnabled())

	if cfg.Site.RefreshInterval.Duration > 0 {
		fmt.Printf("  Refresh:    every %s\n", cfg.Site.RefreshInterval.Duration)
	}
	if len(cfg.Site.CustomTypes) > 0 {
		fmt.Print("  Custom:     ")
		for i, ct := range cfg.Site.CustomTypes {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(ct.RESTBase)
		}
		fmt.Println()
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	err := config.WriteDefault(path, force)
	if errors.Is(err, config.ErrExists) {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Set CPEXPORT_API_KEY and CPEXPORT_SITE_URL, then run 'cpexport config test'.")
	return nil
}
