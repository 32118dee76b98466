package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/nowbar/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the nowbar configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration as JSON, after defaults, the
config file, and NOWBAR_* environment variables have been merged.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		manager, err := config.NewManager()
		if err != nil {
			return fmt.Errorf("initialize config: %w", err)
		}
		if err := manager.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		data, err := json.MarshalIndent(manager.Get(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema for the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.EnsureDirectories(); err != nil {
			return err
		}
		if err := config.GenerateSchemaFile(); err != nil {
			return err
		}

		configDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		fmt.Printf("Generated JSON schema: %s\n", filepath.Join(configDir, "config.schema.json"))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(_ *cobra.Command, _ []string) error {
		configDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		fmt.Println(filepath.Join(configDir, "config.toml"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
