package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfig = `# fujirecipes configuration

[database]
path = "~/.local/share/fujirecipes/recipes.db"

[classifier]
# Optional LLM parameter extraction. When disabled (or when no API key is
# available) free-text input is parsed with the built-in keyword rules.
enabled = false
base_url = "https://api.openai.com/v1"
model = "gpt-4o-mini"
timeout_sec = 10

[recommend]
max_results = 3

[mcp]
enabled = true
transport = "stdio"
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}

		configDir := filepath.Join(home, ".config", "fujirecipes")
		dataDir := filepath.Join(home, ".local", "share", "fujirecipes")

		for _, dir := range []string{configDir, dataDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}

		configFile := filepath.Join(configDir, "config.toml")
		if _, err := os.Stat(configFile); err == nil {
			fmt.Printf("Config file already exists: %s\n", configFile)
			return nil
		}

		if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("Created config file: %s\n", configFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("No config file at %s\n", configPath)
				fmt.Println("Run 'fujirecipes config init' to create one.")
				return nil
			}
			return fmt.Errorf("failed to read config file: %w", err)
		}

		fmt.Printf("# %s\n\n%s", configPath, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
