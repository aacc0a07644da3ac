package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/pkg/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, initialize, or locate the configuration file",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as TOML",
		Long: `Show prints the effective configuration: the config file merged over the
documented defaults, with out-of-range values clamped. A missing file prints
the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			cmd.Println(styleDim.Render("# " + path))
			cmd.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file path (default: XDG config dir)")
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		cfgPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			cmd.Println("wrote " + styleValue.Render(path))
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file path (default: XDG config dir)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return configPath()
}
