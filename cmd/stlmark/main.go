package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/stlmark/internal/config"
	"github.com/philipparndt/stlmark/internal/logger"
	"github.com/philipparndt/stlmark/version"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stlmark",
	Short: "Hide and recover bit strings in the facet order of ASCII STL files",
	Long: `stlmark embeds a message into an STL solid without touching its geometry:
the bits are carried purely by the order in which facet blocks are written.
The shared baseline is derived from the mesh itself, so extraction needs
nothing but the stego file.`,
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./stlmark.yaml)")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
