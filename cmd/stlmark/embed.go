package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/stlmark/internal/logger"
	"github.com/philipparndt/stlmark/pkg/permcodec"
	"github.com/philipparndt/stlmark/pkg/stego"
	"github.com/philipparndt/stlmark/pkg/stl"
)

var (
	embedMessage string
	embedOutput  string
)

var embedCmd = &cobra.Command{
	Use:   "embed [file]",
	Short: "Embed a bit string into an STL file's facet order",
	Long: `Re-emit the solid with its facets permuted so that the permutation carries
the given message. Geometry is untouched. Without --output the stego file
is written next to the input with the configured suffix.`,
	Args: cobra.ExactArgs(1),
	Run:  runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedMessage, "message", "m", "", "Message as a string of 0s and 1s")
	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "Output file (default: input with suffix)")
	embedCmd.MarkFlagRequired("message")
}

func runEmbed(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	mesh := stego.Wrap(model)
	n := model.FacetCount()
	logger.Log.Debug("cover parsed",
		zap.String("file", filename),
		zap.Int("facets", n),
		zap.Int("capacity", mesh.Capacity()))

	if len(embedMessage) > permcodec.GuaranteedCapacity(n) {
		logger.Log.Warn("message exceeds guaranteed capacity; round trip depends on bit pattern",
			zap.Int("bits", len(embedMessage)),
			zap.Int("guaranteed", permcodec.GuaranteedCapacity(n)))
	}

	ord, err := mesh.Embed(embedMessage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error embedding message: %v\n", err)
		os.Exit(1)
	}

	output := embedOutput
	if output == "" {
		output = defaultOutputPath(filename, cfg.Output.Suffix)
	}

	if err := model.WriteFile(output, ord); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing stego file: %v\n", err)
		os.Exit(1)
	}

	logger.Log.Info("stego file written",
		zap.String("file", output),
		zap.Int("bits", len(embedMessage)))
	fmt.Printf("Embedded %d bits into %s\n", len(embedMessage), output)
}

// defaultOutputPath inserts the suffix before the extension:
// cube.stl -> cube_.stl
func defaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
