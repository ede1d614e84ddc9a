package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/stlmark/internal/logger"
	"github.com/philipparndt/stlmark/pkg/stego"
	"github.com/philipparndt/stlmark/pkg/stl"
)

var extractLength int

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the embedded bit string from a stego STL file",
	Long: `Derive the canonical reference order from the stego file's own geometry and
decode the order its facets were written in. The tail of the output is
padding and filler; pass --length to truncate to the expected message size.`,
	Args: cobra.ExactArgs(1),
	Run:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntVarP(&extractLength, "length", "n", 0, "Expected message length in bits (0 = print everything)")
}

func runExtract(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	ref, err := stego.Wrap(model).Reference()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deriving reference order: %v\n", err)
		os.Exit(1)
	}

	bits, err := stego.Extract(ref, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting message: %v\n", err)
		os.Exit(1)
	}

	logger.Log.Debug("extracted raw bits",
		zap.String("file", filename),
		zap.Int("bits", len(bits)))

	if extractLength > 0 && extractLength < len(bits) {
		bits = bits[:extractLength]
	}
	fmt.Println(bits)
}
