package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/stlmark/pkg/permcodec"
	"github.com/philipparndt/stlmark/pkg/stl"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [file]",
	Short: "Report the embedding capacity of an STL file",
	Long: `Print how many message bits the facet order of the given solid can carry.
The guaranteed figure is the length that survives the round trip for any
bit pattern; the maximum is floor(log2(n!)) for n facets.`,
	Args: cobra.ExactArgs(1),
	Run:  runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	n := model.FacetCount()
	fmt.Printf("Facets: %d\n", n)
	fmt.Printf("Maximum capacity: %d bits\n", permcodec.Capacity(n))
	fmt.Printf("Guaranteed capacity: %d bits\n", permcodec.GuaranteedCapacity(n))
}
