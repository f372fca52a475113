package main

import (
	"fmt"

	"github.com/philipparndt/stlquote/pkg/analysis"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the measurements of a model file",
	Long:  "Show the detected format, triangle count, bounding box, dimensions and enclosed volume of an STL or OBJ file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	model, err := session.LoadFile(args[0])
	if err != nil {
		return err
	}

	result := analysis.AnalyzeMesh(model.Mesh)
	f := analysis.NewFormatter(language.AmericanEnglish)

	fmt.Println("Model Information")
	fmt.Println("=================")
	fmt.Printf("File: %s\n", model.Path)
	fmt.Printf("Format: %s\n\n", model.Format)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %s\n", f.FormatTriangles(result.TriangleCount))
	fmt.Printf("  Volume: %s (%.3f mm³)\n\n", f.FormatVolume(result.VolumeMm3), result.VolumeMm3)

	if result.TriangleCount > 0 {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))
	}

	fmt.Println("Dimensions:")
	fmt.Printf("  %s\n", f.FormatDimensions(result.Dimensions))
	return nil
}
