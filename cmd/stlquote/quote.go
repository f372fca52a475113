package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/stlquote/internal/app"
	"github.com/philipparndt/stlquote/pkg/analysis"
	"github.com/philipparndt/stlquote/pkg/pricing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

var (
	_ pflag.Value = (*pricing.Channel)(nil)
	_ pflag.Value = (*pricing.Tier)(nil)
)

var (
	selection = pricing.DefaultSelection()
	quoteJSON bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote [file]",
	Short: "Estimate the weight and price of printing a model",
	Long: `Estimate the printed weight of an STL or OBJ model and price it.

The price is the base fee plus weight times the rate for the order channel
(walk-in, online) and requester tier (student, faculty, general), multiplied
by the quantity.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

// addSelectionFlags registers the pricing selection flags on cmd
func addSelectionFlags(flags *pflag.FlagSet) {
	flags.Var(&selection.Channel, "channel", "Order channel: walk-in or online")
	flags.Var(&selection.Tier, "tier", "Requester tier: student, faculty or general")
	flags.Uint8VarP(&selection.InfillPercent, "infill", "i", selection.InfillPercent, "Infill percentage (0-100)")
	flags.IntVarP(&selection.Quantity, "quantity", "q", selection.Quantity, "Number of prints (1-99)")
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	addSelectionFlags(quoteCmd.Flags())
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "Print the quote as JSON")
}

func runQuote(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	if err := session.SetSelection(selection); err != nil {
		return err
	}

	model, err := session.LoadFile(args[0])
	if err != nil {
		return err
	}

	quote, err := session.Quote()
	if err != nil {
		return err
	}

	if quoteJSON {
		return printQuoteJSON(model, quote)
	}
	printQuote(model, session.Selection(), quote)
	return nil
}

// quoteReport is the JSON shape of a quote; prices are not rounded
type quoteReport struct {
	File               string     `json:"file"`
	Format             string     `json:"format"`
	Triangles          int        `json:"triangles"`
	VolumeMm3          float64    `json:"volume_mm3"`
	BoundsMin          [3]float64 `json:"bounds_min"`
	BoundsMax          [3]float64 `json:"bounds_max"`
	EstimatedMassGrams float64    `json:"estimated_mass_grams"`
	UnitRate           float64    `json:"unit_rate"`
	BaseFee            float64    `json:"base_fee"`
	UnitPrice          float64    `json:"unit_price"`
	Quantity           int        `json:"quantity"`
	TotalPrice         float64    `json:"total_price"`
}

func printQuoteJSON(model *app.LoadedModel, q pricing.Quote) error {
	b := model.Mesh.Bounds
	report := quoteReport{
		File:               model.Path,
		Format:             model.Format.String(),
		Triangles:          model.Mesh.TriangleCount,
		VolumeMm3:          model.Mesh.Volume,
		BoundsMin:          [3]float64{b.Min.X, b.Min.Y, b.Min.Z},
		BoundsMax:          [3]float64{b.Max.X, b.Max.Y, b.Max.Z},
		EstimatedMassGrams: q.EstimatedMassGrams,
		UnitRate:           q.UnitRate,
		BaseFee:            q.BaseFee,
		UnitPrice:          q.UnitPrice,
		Quantity:           q.Quantity,
		TotalPrice:         q.TotalPrice,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printQuote(model *app.LoadedModel, sel pricing.Selection, q pricing.Quote) {
	result := analysis.AnalyzeMesh(model.Mesh)
	f := analysis.NewFormatter(language.AmericanEnglish)

	fmt.Printf("Quote for %s\n", model.Path)
	fmt.Println("====================")
	fmt.Printf("%-18s %s\n", "Dimensions", f.FormatDimensions(result.Dimensions))
	fmt.Printf("%-18s %s\n", "Volume", f.FormatVolume(result.VolumeMm3))
	fmt.Printf("%-18s %s\n\n", "Triangles", f.FormatTriangles(result.TriangleCount))

	for _, line := range f.QuoteLines(sel, q) {
		fmt.Printf("%-18s %s\n", line[0], line[1])
	}
}
