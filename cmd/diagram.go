package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectronaut/spdrgb/diagram"
)

var diagramOut string

// diagramCmd represents the diagram command
var diagramCmd = &cobra.Command{
	Use:   "diagram <spectrum-file>",
	Short: "Render the CIE 1931 xy chromaticity diagram as a PNG",
	Long: `Converts the spectrum and renders the CIE 1931 xy
chromaticity diagram with the spectral locus and the spectrum's
chromaticity point marked.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conv := newConverter()
		res, e := conv.Convert(args[0])
		if e != nil {
			log.Fatal(e)
		}

		img := diagram.Render(conv.Table, res.Chromaticity, res.Defined, diagram.Options{
			Size:     viper.GetInt("diagram.size"),
			Quantize: viper.GetInt("diagram.quantize"),
		})
		if e := diagram.WritePNG(diagramOut, img); e != nil {
			log.Fatal(e)
		}
		fmt.Println("wrote", diagramOut)
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramOut, "out", "o", "chromaticity.png", "output PNG path")
	diagramCmd.Flags().Int("size", 800, "image width and height in pixels")
	diagramCmd.Flags().Int("quantize", 0, "reduce the image to this many colors (0 disables)")
	viper.BindPFlag("diagram.size", diagramCmd.Flags().Lookup("size"))
	viper.BindPFlag("diagram.quantize", diagramCmd.Flags().Lookup("quantize"))
}
