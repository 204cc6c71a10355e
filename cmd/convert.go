package cmd

import (
	"fmt"
	"log"

	"github.com/jkl1337/go-chromath"
	"github.com/spf13/cobra"

	"github.com/spectronaut/spdrgb/colorspace"
	"github.com/spectronaut/spdrgb/pipeline"
)

// for XYZ-to-Lab conversion
var xyz2Lab = chromath.NewLabTransformer(&chromath.IlluminantRefD65)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <spectrum-file>",
	Short: "Print the sRGB color of a spectrum",
	Long: `Loads a two-column wavelength/intensity file, integrates it
against the CIE 1931 color-matching functions and prints the resulting
sRGB color together with the XYZ, xy and Lab coordinates.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, e := newConverter().Convert(args[0])
		if e != nil {
			log.Fatal(e)
		}
		printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func printResult(res pipeline.Result) {
	fmt.Printf("\033[38;2;%d;%d;%dm██████\033[0m %s\n",
		res.RGB.R, res.RGB.G, res.RGB.B, res.RGB.Hex())
	fmt.Printf("RGB (0-255): %d %d %d\n", res.RGB.R, res.RGB.G, res.RGB.B)
	fmt.Printf("XYZ: %.6f %.6f %.6f\n", res.XYZ.X, res.XYZ.Y, res.XYZ.Z)

	if !res.Defined {
		fmt.Println("Chromaticity (x, y): undefined (zero tristimulus)")
		return
	}
	fmt.Printf("Chromaticity (x, y): (%.4f, %.4f)\n",
		res.Chromaticity.X, res.Chromaticity.Y)

	lab := toLab(res.XYZ)
	fmt.Printf("Lab: L=%.2f a=%.2f b=%.2f\n", lab.L(), lab.A(), lab.B())
}

// toLab converts the raw tristimulus values to CIE Lab, scaled so the
// spectrum's luminance maps to Y=1.
func toLab(c colorspace.XYZ) chromath.Lab {
	x, y, z := c.X, c.Y, c.Z
	if c.Y > 0 {
		x, y, z = x/c.Y, 1, z/c.Y
	}
	return xyz2Lab.Invert(chromath.XYZ{x, y, z})
}
