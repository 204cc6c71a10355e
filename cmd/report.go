package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
)

var reportOut string

const reportTemplate = `<!doctype html>
<html>
<head><title>spdrgb report: {{ source }}</title></head>
<body>
  <h1>{{ source }}</h1>
  <div style="width:160px;height:160px;background:{{ hex }};border:1px solid #444"></div>
  <table>
    <tr><td>sRGB</td><td>{{ r }} {{ g }} {{ b }}</td></tr>
    <tr><td>Hex</td><td>{{ hex }}</td></tr>
    <tr><td>XYZ</td><td>{{ xyz }}</td></tr>
    <tr><td>Chromaticity (x, y)</td><td>{{ xy }}</td></tr>
    <tr><td>Lab</td><td>{{ lab }}</td></tr>
  </table>
</body>
</html>
`

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <spectrum-file>",
	Short: "Write an HTML swatch report for a spectrum",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, e := newConverter().Convert(args[0])
		if e != nil {
			log.Fatal(e)
		}

		xy := "undefined"
		if res.Defined {
			xy = fmt.Sprintf("(%.4f, %.4f)", res.Chromaticity.X, res.Chromaticity.Y)
		}
		lab := toLab(res.XYZ)

		tpl := pongo2.Must(pongo2.FromString(reportTemplate))
		out, e := tpl.Execute(pongo2.Context{
			"source": args[0],
			"hex":    res.RGB.Hex(),
			"r":      res.RGB.R,
			"g":      res.RGB.G,
			"b":      res.RGB.B,
			"xyz":    fmt.Sprintf("%.6f %.6f %.6f", res.XYZ.X, res.XYZ.Y, res.XYZ.Z),
			"xy":     xy,
			"lab":    fmt.Sprintf("L=%.2f a=%.2f b=%.2f", lab.L(), lab.A(), lab.B()),
		})
		if e != nil {
			log.Fatal(e)
		}

		if e := os.WriteFile(reportOut, []byte(out), 0644); e != nil {
			log.Fatal(e)
		}
		fmt.Println("wrote", reportOut)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.html", "output HTML path")
}
