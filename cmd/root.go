package cmd

import (
	"fmt"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectronaut/spdrgb/cmf"
	"github.com/spectronaut/spdrgb/pipeline"
	"github.com/spectronaut/spdrgb/spectrum"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spdrgb",
	Short: "Convert a spectral power distribution to an sRGB color",
	Long: `spdrgb converts a measured or simulated emission spectrum
(two-column wavelength/intensity text, comma, tab or whitespace
delimited) into a displayable sRGB color via the CIE 1931 2° standard
observer.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spdrgb.yaml)")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on the first malformed spectrum row instead of skipping it")
	rootCmd.PersistentFlags().String("cmf", "", "observer table CSV (default is the bundled CIE 1931 2° table)")
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("cmf", rootCmd.PersistentFlags().Lookup("cmf"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			fmt.Println(e)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".spdrgb")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func policy() spectrum.Policy {
	if viper.GetBool("strict") {
		return spectrum.Strict
	}
	return spectrum.Lenient
}

// newConverter loads the observer table and builds the conversion
// pipeline shared by all commands.
func newConverter() *pipeline.Converter {
	var (
		t *cmf.Table
		e error
	)
	if p := viper.GetString("cmf"); p != "" {
		t, e = cmf.LoadFile(p)
	} else {
		t, e = cmf.Load()
	}
	if e != nil {
		log.Fatal(e)
	}

	return pipeline.New(t, policy())
}
