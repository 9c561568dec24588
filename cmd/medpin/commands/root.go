package commands

import (
	"fmt"
	"os"

	"medpin/internal/config"
	"medpin/internal/ingest"
	"medpin/internal/logging"
	"medpin/internal/render"
	"medpin/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose   bool
	inputPath string
	cfg       *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "medpin [sample ...]",
	Short: "Medpin computes the median of a dataset and pins it to its source samples",
	Long: `Medpin finds the median of a numeric dataset and reports which original
positions contributed to it: one sample for odd-sized datasets, two for
even-sized ones. Samples come from arguments, --input, or stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("medpin starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := loadDataset(args)
		if err != nil {
			return err
		}

		result := stats.Median(values)
		log.Debug().
			Int("samples", len(values)).
			Float64("median", result.Median).
			Ints("indices", result.Indices).
			Msg("Median computed")

		fmt.Fprintln(cmd.OutOrStdout(), render.Report(values, result, cfg.Precision))
		return nil
	},
}

func loadDataset(args []string) ([]float64, error) {
	switch {
	case inputPath != "":
		return ingest.File(inputPath)
	case len(args) > 0:
		return ingest.Args(args)
	default:
		return ingest.Reader(os.Stdin)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the dataset from a file instead of arguments")
}
