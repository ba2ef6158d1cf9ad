package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.lepak.sg/letters/counter"
)

const demoText = "hola mundo"

var (
	headerColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	detailColor = color.New(color.FgHiBlack).SprintFunc()
)

func newRootCommand(version string) *cobra.Command {
	var verbose, noColor bool
	log := logrus.New()

	cmd := &cobra.Command{
		Use:   "letters",
		Short: "letters counts how often each letter occurs in a text.",
		Long: `letters tallies every letter (Unicode code point) of a text.
Without arguments it counts "` + demoText + `" twice, once incrementing
entries that default to zero and once with an explicit lookup,
and prints both results.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(log, cmd.ErrOrStderr(), verbose)
			if noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr.")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	cmd.AddCommand(newCountCommand(log))

	return cmd
}

func configureLogger(log *logrus.Logger, w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

// runDemo prints the demo text's frequencies under each strategy.
func runDemo(w io.Writer, log *logrus.Logger) error {
	for _, s := range []counter.Strategy{counter.DefaultOnMiss, counter.ExplicitLookup} {
		freq := s.Letters(demoText)

		log.WithFields(logrus.Fields{
			"strategy": s,
			"letters":  counter.Total(freq),
			"distinct": len(freq),
		}).Debug("counted letters")

		if _, err := fmt.Fprintln(w, freq); err != nil {
			return fmt.Errorf("writing demo result: %w", err)
		}
	}
	return nil
}
