package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.lepak.sg/letters/counter"
)

var (
	errInvalidOutput = errors.New("invalid output format")
	errNegativeLimit = errors.New("limit must not be negative")
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatYAML  outputFormat = "yaml"
	formatPlain outputFormat = "plain"
)

func (o *outputFormat) String() string {
	return string(*o)
}

func (o *outputFormat) Set(v string) error {
	switch f := outputFormat(v); f {
	case formatTable, formatYAML, formatPlain:
		*o = f
		return nil
	}
	return fmt.Errorf("%w: %q (want table, yaml or plain)", errInvalidOutput, v)
}

func (o *outputFormat) Type() string {
	return "format"
}

// newCountCommand creates the 'count' subcommand.
func newCountCommand(log *logrus.Logger) *cobra.Command {
	var (
		strategy    counter.Strategy
		top, bottom int
		output      = formatTable
	)

	cmd := &cobra.Command{
		Use:   "count [TEXT...]",
		Short: "Count the letters of TEXT.",
		Long: `Counts every letter of TEXT, with multiple arguments joined by single spaces.
Letters are compared by code point, so case and accents matter.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			freq := strategy.Letters(text)

			log.WithFields(logrus.Fields{
				"strategy": strategy,
				"letters":  counter.Total(freq),
				"distinct": len(freq),
			}).Debug("counted letters")

			entries, err := selectEntries(log, freq, top, bottom)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, text, strategy, entries, counter.Total(freq))
		},
	}

	flags := cmd.Flags()
	flags.VarP(&strategy, "strategy", "s", "Counting strategy: default or lookup.")
	flags.IntVarP(&top, "top", "t", 0, "Only show the N most frequent letters (0 shows all).")
	flags.IntVarP(&bottom, "bottom", "b", 0, "Only show the N least frequent letters (0 shows all).")
	flags.VarP(&output, "output", "o", "Output format: table, yaml or plain.")
	cmd.MarkFlagsMutuallyExclusive("top", "bottom")

	return cmd
}

// selectEntries ranks freq, keeping the top or bottom n entries if asked.
// A limit above the number of distinct letters shows all of them.
func selectEntries(
	log *logrus.Logger, freq counter.Frequencies, top, bottom int,
) ([]counter.Entry[rune], error) {
	if top < 0 || bottom < 0 {
		return nil, fmt.Errorf("%w: top=%d bottom=%d", errNegativeLimit, top, bottom)
	}

	clamp := func(n int) int {
		if n > len(freq) {
			log.WithFields(logrus.Fields{
				"limit":    n,
				"distinct": len(freq),
			}).Warn("limit exceeds distinct letters, showing all")
			return len(freq)
		}
		return n
	}

	switch {
	case top > 0:
		return counter.TopK(freq, clamp(top)), nil
	case bottom > 0:
		return counter.BottomK(freq, clamp(bottom)), nil
	}
	return counter.Ranked(freq), nil
}

func render(
	w io.Writer,
	output outputFormat,
	text string,
	strategy counter.Strategy,
	entries []counter.Entry[rune],
	total int,
) error {
	switch output {
	case formatYAML:
		out := make(map[string]int, len(entries))
		for _, e := range entries {
			out[string(e.Element)] = e.Count
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode frequencies as yaml: %w", err)
		}
		return enc.Close()

	case formatPlain:
		freq := make(counter.Frequencies, len(entries))
		for _, e := range entries {
			freq[e.Element] = e.Count
		}
		_, err := fmt.Fprintln(w, freq)
		return err
	}

	fmt.Fprintln(w, headerColor(fmt.Sprintf("Letter frequencies of %q", text)))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Letter", "Count"})
	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, e := range entries {
		table.Append([]string{strconv.QuoteRune(e.Element), strconv.Itoa(e.Count)})
	}
	table.Render()

	fmt.Fprintln(w, detailColor(fmt.Sprintf("(strategy: %s, %d shown)", strategy, len(entries))))
	return nil
}
