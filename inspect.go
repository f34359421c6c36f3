package main

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/stegano"
	"github.com/dtinel/sneaky/util"
)

type inspectOptions struct {
	inPath string
	zero   string
	one    string
}

func newInspectCommand(root *rootOptions) *cobra.Command {
	opt := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "report how marker runes sit inside a text",
		Long: `Inspect counts the marker runes in a text, checks that they add up to
whole 8-bit units, and summarizes the plain-text gaps between them. Large
even gaps mean an inconspicuous embedding; a ragged marker count means the
pair is wrong or the text was damaged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.inPath, "in", "i", util.Stdio, "text to inspect, \"-\" for stdin")
	flags.StringVar(&opt.zero, "zero", "", "marker rune for 0, a literal or U+XXXX escape")
	flags.StringVar(&opt.one, "one", "", "marker rune for 1")
	return cmd
}

func runInspect(cmd *cobra.Command, root *rootOptions, opt *inspectOptions) error {
	cfg := loadConfig(root)
	tokens, err := markerPair(cfg, opt.zero, opt.one)
	if err != nil {
		return err
	}
	text, err := util.ReadText(opt.inPath)
	if err != nil {
		return err
	}
	rep := stegano.Inspect(text, tokens)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Runes:     %d\n", rep.Runes)
	fmt.Fprintf(out, "Markers:   %d (%d zero, %d one)\n", rep.Markers, rep.Zeros, rep.Ones)
	fmt.Fprintf(out, "Capacity:  %d bytes\n", stegano.Capacity(text))
	if rep.Markers == 0 {
		fmt.Fprintln(out, "No markers found.")
		return nil
	}
	if rep.WholeUnits {
		fmt.Fprintf(out, "Payload:   %d bytes\n", rep.Payload)
	} else {
		log.Warnf("marker count %d is not a whole number of 8-bit units; wrong pair or damaged text", rep.Markers)
	}
	if rep.Gaps.Count > 0 {
		fmt.Fprintf(out, "Gaps:      %d runs, min %d, median %.1f, mean %.1f, max %d, stddev %.1f\n",
			rep.Gaps.Count, rep.Gaps.Min, rep.Gaps.Median, rep.Gaps.Mean, rep.Gaps.Max, rep.Gaps.StdDev)
	}
	return nil
}
