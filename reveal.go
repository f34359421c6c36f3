package main

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/stegano"
	"github.com/dtinel/sneaky/util"
)

type revealOptions struct {
	inPath     string
	outPath    string
	zero       string
	one        string
	decompress bool
}

func newRevealCommand(root *rootOptions) *cobra.Command {
	opt := &revealOptions{}
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "extract a hidden secret from mixed text",
		Long: `Reveal filters the marker runes out of a mixed text and decodes the
secret they carry. The marker pair must match the one used to hide; with
the wrong pair the result is an error or garbage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReveal(root, opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.inPath, "in", "i", util.Stdio, "mixed text file, \"-\" for stdin")
	flags.StringVarP(&opt.outPath, "out", "o", util.Stdio, "output file, \"-\" for stdout")
	flags.StringVar(&opt.zero, "zero", "", "marker rune for 0, a literal or U+XXXX escape")
	flags.StringVar(&opt.one, "one", "", "marker rune for 1")
	flags.BoolVarP(&opt.decompress, "decompress", "z", false, "gunzip the secret after extraction")
	return cmd
}

func runReveal(root *rootOptions, opt *revealOptions) error {
	cfg := loadConfig(root)
	tokens, err := markerPair(cfg, opt.zero, opt.one)
	if err != nil {
		return err
	}
	mixed, err := util.ReadText(opt.inPath)
	if err != nil {
		return err
	}
	if tokens.Count(mixed) == 0 {
		log.Warnf("no marker runes in %s; nothing is hidden there, or the pair is wrong", opt.inPath)
	}

	if opt.decompress || cfg.Compress {
		payload, err := stegano.RevealBytes(mixed, tokens)
		if err != nil {
			return err
		}
		secret, err := util.Decompress(payload)
		if err != nil {
			return err
		}
		log.Debugf("revealed %d bytes (%d compressed)", len(secret), len(payload))
		return util.WriteBytes(opt.outPath, secret)
	}

	secret, err := stegano.Reveal(mixed, tokens)
	if err != nil {
		return err
	}
	return util.WriteText(opt.outPath, secret)
}
