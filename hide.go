package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/config"
	"github.com/dtinel/sneaky/stegano"
	"github.com/dtinel/sneaky/util"
)

type hideOptions struct {
	secretPath  string
	secretText  string
	carrierPath string
	outPath     string
	zero        string
	one         string
	carrierSeed int64
	mixSeed     int64
	seedPhrase  string
	compress    bool
	grow        bool
}

func newHideCommand(root *rootOptions) *cobra.Command {
	opt := &hideOptions{}
	cmd := &cobra.Command{
		Use:   "hide",
		Short: "conceal a secret inside carrier text",
		Long: `Hide encodes a secret as marker runes and scatters them through carrier
text. Without --carrier the carrier is synthesized from the configured
alphabet. The output looks like the carrier; reveal it again with the same
marker pair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHide(cmd, root, opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.secretPath, "secret", "s", "", "file holding the secret, \"-\" for stdin")
	flags.StringVarP(&opt.secretText, "text", "t", "", "secret given directly on the command line")
	flags.StringVarP(&opt.carrierPath, "carrier", "c", "", "carrier text file, omitted means a synthesized carrier")
	flags.StringVarP(&opt.outPath, "out", "o", util.Stdio, "output file, \"-\" for stdout")
	flags.StringVar(&opt.zero, "zero", "", "marker rune for 0, a literal or U+XXXX escape")
	flags.StringVar(&opt.one, "one", "", "marker rune for 1")
	flags.Int64Var(&opt.carrierSeed, "carrier-seed", 0, "seed for carrier synthesis")
	flags.Int64Var(&opt.mixSeed, "mix-seed", 0, "seed for the scatter pattern")
	flags.StringVar(&opt.seedPhrase, "seed-phrase", "", "derive both seeds from a passphrase")
	flags.BoolVarP(&opt.compress, "compress", "z", false, "gzip the secret before hiding")
	flags.BoolVar(&opt.grow, "grow", false, "pad a too-small carrier with synthesized filler")
	cmd.MarkFlagsMutuallyExclusive("secret", "text")
	return cmd
}

func runHide(cmd *cobra.Command, root *rootOptions, opt *hideOptions) error {
	cfg := loadConfig(root)
	tokens, err := markerPair(cfg, opt.zero, opt.one)
	if err != nil {
		return err
	}
	if opt.compress || cfg.Compress {
		return runHideBytes(cmd, opt, cfg, tokens)
	}

	secret, err := readSecretText(cmd, opt)
	if err != nil {
		return err
	}
	carrierSeed, mixSeed := resolveSeeds(cmd, cfg, opt.seedPhrase, opt.carrierSeed, opt.mixSeed)

	units := utf8.RuneCountInString(secret)
	carrier, err := resolveCarrier(opt, cfg, tokens, units, carrierSeed)
	if err != nil {
		return err
	}
	mixed, err := stegano.Hide(secret, carrier, tokens, mixSeed)
	if err != nil {
		return err
	}
	if err := util.WriteText(opt.outPath, mixed); err != nil {
		return err
	}
	log.Infof("hid %d runes inside %d runes of output", units, utf8.RuneCountInString(mixed))
	return nil
}

// runHideBytes is the compressed variant: the secret travels as gzipped
// bytes instead of runes, so arbitrary binary secrets work too.
func runHideBytes(cmd *cobra.Command, opt *hideOptions, cfg *config.Config, tokens stegano.TokenPair) error {
	secret, err := readSecretBytes(cmd, opt)
	if err != nil {
		return err
	}
	payload, err := util.Compress(secret)
	if err != nil {
		return err
	}
	carrierSeed, mixSeed := resolveSeeds(cmd, cfg, opt.seedPhrase, opt.carrierSeed, opt.mixSeed)

	carrier, err := resolveCarrier(opt, cfg, tokens, len(payload), carrierSeed)
	if err != nil {
		return err
	}
	mixed, err := stegano.HideBytes(payload, carrier, tokens, mixSeed)
	if err != nil {
		return err
	}
	if err := util.WriteText(opt.outPath, mixed); err != nil {
		return err
	}
	log.Infof("hid %d bytes (%d compressed) inside %d runes of output",
		len(secret), len(payload), utf8.RuneCountInString(mixed))
	return nil
}

// readSecretText loads the secret for the plain-text path. An empty
// --text value is a legal, if pointless, secret.
func readSecretText(cmd *cobra.Command, opt *hideOptions) (string, error) {
	if cmd.Flags().Changed("text") {
		return opt.secretText, nil
	}
	if opt.secretPath == "" {
		return "", fmt.Errorf("nothing to hide: pass --secret or --text")
	}
	return util.ReadText(opt.secretPath)
}

func readSecretBytes(cmd *cobra.Command, opt *hideOptions) ([]byte, error) {
	if cmd.Flags().Changed("text") {
		return []byte(opt.secretText), nil
	}
	if opt.secretPath == "" {
		return nil, fmt.Errorf("nothing to hide: pass --secret or --text")
	}
	return util.ReadBytes(opt.secretPath)
}

/*
resolveCarrier produces the carrier for one hide run. Without --carrier it
synthesizes factor runes of alphabet per secret token. With a real carrier
file it enforces the two preconditions extraction depends on: the carrier
must be free of marker runes, and it should hold at least one rune per
secret token so the markers stay scattered rather than clumped. The second
is fixable with --grow, which pads the carrier with synthesized filler.
*/
func resolveCarrier(opt *hideOptions, cfg *config.Config, tokens stegano.TokenPair, units int, carrierSeed int64) (string, error) {
	need := units * stegano.BitsPerUnit
	if opt.carrierPath == "" {
		n := carrierFactor(cfg) * need
		log.Debugf("synthesizing %d carrier runes", n)
		return stegano.Synthesizer{Alphabet: cfg.AlphabetRunes()}.Generate(n, tokens, carrierSeed)
	}

	carrier, err := util.ReadText(opt.carrierPath)
	if err != nil {
		return "", err
	}
	if n := tokens.Count(carrier); n > 0 {
		return "", fmt.Errorf("carrier %s already holds %d marker rune(s); hiding into it would corrupt the secret",
			opt.carrierPath, n)
	}
	have := utf8.RuneCountInString(carrier)
	if have >= need {
		return carrier, nil
	}
	if !opt.grow {
		return "", fmt.Errorf("carrier %s holds %d runes but the secret needs %d tokens; use --grow or a longer carrier",
			opt.carrierPath, have, need)
	}
	log.Debugf("growing carrier from %d to %d runes", have, need)
	return stegano.GrowCarrier(carrier, tokens, need, cfg.AlphabetRunes(), carrierSeed)
}
