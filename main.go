// Command sneaky hides secret text inside ordinary carrier text. The
// secret travels as a stream of two marker runes, by default zero-width
// code points that render as nothing, scattered through the carrier
// without reordering either side.
package main

import (
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/config"
	"github.com/dtinel/sneaky/stegano"
	"github.com/dtinel/sneaky/util"
)

const version = "1.0.0"

// rootOptions holds the flags every verb shares.
type rootOptions struct {
	verbose    bool
	configPath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "sneaky",
		Short: "hide text inside text",
		Long: `sneaky conceals a secret text inside ordinary carrier text.

The secret is encoded as a stream of two marker runes, by default two
zero-width code points that render as nothing, and scattered through the
carrier without reordering either text. Anyone holding the marker pair can
extract the secret again; nobody skimming the output sees more than the
carrier. This is obscurity, not encryption.

Examples:
  sneaky example
  sneaky hide -t "meet at dawn" -c cover.txt -o innocent.txt
  sneaky reveal -i innocent.txt
  sneaky hide -s secret.txt -o out.txt --seed-phrase winter
  sneaky inspect -i innocent.txt`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetHandler(cli.Default)
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetVersionTemplate("{{ .Version }}\n")

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose log output")
	flags.StringVar(&opts.configPath, "config", "", "custom config file path (default ~/.sneaky/config.yaml)")

	root.AddCommand(
		newHideCommand(opts),
		newRevealCommand(opts),
		newExampleCommand(),
		newInspectCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// loadConfig resolves the effective configuration for one invocation. It
// never fails: an unreadable or absent file degrades to the built-in
// defaults with a note in the log.
func loadConfig(opts *rootOptions) *config.Config {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.WithError(err).Debug("no home directory, using built-in defaults")
			return config.Default()
		}
		path = p
	}
	log.Debugf("reading config file from %s", path)
	c, err := config.Load(path)
	if err != nil {
		log.WithError(err).Warnf("ignoring unreadable config %s", path)
		return config.Default()
	}
	return c
}

// markerPair resolves the marker runes for one invocation, flag values
// overriding the configured ones.
func markerPair(cfg *config.Config, zeroFlag, oneFlag string) (stegano.TokenPair, error) {
	zero, one := cfg.Zero, cfg.One
	if zeroFlag != "" {
		zero = zeroFlag
	}
	if oneFlag != "" {
		one = oneFlag
	}
	return (&config.Config{Zero: zero, One: one}).Tokens()
}

/*
resolveSeeds picks the carrier and mix seeds for one hide run, in order of
preference: explicit flags, the seed phrase from flag or config, the wall
clock. Clock seeding gives a fresh layout on every run; reproducing such a
run later needs the logged values, so they always go to the debug log.
*/
func resolveSeeds(cmd *cobra.Command, cfg *config.Config, phraseFlag string, carrierFlag, mixFlag int64) (carrierSeed, mixSeed int64) {
	phrase := phraseFlag
	if phrase == "" {
		phrase = cfg.SeedPhrase
	}
	if phrase != "" {
		carrierSeed = util.DeriveSeed(phrase, "carrier")
		mixSeed = util.DeriveSeed(phrase, "mix")
	} else {
		now := time.Now().UnixNano()
		carrierSeed, mixSeed = now, now
	}
	if cmd.Flags().Changed("carrier-seed") {
		carrierSeed = carrierFlag
	}
	if cmd.Flags().Changed("mix-seed") {
		mixSeed = mixFlag
	}
	log.Debugf("carrier seed %d, mix seed %d", carrierSeed, mixSeed)
	return carrierSeed, mixSeed
}

// carrierFactor returns the configured synthesis factor, falling back to
// the default when the config holds nothing usable.
func carrierFactor(cfg *config.Config) int {
	if cfg.CarrierFactor < 1 {
		return stegano.DefaultCarrierFactor
	}
	return cfg.CarrierFactor
}
