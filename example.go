package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/stegano"
)

/*
The example verb is a self-contained demonstration: it hides a fixed
message behind visible markers so the scattering is plain to see, then
reveals it again. Seeds come from the clock; every run shows a different
layout of the same message.
*/
func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "demonstrate hiding and revealing with visible markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(cmd)
		},
	}
}

func runExample(cmd *cobra.Command) error {
	message := "this is a secret text"
	tokens := stegano.TokenPair{Zero: 'z', One: 'o'}
	seed := time.Now().UnixNano()

	mixed, err := stegano.HideSynthetic(message, tokens, seed, seed+1)
	if err != nil {
		return err
	}
	revealed, err := stegano.Reveal(mixed, tokens)
	if err != nil {
		return err
	}

	marker := color.New(color.FgRed, color.Bold)
	var pretty strings.Builder
	for _, r := range mixed {
		if r == tokens.Zero || r == tokens.One {
			pretty.WriteString(marker.Sprint(string(r)))
		} else {
			pretty.WriteRune(r)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Message:  %s\n", message)
	fmt.Fprintf(out, "Markers:  0 = %q, 1 = %q\n", tokens.Zero, tokens.One)
	fmt.Fprintf(out, "Seed:     %d\n\n", seed)
	fmt.Fprintf(out, "Hidden:\n%s\n\n", pretty.String())
	fmt.Fprintf(out, "Revealed: %s\n", revealed)
	return nil
}
