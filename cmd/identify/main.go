// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// identify is a thin command-line caller for the identifiers engine: it parses
// each input, prints the recognized kind and the normalized forms, and does
// nothing else. All recognition logic lives in pkg/identifiers.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pardalotus/scholarly-identifiers/pkg/identifiers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var format = flag.String("format", "text", "Output format [text, json]")

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	white  = color.New(color.FgWhite).SprintFunc()
)

// result is the JSON rendering of one parsed input.
type result struct {
	Input   string `json:"input"`
	Kind    string `json:"kind"`
	KindTag int    `json:"kind_tag"`
	Stable  string `json:"stable"`
	URI     string `json:"uri,omitempty"`
}

func makeResult(input string) result {
	id := identifiers.Parse(input)
	stable, tag := id.KindTagged()
	r := result{
		Input:   input,
		Kind:    id.Kind().String(),
		KindTag: int(tag),
		Stable:  stable,
	}
	if uri, ok := id.URI(); ok {
		r.URI = uri
	}
	return r
}

var rootCmd = &cobra.Command{
	Use:   "identify [-format=text|json] <identifier>...",
	Short: "Recognize and normalize scholarly identifiers.",
	Long: `Recognize and normalize scholarly identifiers (DOI, ORCID, ROR, ISBN) and
generic URIs. Inputs are read from the arguments, or from stdin one per line
when no arguments are given. Unrecognized inputs are reported with kind
"string" rather than rejected.`,
	// Silence errors because we will print the error ourselves in main.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := args
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading stdin")
			}
		}
		out := cmd.OutOrStdout()
		switch *format {
		case "json":
			e := json.NewEncoder(out)
			for _, input := range inputs {
				if err := e.Encode(makeResult(input)); err != nil {
					return errors.Wrap(err, "encoding result")
				}
			}
		case "text":
			for _, input := range inputs {
				r := makeResult(input)
				fmt.Fprintln(out, green(r.Kind), white(fmt.Sprintf("[%d]", r.KindTag)), r.Stable)
				if r.URI != "" && r.URI != r.Stable {
					fmt.Fprintln(out, yellow("  uri:"), r.URI)
				}
			}
		default:
			return errors.Errorf("unknown format: %q", *format)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().AddGoFlag(flag.Lookup("format"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
