// SPDX-License-Identifier: MIT

// Command shapelab prints the geometry showcase report to stdout.
//
//	go run github.com/katalvlaran/shapelab/cmd/shapelab
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shapelab/showcase"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error().Err(err).Msg("shapelab failed")
		os.Exit(1)
	}
}

// newRootCmd builds the flagless root command running the showcase on the
// command's output stream.
func newRootCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "shapelab",
		Short:         "Print area, perimeter and centroid of a fixed set of shapes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showcase.Run(cmd.OutOrStdout(), log, showcase.DefaultOptions())
		},
	}
}
