package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/util"
)

type presetsOptions struct {
	match string
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the easing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.match, "match", "", "Report which preset a curve x1,y1,x2,y2 matches")
	return cmd
}

func runPresets(cmd *cobra.Command, opts *presetsOptions) error {
	out := cmd.OutOrStdout()
	if opts.match != "" {
		b, err := easing.ParseBezier(opts.match)
		if err != nil {
			return fmt.Errorf("--match: %w", err)
		}
		p, ok := easing.PresetAt(easing.MatchPreset(b))
		if !ok {
			fmt.Fprintln(out, "no preset matches")
			return nil
		}
		fmt.Fprintln(out, p.Name)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tBEZIER")
	for i, p := range easing.Presets() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, p.Name, util.FormatList(p.Bezier[:]...))
	}
	return tw.Flush()
}
