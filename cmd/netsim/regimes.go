// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/netsim/builder"
	"github.com/spf13/cobra"
)

func newRegimesCommand() *cobra.Command {
	var nodes []int
	cmd := &cobra.Command{
		Use:   "regimes",
		Short: "Print the edge probability of every Erdős–Rényi regime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "N\tREGIME\tP\t<K>")
			for _, n := range nodes {
				for _, r := range builder.AllRegimes() {
					p, err := builder.RegimeToProbability(r, n)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%d\t%s\t%.6g\t%.4g\n", n, r, p, p*float64(n-1))
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntSliceVarP(&nodes, "nodes", "n", []int{500, 1000, 5000}, "Node counts")
	return cmd
}
