package main

import (
	"fmt"

	"SpudSRI/internal/calc/ncprime"

	"github.com/spf13/cobra"
)

func newNcCmd() *cobra.Command {
	var beta, alpha, embedment, gradient float64
	cmd := &cobra.Command{
		Use:   "nc",
		Short: "Look up the bearing capacity factor Nc' for a conical spudcan",
		Long: `Interpolate Nc' from the tabulated solutions. Inputs outside the tables
are clamped to the nearest edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nc := ncprime.Lookup(beta, alpha, embedment, gradient)
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", nc)
			return nil
		},
	}
	cmd.Flags().Float64Var(&beta, "beta", 90, "cone apex angle in degrees")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "roughness factor, 0 to 1")
	cmd.Flags().Float64Var(&embedment, "d2r", 0, "embedment ratio D/2R")
	cmd.Flags().Float64Var(&gradient, "grad", 0, "strength gradient ratio rho*2R/cum")
	return cmd
}
