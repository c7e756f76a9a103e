// Command spudcli runs spudcan penetration analyses from YAML case files.
package main

import (
	"os"

	"SpudSRI/internal/log"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:   "spudcli",
		Short: "Spudcan penetration analysis",
		Long: `Predict jack-up spudcan penetration in a layered seabed.

A case file is YAML with either a catalog rig name or an inline spudcan,
the soil layers and optional settings:

  spudcan:
    rig_name: jackup-1
    diameter_m: 8
    area_m2: 50
    tip_offset_m: 1.5
    preload_mn: 20
  settings:
    dz: 0.25
    max_depth: 30
  layers:
    - name: soft clay
      soil_type: clay
      z_top: 0
      z_bot: 30
      gamma: [{z: 0, v: 8}, {z: 30, v: 8}]
      su: [{z: 0, v: 20}, {z: 30, v: 60}]`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	root.AddCommand(newRunCmd(), newImportCmd(), newNcCmd(), newHashCmd())
	return root
}

func main() {
	err := newRootCmd().Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
