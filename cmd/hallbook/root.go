package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hallbook",
		Short: "Function hall booking and wedding planning",
		Long: `HallBook lists function halls around Bandlaguda Jagir and Chandrayangutta
and keeps a wedding plan: budget, guest list, timeline, bookings and profile.

Run 'hallbook serve' for the JSON API or use the subcommands directly.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&a.format, "output", "o", "", "output format: table, json or yaml (default table on a terminal, json otherwise)")

	root.AddCommand(
		newServeCmd(a),
		newVenuesCmd(a),
		newServicesCmd(a),
		newGuestsCmd(a),
		newTimelineCmd(a),
		newBudgetCmd(a),
		newProfileCmd(a),
		newBookingsCmd(a),
		newTicketsCmd(a),
		newWhatsAppCmd(a),
	)
	return root
}
