package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hallbook/internal/whatsapp"
)

func newWhatsAppCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatsapp",
		Short: "Manage the WhatsApp connection used for invitations and support",
	}

	login := &cobra.Command{
		Use:   "login",
		Short: "Pair this device by scanning a QR code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wa, err := whatsapp.NewService(cmd.Context(), whatsapp.Config{DataDir: a.cfg.WhatsApp.DataDir}, a.log)
			if err != nil {
				return err
			}
			defer wa.Disconnect()

			if wa.LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "Already paired.")
				return nil
			}
			if err := wa.Connect(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Connected to WhatsApp!")
			return nil
		},
	}

	cmd.AddCommand(login)
	return cmd
}
