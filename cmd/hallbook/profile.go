package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"hallbook/internal/models"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderProfile(cmd, ctrl.Profile.Profile(cmd.Context()))
		},
	}

	var name, phone, email, image string
	set := &cobra.Command{
		Use:   "set",
		Short: "Edit profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var changes models.ProfileChanges
			flags := cmd.Flags()
			if flags.Changed("name") {
				changes.Name = &name
			}
			if flags.Changed("phone") {
				changes.Phone = &phone
			}
			if flags.Changed("email") {
				changes.Email = &email
			}
			if flags.Changed("image") {
				changes.ProfileImage = &image
			}

			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			ctrl.Profile.BeginEdit(cmd.Context())
			if _, ok := ctrl.Profile.Stage(changes); !ok {
				return errors.New("profile edit was not started")
			}
			profile, ok := ctrl.Profile.Commit(cmd.Context())
			if !ok {
				return errors.New("profile not saved")
			}
			return a.renderProfile(cmd, profile)
		},
	}
	set.Flags().StringVar(&name, "name", "", "display name")
	set.Flags().StringVar(&phone, "phone", "", "phone number")
	set.Flags().StringVar(&email, "email", "", "email address")
	set.Flags().StringVar(&image, "image", "", "profile image URL")

	cmd.AddCommand(set)
	return cmd
}

func (a *app) renderProfile(cmd *cobra.Command, p models.UserProfile) error {
	t := table{headers: []string{"Field", "Value"}}
	t.add("ID", p.ID)
	t.add("Name", p.Name)
	t.add("Phone", p.Phone)
	t.add("Email", p.Email)
	t.add("Bookings", strings.Join(p.Bookings, ", "))
	return a.render(cmd.OutOrStdout(), t, p)
}
