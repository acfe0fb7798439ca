package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hallbook/internal/handler"
	"hallbook/internal/models"
)

func newGuestsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Manage the wedding guest list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderGuests(cmd, ctrl.Guests.List(cmd.Context()))
		},
	}

	var in models.NewGuest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a guest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			guest, ok := ctrl.Guests.Add(cmd.Context(), in)
			if !ok {
				return errors.New("guest not added: name and relation are required")
			}
			return a.renderGuests(cmd, []models.Guest{guest})
		},
	}
	add.Flags().StringVar(&in.Name, "name", "", "guest name")
	add.Flags().StringVar(&in.Relation, "relation", "", "relation to the couple")
	add.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	add.Flags().StringVar(&in.Address, "address", "", "postal address")
	add.Flags().StringVar(&in.Category, "category", models.DefaultGuestCategory, "guest category")

	toggle := &cobra.Command{
		Use:       "toggle <id> <invited|confirmed>",
		Short:     "Flip a guest's invited or confirmed flag",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.GuestInvited), string(models.GuestConfirmed)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			guests, ok := ctrl.Guests.Toggle(cmd.Context(), args[0], models.GuestField(args[1]))
			if !ok {
				return fmt.Errorf("guest %q not updated", args[0])
			}
			return a.renderGuests(cmd, guests)
		},
	}

	invite := &cobra.Command{
		Use:   "invite <id>",
		Short: "Send a WhatsApp invitation to a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			guest, err := ctrl.Guests.Invite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.renderGuests(cmd, []models.Guest{guest})
		},
	}

	menu := &cobra.Command{
		Use:   "menu",
		Short: "Interactive guest menu that also answers RSVP replies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			if a.wa != nil {
				a.wa.SetMessageHandler(ctrl.Guests.HandleMessage)
				fmt.Fprintln(cmd.OutOrStdout(), "✅ Connected to WhatsApp, listening for RSVP replies.")
			}
			return guestMenu(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), ctrl.Guests)
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Count invited and confirmed guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			s := ctrl.Guests.Stats(cmd.Context())
			t := table{headers: []string{"Total", "Invited", "Confirmed"}}
			t.add(s.Total, s.Invited, s.Confirmed)
			return a.render(cmd.OutOrStdout(), t, s)
		},
	}

	cmd.AddCommand(add, toggle, invite, stats, menu)
	return cmd
}

func (a *app) renderGuests(cmd *cobra.Command, guests []models.Guest) error {
	t := table{headers: []string{"ID", "Name", "Relation", "Phone", "Category", "Invited", "Confirmed"}}
	for _, g := range guests {
		t.add(g.ID, g.Name, g.Relation, g.Phone, g.Category, yesNo(g.Invited), yesNo(g.Confirmed))
	}
	return a.render(cmd.OutOrStdout(), t, guests)
}

// guestMenu runs the interactive guest menu until input ends or the user exits
func guestMenu(ctx context.Context, in io.Reader, out io.Writer, guests *handler.GuestsController) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "\nCommands:")
		fmt.Fprintln(out, "  1. Send invitation")
		fmt.Fprintln(out, "  2. View all guests")
		fmt.Fprintln(out, "  3. View guests by status")
		fmt.Fprintln(out, "  4. Add guest")
		fmt.Fprintln(out, "  5. Exit")
		fmt.Fprint(out, "\nEnter command (1-5): ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			sendInvitation(ctx, scanner, out, guests)
		case "2":
			printGuests(out, "All Guests", guests.List(ctx))
		case "3":
			viewGuestsByStatus(ctx, scanner, out, guests)
		case "4":
			addGuest(ctx, scanner, out, guests)
		case "5":
			fmt.Fprintln(out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid command. Please try again.")
		}
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func sendInvitation(ctx context.Context, scanner *bufio.Scanner, out io.Writer, guests *handler.GuestsController) {
	id, ok := prompt(scanner, out, "Enter guest ID: ")
	if !ok {
		return
	}

	fmt.Fprintf(out, "\nSending invitation to %s...\n", id)
	guest, err := guests.Invite(ctx, id)
	if err != nil {
		fmt.Fprintf(out, "❌ Error sending invitation: %v\n", err)
		return
	}
	fmt.Fprintf(out, "✅ Invitation sent to %s!\n", guest.Name)
}

func addGuest(ctx context.Context, scanner *bufio.Scanner, out io.Writer, guests *handler.GuestsController) {
	var in models.NewGuest
	var ok bool
	if in.Name, ok = prompt(scanner, out, "Enter guest name: "); !ok {
		return
	}
	if in.Relation, ok = prompt(scanner, out, "Enter relation: "); !ok {
		return
	}
	if in.Phone, ok = prompt(scanner, out, "Enter phone number (optional): "); !ok {
		return
	}

	guest, added := guests.Add(ctx, in)
	if !added {
		fmt.Fprintln(out, "❌ Name and relation are required.")
		return
	}
	fmt.Fprintf(out, "✅ Added %s (%s)\n", guest.Name, guest.ID)
}

func viewGuestsByStatus(ctx context.Context, scanner *bufio.Scanner, out io.Writer, guests *handler.GuestsController) {
	fmt.Fprintln(out, "\nSelect status:")
	fmt.Fprintln(out, "  1. Not invited")
	fmt.Fprintln(out, "  2. Invited, awaiting reply")
	fmt.Fprintln(out, "  3. Confirmed")
	choice, ok := prompt(scanner, out, "Enter choice (1-3): ")
	if !ok {
		return
	}

	var (
		title string
		match func(models.Guest) bool
	)
	switch choice {
	case "1":
		title, match = "Not invited", func(g models.Guest) bool { return !g.Invited }
	case "2":
		title, match = "Awaiting reply", func(g models.Guest) bool { return g.Invited && !g.Confirmed }
	case "3":
		title, match = "Confirmed", func(g models.Guest) bool { return g.Confirmed }
	default:
		fmt.Fprintln(out, "Invalid choice.")
		return
	}

	var matched []models.Guest
	for _, g := range guests.List(ctx) {
		if match(g) {
			matched = append(matched, g)
		}
	}
	printGuests(out, title, matched)
}

func printGuests(out io.Writer, title string, guests []models.Guest) {
	if len(guests) == 0 {
		fmt.Fprintln(out, "\nNo guests found.")
		return
	}

	fmt.Fprintf(out, "\n📋 %s (%d total):\n", title, len(guests))
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, g := range guests {
		fmt.Fprintf(out, "ID: %s\n", g.ID)
		fmt.Fprintf(out, "Name: %s (%s)\n", g.Name, g.Relation)
		if g.Phone != "" {
			fmt.Fprintf(out, "Phone: %s\n", g.Phone)
		}
		fmt.Fprintf(out, "Invited: %s  Confirmed: %s\n", yesNo(g.Invited), yesNo(g.Confirmed))
		fmt.Fprintln(out, strings.Repeat("-", 60))
	}
}
