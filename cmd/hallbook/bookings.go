package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hallbook/internal/filter"
	"hallbook/internal/models"
)

func newBookingsCmd(a *app) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "bookings [id]",
		Short: "List bookings, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				b, ok := ctrl.Bookings.Get(cmd.Context(), args[0])
				if !ok {
					return fmt.Errorf("booking %q not found", args[0])
				}
				return a.renderBookings(cmd, []models.Booking{b}, b)
			}
			bookings := ctrl.Bookings.List(cmd.Context(), tab)
			return a.renderBookings(cmd, bookings, bookings)
		},
	}
	cmd.Flags().StringVar(&tab, "tab", filter.TabAll, "all, upcoming, completed or cancelled")

	var (
		req       models.BookingRequest
		eventDate string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Request a booking for a venue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := time.Parse(time.DateOnly, eventDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", eventDate)
			}
			req.EventDate = date

			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			b, ok := ctrl.Bookings.Create(cmd.Context(), req)
			if !ok {
				return errors.New("booking not created: check the venue id and guest count")
			}
			return a.renderBookings(cmd, []models.Booking{b}, b)
		},
	}
	create.Flags().StringVar(&req.VenueID, "venue", "", "venue id")
	create.Flags().StringVar(&eventDate, "date", "", "event date (YYYY-MM-DD)")
	create.Flags().IntVar(&req.GuestCount, "guests", 0, "expected guest count")
	create.Flags().StringVar(&req.SpecialRequests, "notes", "", "special requests")
	_ = create.MarkFlagRequired("venue")
	_ = create.MarkFlagRequired("date")

	status := &cobra.Command{
		Use:   "status <id> <pending|confirmed|cancelled|completed>",
		Short: "Change the status of a booking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			b, ok := ctrl.Bookings.UpdateStatus(cmd.Context(), args[0], models.BookingStatus(args[1]))
			if !ok {
				return fmt.Errorf("booking %q not updated", args[0])
			}
			return a.renderBookings(cmd, []models.Booking{b}, b)
		},
	}

	cmd.AddCommand(create, status)
	return cmd
}

func (a *app) renderBookings(cmd *cobra.Command, bookings []models.Booking, data any) error {
	t := table{headers: []string{"ID", "Venue", "Event date", "Status", "Total"}}
	for _, b := range bookings {
		t.add(b.ID, b.VenueName, b.EventDate.Format(time.DateOnly), b.Status, rupees(b.TotalAmount))
	}
	return a.render(cmd.OutOrStdout(), t, data)
}
