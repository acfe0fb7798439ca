package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hallbook/internal/filter"
)

func newVenuesCmd(a *app) *cobra.Command {
	var (
		budget       int
		capacity     int
		availability string
		search       string
		pincode      string
	)

	cmd := &cobra.Command{
		Use:   "venues [id]",
		Short: "List and filter function halls, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				v, ok := ctrl.Browse.Venue(args[0])
				if !ok {
					return fmt.Errorf("venue %q not found", args[0])
				}
				t := table{headers: []string{"Field", "Value"}}
				t.add("Name", v.Name)
				t.add("Location", v.Location+" "+v.Pincode)
				t.add("Price", rupees(v.Price))
				t.add("Capacity", v.Capacity)
				t.add("Rating", fmt.Sprintf("%.1f (%d reviews)", v.Rating, v.Reviews))
				t.add("Availability", v.Availability)
				t.add("Contact", v.ContactPhone+" / "+v.ContactEmail)
				t.add("Map pin", fmt.Sprintf("%.1f%%, %.1f%%", v.Pin.X, v.Pin.Y))
				return a.render(cmd.OutOrStdout(), t, v)
			}

			q := url.Values{}
			if cmd.Flags().Changed("budget") {
				q.Set("budget", strconv.Itoa(budget))
			}
			if cmd.Flags().Changed("capacity") {
				q.Set("capacity", strconv.Itoa(capacity))
			}
			q.Set("availability", availability)
			q.Set("search", search)
			q.Set("pincode", pincode)

			venues := ctrl.Browse.Venues(filter.ParseVenueCriteria(q))
			t := table{headers: []string{"ID", "Name", "Location", "Price", "Capacity", "Rating", "Availability"}}
			for _, v := range venues {
				t.add(v.ID, v.Name, v.Location, rupees(v.Price), v.Capacity, v.Rating, v.Availability)
			}
			return a.render(cmd.OutOrStdout(), t, venues)
		},
	}

	cmd.Flags().IntVar(&budget, "budget", 0, "maximum price")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "minimum capacity")
	cmd.Flags().StringVar(&availability, "availability", "", "available or all")
	cmd.Flags().StringVar(&search, "search", "", "text to find in name or location")
	cmd.Flags().StringVar(&pincode, "pincode", "", "exact postal code")
	return cmd
}

func newServicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List wedding service providers by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}

			categories := ctrl.Browse.Services()
			t := table{headers: []string{"Category", "Provider", "Rating", "Price", "Offers"}}
			for _, c := range categories {
				for _, p := range c.Providers {
					price := p.PriceRange
					if p.PricePerPlate > 0 {
						price = rupees(p.PricePerPlate) + "/plate"
					}
					t.add(c.Name, p.Name, p.Rating, price, strings.Join(p.Offerings(), ", "))
				}
			}
			return a.render(cmd.OutOrStdout(), t, categories)
		},
	}
}
