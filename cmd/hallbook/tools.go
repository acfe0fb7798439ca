package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hallbook/internal/models"
)

func newTimelineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the wedding timeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderTimeline(cmd, ctrl.Timeline.List(cmd.Context()))
		},
	}

	set := &cobra.Command{
		Use:   "set <id> <pending|upcoming|completed>",
		Short: "Set the status of a timeline event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			events, ok := ctrl.Timeline.UpdateStatus(cmd.Context(), args[0], models.TimelineStatus(args[1]))
			if !ok {
				return fmt.Errorf("timeline event %q not updated", args[0])
			}
			return a.renderTimeline(cmd, events)
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func (a *app) renderTimeline(cmd *cobra.Command, events []models.TimelineEvent) error {
	t := table{headers: []string{"ID", "Date", "Time", "Event", "Status"}}
	for _, e := range events {
		t.add(e.ID, e.Date, e.Time, e.Event, e.Status)
	}
	return a.render(cmd.OutOrStdout(), t, events)
}

func newBudgetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show budget usage by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.showBudget(cmd)
		},
	}

	spent := &cobra.Command{
		Use:   "spent <category> <amount>",
		Short: "Record the amount spent in a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			if _, ok := ctrl.Budget.SetSpent(cmd.Context(), args[0], amount); !ok {
				return fmt.Errorf("budget category %q not updated", args[0])
			}
			return a.showBudget(cmd)
		},
	}

	total := &cobra.Command{
		Use:   "total <amount>",
		Short: "Set the total wedding budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			if _, ok := ctrl.Budget.SetTotal(cmd.Context(), amount); !ok {
				return errors.New("total budget not updated")
			}
			return a.showBudget(cmd)
		},
	}

	cmd.AddCommand(spent, total)
	return cmd
}

func (a *app) showBudget(cmd *cobra.Command) error {
	ctrl, err := a.controllers(cmd.Context())
	if err != nil {
		return err
	}
	summary := ctrl.Budget.Summary(cmd.Context())

	t := table{headers: []string{"Category", "Budgeted", "Spent", "Used", "Level"}}
	for _, c := range summary.Categories {
		t.add(c.Name, rupees(c.Budgeted), rupees(c.Spent), fmt.Sprintf("%.0f%%", c.Percent), c.Level)
	}
	t.add("Total", rupees(summary.TotalBudget), rupees(summary.Spent), "", "remaining "+rupees(summary.Remaining))
	return a.render(cmd.OutOrStdout(), t, summary)
}
