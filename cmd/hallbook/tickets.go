package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hallbook/internal/models"
)

func newTicketsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets [id]",
		Short: "List support tickets, or show one with its messages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				ticket, ok := ctrl.Tickets.Get(cmd.Context(), args[0])
				if !ok {
					return fmt.Errorf("support ticket %q not found", args[0])
				}
				return a.renderTicket(cmd, ticket)
			}

			tickets := ctrl.Tickets.List(cmd.Context())
			t := table{headers: []string{"ID", "Subject", "Status", "Messages", "Updated"}}
			for _, tk := range tickets {
				t.add(tk.ID, tk.Subject, tk.Status, len(tk.Messages), tk.UpdatedAt.Local().Format(time.DateTime))
			}
			return a.render(cmd.OutOrStdout(), t, tickets)
		},
	}

	var in models.NewTicket
	open := &cobra.Command{
		Use:   "open",
		Short: "Send a message to the support team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			ticket, ok := ctrl.Tickets.Create(cmd.Context(), in)
			if !ok {
				return errors.New("ticket not created: subject and message are required")
			}
			return a.renderTicket(cmd, ticket)
		},
	}
	open.Flags().StringVar(&in.Subject, "subject", "", "what the message is about")
	open.Flags().StringVar(&in.Message, "message", "", "message text")

	var agent bool
	reply := &cobra.Command{
		Use:   "reply <id> <message>",
		Short: "Add a message to a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			r := models.TicketReply{Message: args[1]}
			if agent {
				r.Type = models.SenderAgent
			}
			ticket, ok := ctrl.Tickets.AddMessage(cmd.Context(), args[0], r)
			if !ok {
				return fmt.Errorf("message not added to ticket %q", args[0])
			}
			return a.renderTicket(cmd, ticket)
		},
	}
	reply.Flags().BoolVar(&agent, "agent", false, "reply as the support team")

	status := &cobra.Command{
		Use:   "status <id> <open|in_progress|resolved>",
		Short: "Change the status of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.controllers(cmd.Context())
			if err != nil {
				return err
			}
			ticket, ok := ctrl.Tickets.SetStatus(cmd.Context(), args[0], models.TicketStatus(args[1]))
			if !ok {
				return fmt.Errorf("support ticket %q not updated", args[0])
			}
			return a.renderTicket(cmd, ticket)
		},
	}

	cmd.AddCommand(open, reply, status)
	return cmd
}

func (a *app) renderTicket(cmd *cobra.Command, ticket models.SupportTicket) error {
	t := table{headers: []string{"#", "From", "Sent", "Message"}}
	for _, m := range ticket.Messages {
		t.add(m.ID, m.Type, m.Timestamp.Local().Format(time.DateTime), m.Message)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s  %s  [%s]\n", ticket.ID, ticket.Subject, ticket.Status)
	return a.render(cmd.OutOrStdout(), t, ticket)
}
