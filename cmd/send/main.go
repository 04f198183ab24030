// Sends batched invites from an invite CSV via the Pennsieve API after an
// interactive "yes" confirmation. Usage: send [csv_file] [role]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/config"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/emailaddr"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/logger"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/pennsieve"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/reconcile"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/report"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/roster"
)

func fatal(err error) {
	fmt.Println(err)
	logger.Close()
	os.Exit(1)
}

func main() {
	log := logger.GetLogger()
	defer logger.Close()
	out := os.Stdout
	confirm := report.Confirm(os.Stdin, out)

	report.Banner(out, "Pennsieve Invite Sender")

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Require("API_KEY", "PENNSIEVE_HOST", "ORG_ID"); err != nil {
		fatal(err)
	}

	csvFile := filepath.Join(cfg.OutputDir, "test_invite.csv")
	if len(os.Args) > 1 {
		csvFile = os.Args[1]
	}
	role := cfg.InviteRole
	if len(os.Args) > 2 {
		role = os.Args[2]
	}
	if err := roster.ValidateCSVInput(csvFile); err != nil {
		fatal(err)
	}

	fmt.Fprintln(out, "\nConfiguration:")
	fmt.Fprintf(out, "  Pennsieve Host: %s\n", cfg.Host)
	fmt.Fprintf(out, "  Organization ID: %s\n", cfg.OrgID)
	fmt.Fprintf(out, "  CSV File: %s\n", csvFile)
	fmt.Fprintf(out, "  Default Permission: %s\n", role)
	fmt.Fprintf(out, "  API Key: %s\n", logger.MaskKey(cfg.APIKey))

	fmt.Fprintf(out, "\nLoading invites from: %s\n", csvFile)
	table, err := roster.LoadCSV(csvFile)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(out, "Found %d users to invite\n", len(table.Rows))

	emailCol, err := roster.ResolveEmailColumn(table.Headers)
	if err != nil {
		fatal(err)
	}
	nameCol := roster.ResolveNameColumn(table.Headers)
	registrants := roster.Registrants(table, emailCol, nameCol)

	report.InviteList(out, registrants)

	if !confirm("\nProceed with sending invites? (yes/no): ") {
		fmt.Fprintln(out, "Aborted.")
		return
	}

	var invitable []reconcile.Registrant
	for _, reg := range registrants {
		if _, ok := emailaddr.Normalize(reg.Email); !ok {
			fmt.Fprintf(out, "\nSkipping row %d: No email address\n", reg.Row)
			continue
		}
		invitable = append(invitable, reg)
	}

	payload := reconcile.BuildPayload(invitable, role, cfg.InviteRoleCode, cfg.InviteMessage)
	client := pennsieve.NewClient(cfg.Host, cfg.OrgID, cfg.APIKey)

	log.Infof("Sending %d invite(s)", len(payload.Invites))
	log.Infof("URL: %s", client.MembersURL())
	log.Infof("Role: %s", payload.Role)

	result, sendErr := client.SendInvites(context.Background(), payload)

	fmt.Fprintln(out)
	report.Rule(out)
	fmt.Fprintln(out, "Summary:")
	if sendErr != nil {
		fmt.Fprintln(out, "✗ Failed to send invites")
		fmt.Fprintf(out, "  %v\n", sendErr)
		report.Rule(out)
		logger.Close()
		os.Exit(1)
	}

	fmt.Fprintln(out, "✓ Successfully sent invites")
	fmt.Fprintf(out, "  Successfully sent %d invite(s)\n", len(payload.Invites))
	if encoded, err := json.MarshalIndent(result, "", "  "); err == nil {
		fmt.Fprintf(out, "  Response: %s\n", encoded)
	}
	report.Rule(out)
}
