// Previews the batch invite API call for an invite CSV without sending
// anything: prints the endpoint, headers, JSON payload, and per-invite detail.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/config"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/emailaddr"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/logger"
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
	defer logger.Close()
	out := os.Stdout

	report.Banner(out, "Test Invite Payload Preview")

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Require("PENNSIEVE_HOST", "ORG_ID"); err != nil {
		fatal(err)
	}

	csvFile := filepath.Join(cfg.OutputDir, "test_invite.csv")
	if len(os.Args) > 1 {
		csvFile = os.Args[1]
	}
	if err := roster.ValidateCSVInput(csvFile); err != nil {
		fatal(err)
	}

	fmt.Fprintln(out, "\nConfiguration:")
	fmt.Fprintf(out, "  Pennsieve Host: %s\n", cfg.Host)
	fmt.Fprintf(out, "  Organization ID: %s\n", cfg.OrgID)
	fmt.Fprintf(out, "  CSV File: %s\n", csvFile)
	fmt.Fprintf(out, "  Default Permission: %s\n", cfg.InviteRole)

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

	var invitable []reconcile.Registrant
	for _, reg := range roster.Registrants(table, emailCol, nameCol) {
		if _, ok := emailaddr.Normalize(reg.Email); !ok {
			fmt.Fprintf(out, "\nSkipping row %d: No email address\n", reg.Row)
			continue
		}
		invitable = append(invitable, reg)
	}

	payload := reconcile.BuildPayload(invitable, cfg.InviteRole, cfg.InviteRoleCode, cfg.InviteMessage)
	url := fmt.Sprintf("%s/organizations/%s/members", cfg.Host, cfg.OrgID)
	if err := report.Payload(out, url, payload); err != nil {
		fatal(err)
	}
}
