// Verifies an invite CSV against the live member list: reports per row
// whether the person is already an organization member or safe to invite.
// Read-only; performs no write call.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/config"
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

	report.Banner(out, "Test Invite Verification - Checking Against Existing Members")

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
	if err := roster.ValidateCSVInput(csvFile); err != nil {
		fatal(err)
	}

	fmt.Fprintln(out, "\nConfiguration:")
	fmt.Fprintf(out, "  Pennsieve Host: %s\n", cfg.Host)
	fmt.Fprintf(out, "  Organization ID: %s\n", cfg.OrgID)
	fmt.Fprintf(out, "  CSV File: %s\n", csvFile)

	fmt.Fprintf(out, "\nLoading test invites from: %s\n", csvFile)
	table, err := roster.LoadCSV(csvFile)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(out, "Found %d participants in test invite list\n", len(table.Rows))

	emailCol, err := roster.ResolveEmailColumn(table.Headers)
	if err != nil {
		fatal(err)
	}
	nameCol := roster.ResolveNameColumn(table.Headers)
	registrants := roster.Registrants(table, emailCol, nameCol)

	client := pennsieve.NewClient(cfg.Host, cfg.OrgID, cfg.APIKey)
	log.Infof("Fetching existing members from Pennsieve API...")
	log.Infof("URL: %s", client.MembersURL())
	members, err := client.GetMembers(context.Background())
	if err != nil {
		fatal(err)
	}

	idx := reconcile.BuildIndex(members)
	log.Infof("Found %d existing members", idx.Len())

	res := reconcile.Classify(registrants, idx)
	report.Verification(out, res)
}
