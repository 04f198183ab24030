// Generates the uninvited-members list: reads the registration spreadsheet,
// fetches current organization members from the Pennsieve API, and writes a
// CSV of registrants who are not yet members, all original columns intact.
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

const outputName = "uninvited_members.csv"

func fatal(err error) {
	fmt.Println(err)
	logger.Close()
	os.Exit(1)
}

func main() {
	log := logger.GetLogger()
	defer logger.Close()
	out := os.Stdout

	report.Banner(out, "Pennsieve Uninvited Members List Generator")

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Require("API_KEY", "PENNSIEVE_HOST", "ORG_ID"); err != nil {
		fatal(err)
	}

	excelFile, err := roster.FindExcelInput(cfg.InputDir)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(out, "Using file: %s\n\n", excelFile)

	log.Infof("Loading registration list from: %s", excelFile)
	table, err := roster.LoadExcel(excelFile)
	if err != nil {
		fatal(err)
	}
	log.Infof("Loaded %d rows", len(table.Rows))
	log.Infof("Columns: %v", table.Headers)

	emailCol, err := roster.ResolveEmailColumn(table.Headers)
	if err != nil {
		fatal(err)
	}
	nameCol := roster.ResolveNameColumn(table.Headers)
	fmt.Fprintf(out, "Using column '%s' for email addresses\n", table.Headers[emailCol])

	client := pennsieve.NewClient(cfg.Host, cfg.OrgID, cfg.APIKey)
	log.Infof("Fetching existing members from Pennsieve API...")
	log.Infof("URL: %s", client.MembersURL())
	members, err := client.GetMembers(context.Background())
	if err != nil {
		fatal(err)
	}

	idx := reconcile.BuildIndex(members)
	log.Infof("Found %d existing members", idx.Len())
	fmt.Fprintln(out, "\nFirst 5 existing member emails:")
	for i, email := range idx.Emails(5) {
		fmt.Fprintf(out, "  %d. %s\n", i+1, email)
	}

	registrants := roster.Registrants(table, emailCol, nameCol)
	res := reconcile.Classify(registrants, idx)
	report.UninvitedSummary(out, res, idx.Len())

	if len(res.NeedsInvite) == 0 {
		fmt.Fprintln(out, "No uninvited members found!")
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fatal(err)
	}

	keep := make(map[int]bool, len(res.NeedsInvite))
	for _, c := range res.NeedsInvite {
		keep[c.Row-2] = true // spreadsheet row back to table index
	}
	uninvited := roster.FilterRows(table, keep)

	outputFile := filepath.Join(cfg.OutputDir, outputName)
	if err := roster.WriteCSV(outputFile, uninvited); err != nil {
		fatal(err)
	}
	fmt.Fprintf(out, "Uninvited members list saved to: %s\n", outputFile)

	fmt.Fprintln(out, "\nFirst few uninvited members:")
	for i, c := range res.NeedsInvite {
		if i == 10 {
			break
		}
		fmt.Fprintf(out, "  %s (%s)\n", c.Name, c.NormalizedEmail)
	}
}
