// Package report renders operator-facing output for the scripts: section
// banners, classification summaries, and invite payload previews. Everything
// writes to an io.Writer so tests can capture output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/reconcile"
)

const bannerWidth = 80

// Banner prints a title between two full-width separator lines.
func Banner(w io.Writer, title string) {
	Rule(w)
	fmt.Fprintln(w, title)
	Rule(w)
}

// Rule prints a full-width separator line.
func Rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

// UninvitedSummary prints the classification totals for the uninvited-list run.
func UninvitedSummary(w io.Writer, res *reconcile.Result, memberCount int) {
	fmt.Fprintln(w)
	Rule(w)
	fmt.Fprintf(w, "Total registrations: %d\n", res.Total())
	fmt.Fprintf(w, "Total members in Pennsieve workspace: %d\n", memberCount)
	fmt.Fprintf(w, "Registrations already in workspace: %d\n", len(res.AlreadyMembers))
	fmt.Fprintf(w, "Registrations without an email address: %d\n", len(res.Skipped))
	fmt.Fprintf(w, "Registrations needing invites: %d\n", len(res.NeedsInvite))
	Rule(w)
	fmt.Fprintln(w)
}

// Payload prints the full API call preview: endpoint, headers, pretty JSON
// body, then one block per invite.
func Payload(w io.Writer, url string, payload reconcile.InvitePayload) error {
	fmt.Fprintln(w)
	Banner(w, "API CALL DETAILS")
	fmt.Fprintf(w, "\nEndpoint: POST %s\n", url)
	fmt.Fprintln(w, "\nHeaders:")
	fmt.Fprintln(w, "  Authorization: Bearer [API_KEY]")
	fmt.Fprintln(w, "  Content-Type: application/json")

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	Banner(w, "PAYLOAD")
	fmt.Fprintln(w, string(encoded))

	fmt.Fprintln(w)
	Banner(w, "INVITE DETAILS")
	for i, inv := range payload.Invites {
		fmt.Fprintf(w, "\n%d. %s %s\n", i+1, inv.FirstName, inv.LastName)
		fmt.Fprintf(w, "   Email: %s\n", inv.Email)
		fmt.Fprintf(w, "   Role: %s\n", payload.Role)
		fmt.Fprintf(w, "   Message: %s\n", inv.CustomMessage)
	}
	return nil
}

// Verification prints the per-row verification results followed by the
// summary and the already-member warning block.
func Verification(w io.Writer, res *reconcile.Result) {
	fmt.Fprintln(w)
	Banner(w, "Verification Results:")

	for _, reg := range res.Skipped {
		fmt.Fprintf(w, "\n⚠ Skipping row %d: No email address\n", reg.Row)
	}
	for _, c := range res.AlreadyMembers {
		fmt.Fprintf(w, "\n✗ ALREADY A MEMBER: %s (%s)\n", c.Name, c.NormalizedEmail)
		fmt.Fprintf(w, "    Role: %s\n", c.Member.Role)
	}
	for _, c := range res.NeedsInvite {
		fmt.Fprintf(w, "\n✓ NOT A MEMBER: %s (%s)\n", c.Name, c.NormalizedEmail)
		fmt.Fprintln(w, "    Can be invited")
	}

	fmt.Fprintln(w)
	Rule(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total participants in test invite: %d\n", res.Total())
	fmt.Fprintf(w, "  Already organization members: %d\n", len(res.AlreadyMembers))
	fmt.Fprintf(w, "  Not members (safe to invite): %d\n", len(res.NeedsInvite))
	Rule(w)

	if len(res.AlreadyMembers) > 0 {
		fmt.Fprintln(w, "\n⚠ WARNING: The following participants are already members:")
		for _, c := range res.AlreadyMembers {
			fmt.Fprintf(w, "  - %s (%s)\n", c.Name, c.NormalizedEmail)
		}
		fmt.Fprintln(w, "\nYou may want to remove them from the invite list before sending.")
	} else {
		fmt.Fprintln(w, "\n✓ All participants in the invite list are NOT currently members.")
		fmt.Fprintln(w, "  It is safe to proceed with sending invites.")
	}
}

// InviteList prints the numbered name/email list shown before confirmation.
func InviteList(w io.Writer, regs []reconcile.Registrant) {
	fmt.Fprintln(w)
	Rule(w)
	fmt.Fprintln(w, "Users to invite:")
	for i, reg := range regs {
		name := reg.Name
		if name == "" {
			name = "N/A"
		}
		email := strings.TrimSpace(reg.Email)
		if email == "" {
			email = "N/A"
		}
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, name, email)
	}
	Rule(w)
}
