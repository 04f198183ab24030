// Package reconcile implements the membership reconciliation core: index the
// remote member list by normalized email, partition registrants against it,
// and build the batch invite payload. Everything here is pure and offline.
package reconcile

import (
	"strings"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/emailaddr"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/pennsieve"
)

// MemberDetail is what the reports show for an existing member.
type MemberDetail struct {
	Name string
	Role string
}

// Index holds the organization membership keyed by normalized email.
type Index struct {
	emails  map[string]struct{}
	details map[string]MemberDetail
}

// BuildIndex indexes members by normalized email. Members without an email
// are not indexed. Duplicate emails are last-write-wins.
func BuildIndex(members []pennsieve.Member) *Index {
	idx := &Index{
		emails:  make(map[string]struct{}, len(members)),
		details: make(map[string]MemberDetail, len(members)),
	}
	for _, m := range members {
		email, ok := emailaddr.Normalize(m.Email)
		if !ok {
			continue
		}
		role := m.Role
		if role == "" {
			role = "N/A"
		}
		idx.emails[email] = struct{}{}
		idx.details[email] = MemberDetail{
			Name: strings.TrimSpace(m.FirstName + " " + m.LastName),
			Role: role,
		}
	}
	return idx
}

// Len reports the number of distinct member emails.
func (idx *Index) Len() int {
	return len(idx.emails)
}

// Contains reports whether a normalized email belongs to a current member.
func (idx *Index) Contains(email string) bool {
	_, ok := idx.emails[email]
	return ok
}

// Detail returns the stored member detail for a normalized email.
func (idx *Index) Detail(email string) (MemberDetail, bool) {
	d, ok := idx.details[email]
	return d, ok
}

// Emails returns up to n indexed emails, for debug echo. Map order.
func (idx *Index) Emails(n int) []string {
	out := make([]string, 0, n)
	for email := range idx.emails {
		if len(out) == n {
			break
		}
		out = append(out, email)
	}
	return out
}
