package reconcile

import "github.com/Penn-I3H/pennsieve-invite-sync/internal/emailaddr"

// Registrant is one row from the input table, raw and unmutated.
type Registrant struct {
	Row   int // 1-based spreadsheet row
	Name  string
	Email string
}

// Classified pairs a registrant with its normalized email and, for existing
// members, the indexed detail.
type Classified struct {
	Registrant
	NormalizedEmail string
	Member          MemberDetail
}

// Result partitions registrants. The three slices are disjoint, cover the
// input exactly, and preserve input order.
type Result struct {
	NeedsInvite    []Classified
	AlreadyMembers []Classified
	Skipped        []Registrant
}

// Total is the number of input registrants accounted for.
func (r *Result) Total() int {
	return len(r.NeedsInvite) + len(r.AlreadyMembers) + len(r.Skipped)
}

// Classify partitions registrants against the membership index. Rows without
// a resolvable email are skipped; the rest split on index membership.
func Classify(registrants []Registrant, idx *Index) *Result {
	res := &Result{}
	for _, reg := range registrants {
		email, ok := emailaddr.Normalize(reg.Email)
		if !ok {
			res.Skipped = append(res.Skipped, reg)
			continue
		}
		c := Classified{Registrant: reg, NormalizedEmail: email}
		if idx.Contains(email) {
			c.Member, _ = idx.Detail(email)
			res.AlreadyMembers = append(res.AlreadyMembers, c)
		} else {
			res.NeedsInvite = append(res.NeedsInvite, c)
		}
	}
	return res
}
