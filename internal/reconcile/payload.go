package reconcile

import "strings"

// Invite is one entry in the batch invite request.
type Invite struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	CustomMessage string `json:"customMessage"`
	InviteRole    string `json:"inviteRole"`
}

// InvitePayload is the batch request body for POST /organizations/{org}/members.
type InvitePayload struct {
	Invites []Invite `json:"invites"`
	Role    string   `json:"role"`
}

// SplitName splits a display name on the first space: first token becomes the
// first name, the remainder the last name (empty when absent).
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, " "); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// BuildPayload constructs the batch payload from pre-filtered registrants.
// Callers must have dropped rows without a resolvable email already; no
// validation happens here.
func BuildPayload(registrants []Registrant, role, roleCode, message string) InvitePayload {
	invites := make([]Invite, 0, len(registrants))
	for _, reg := range registrants {
		first, last := SplitName(reg.Name)
		invites = append(invites, Invite{
			FirstName:     first,
			LastName:      last,
			Email:         strings.TrimSpace(reg.Email),
			CustomMessage: message,
			InviteRole:    roleCode,
		})
	}
	return InvitePayload{Invites: invites, Role: role}
}
