package board

import (
	"fmt"
	"strings"
)

// AssigneeRef is the assignee shape consumed from the remote service.
type AssigneeRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// DisplayName resolves a single assignee to a human-readable name, preferring
// full name, then username, then the local part of the email, then "User {id}".
func DisplayName(a AssigneeRef) string {
	if a.FullName != "" {
		return a.FullName
	}
	if a.Username != "" {
		return a.Username
	}
	if a.Email != "" {
		if at := strings.IndexByte(a.Email, '@'); at > 0 {
			return a.Email[:at]
		}
		return a.Email
	}
	return fmt.Sprintf("User %d", a.ID)
}

// DisplayNames renders an assignee list as "A", "A & B", or "A +N more".
// An empty list renders as "Unassigned".
func DisplayNames(refs []AssigneeRef) string {
	switch len(refs) {
	case 0:
		return "Unassigned"
	case 1:
		return DisplayName(refs[0])
	case 2:
		return DisplayName(refs[0]) + " & " + DisplayName(refs[1])
	default:
		return fmt.Sprintf("%s +%d more", DisplayName(refs[0]), len(refs)-1)
	}
}
