package targeting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewMemberWindow is the fixed policy window for the "new members" toggle.
const NewMemberWindow = 30 * 24 * time.Hour

// Candidate is a read-only projection of a user-directory entry. The filter
// never writes back to the directory and never consults the send ledger.
type Candidate struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

// SelectTargets narrows candidates by search text (case-insensitive substring
// on name or email) and, when newMembersOnly is set, by the new-member window:
// createdAt strictly after referenceTime minus the window. Both predicates
// compose by conjunction. Input order is preserved.
func SelectTargets(candidates []Candidate, searchText string, newMembersOnly bool, referenceTime time.Time) []Candidate {
	search := strings.ToLower(strings.TrimSpace(searchText))
	cutoff := referenceTime.Add(-NewMemberWindow)

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if newMembersOnly && !c.CreatedAt.After(cutoff) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c Candidate, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(c.Name), loweredSearch) ||
		strings.Contains(strings.ToLower(c.Email), loweredSearch)
}
