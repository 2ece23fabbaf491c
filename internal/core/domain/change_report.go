package domain

// ChangeKind classifies a member against a previous extraction.
type ChangeKind string

const (
	// ChangeAdded marks a member missing from the previous extraction.
	ChangeAdded ChangeKind = "added"
	// ChangeModified marks a member whose tree differs from the previous extraction.
	ChangeModified ChangeKind = "changed"
	// ChangeUnchanged marks a member identical to the previous extraction.
	ChangeUnchanged ChangeKind = "unchanged"
	// ChangeRemoved marks a previous member that is no longer extracted.
	ChangeRemoved ChangeKind = "removed"
)

// MemberChange is the comparison result for one member directory.
type MemberChange struct {
	Dir  string
	Kind ChangeKind
}

// ChangeReport compares a fresh extraction with a previous one.
type ChangeReport struct {
	Changes []MemberChange
}

// Add records a change.
func (r *ChangeReport) Add(dir string, kind ChangeKind) {
	r.Changes = append(r.Changes, MemberChange{Dir: dir, Kind: kind})
}

// Count returns how many members have the given kind.
func (r *ChangeReport) Count(kind ChangeKind) int {
	n := 0
	for _, c := range r.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
