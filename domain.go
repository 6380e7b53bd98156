package accio

// EntryKind is the classification of a single directory entry
type EntryKind int

const (
	// KindOther is anything that is neither a match nor a traversable directory
	KindOther EntryKind = iota
	// KindMatch means the entry name equals the search target
	KindMatch
	// KindDirectory means the entry is a directory the search descends into
	KindDirectory
)

func (k EntryKind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

// FailureKind groups filesystem failures by how the search reacts to them
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailurePermissionDenied
	FailureNotFoundOrWrongType
	FailureOtherStatus
	FailureAllocation
)

func (k FailureKind) String() string {
	switch k {
	case FailurePermissionDenied:
		return "permission_denied"
	case FailureNotFoundOrWrongType:
		return "not_found_or_wrong_type"
	case FailureOtherStatus:
		return "other_status_failure"
	case FailureAllocation:
		return "allocation_failure"
	default:
		return "none"
	}
}

// Disposition is what the search does after a failure
type Disposition int

const (
	// Skip excludes the failing directory or entry and keeps searching
	Skip Disposition = iota
	// Abort stops the whole search and reports the failure
	Abort
)

func (d Disposition) String() string {
	if d == Abort {
		return "abort"
	}
	return "skip"
}

// SearchResult represents a search result
type SearchResult struct {
	Path      string
	MatchedBy string // What caused the match
}

// MatchFunc is called once per match, in discovery order
type MatchFunc func(path string)

// SkipFunc is called for every failure the search recovers from
type SkipFunc func(path string, err error)
