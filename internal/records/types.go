package records

// Kind names one of the three persisted collections.
type Kind string

const (
	KindEvents        Kind = "events"
	KindRegistrations Kind = "registrations"
	KindUsers         Kind = "users"
)

// check to see if the kind is a known constant
func (k Kind) IsValid() bool {
	switch k {
	case KindEvents, KindRegistrations, KindUsers:
		return true
	default:
		return false
	}
}

// Delimiter is the field separator used by the collection's line format.
func (k Kind) Delimiter() byte {
	if k == KindUsers {
		return ','
	}
	return '|'
}
