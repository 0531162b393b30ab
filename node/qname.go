package node

// QName is a possibly prefixed XML name. URI is carried for callers that
// resolve namespaces themselves; the parser leaves it empty.
type QName struct {
	Prefix string
	URI    string
	Local  string
}

// NewQName creates an unprefixed name.
func NewQName(local string) QName {
	return QName{Local: local}
}

// NewPrefixedQName creates a name of the form prefix:local.
func NewPrefixedQName(prefix, local string) QName {
	return QName{Prefix: prefix, Local: local}
}

func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// Equal compares the lexical form of both names.
func (q QName) Equal(other QName) bool {
	return q.Prefix == other.Prefix && q.Local == other.Local
}
