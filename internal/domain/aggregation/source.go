package aggregation

// Source identifies where a product record originated.
type Source string

const (
	// SourceManual marks records authored by store administrators
	SourceManual Source = "manual"
	// SourceFakeStore marks records imported from the FakeStore catalog
	SourceFakeStore Source = "fakestore"
	// SourceDummyJSON marks records imported from the DummyJSON catalog
	SourceDummyJSON Source = "dummyjson"
	// SourcePlatzi marks records imported from the Platzi catalog
	SourcePlatzi Source = "platzi"
	// SourceAPI marks records created through the public API
	SourceAPI Source = "api"
)

// SourceAll is the pseudo-source accepted by aggregate operations to
// address every external catalog at once. It is not a valid provenance tag.
const SourceAll = "all"

// IsValid returns true if the source is one of the recognized provenance tags
func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceFakeStore, SourceDummyJSON, SourcePlatzi, SourceAPI:
		return true
	default:
		return false
	}
}

// IsExternal returns true if the source is backed by an upstream catalog adapter
func (s Source) IsExternal() bool {
	switch s {
	case SourceFakeStore, SourceDummyJSON, SourcePlatzi:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source
func (s Source) String() string {
	return string(s)
}

// ExternalSources returns the adapter-backed sources in their fixed
// registration order. Aggregate fetches concatenate results in this order.
func ExternalSources() []Source {
	return []Source{SourceFakeStore, SourceDummyJSON, SourcePlatzi}
}

// ParseSource parses a raw source string, returning false for anything
// outside the closed source set
func ParseSource(raw string) (Source, bool) {
	s := Source(raw)
	if !s.IsValid() {
		return "", false
	}
	return s, true
}
