package event

import "github.com/google/uuid"

// A ResourceIdentifier names an object so other objects can refer to it.
// Identifiers are opaque URI-like strings (for example
// "smi:ch.ethz.sed/origin/2054"); equality is plain string equality, and the
// codecs never enforce uniqueness.
type ResourceIdentifier string

// NewResourceIdentifier fabricates a fresh identifier under the smi:local
// authority. Use it when building objects programmatically; decoded objects
// keep whatever identifier the document carried.
func NewResourceIdentifier() ResourceIdentifier {
	return ResourceIdentifier("smi:local/" + uuid.NewString())
}
