package sticky

import (
	"bytes"
	"strconv"

	"github.com/google/uuid"
)

// HeaderID identifies one sticky header for its whole lifetime.
// It is only ever used as a registry key; two headers with identical
// content still get distinct ids.
type HeaderID struct {
	u uuid.UUID
}

// NewHeaderID mints a fresh random id.
func NewHeaderID() HeaderID {
	return HeaderID{u: uuid.New()}
}

// IndexedHeaderID derives a stable id from a container namespace and the
// header's position in that container. Rebuilding the same list yields the
// same ids.
func IndexedHeaderID(space uuid.UUID, index int) HeaderID {
	return HeaderID{u: uuid.NewSHA1(space, []byte(strconv.Itoa(index)))}
}

// ParseHeaderID parses the canonical string form produced by String.
func ParseHeaderID(s string) (HeaderID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return HeaderID{}, err
	}
	return HeaderID{u: u}, nil
}

// IsZero reports whether the id was never assigned.
func (id HeaderID) IsZero() bool {
	return id.u == uuid.Nil
}

// Compare orders ids byte-wise. It exists for deterministic tie-breaking
// and carries no layout meaning.
func (id HeaderID) Compare(other HeaderID) int {
	return bytes.Compare(id.u[:], other.u[:])
}

// String returns the canonical uuid form.
func (id HeaderID) String() string {
	return id.u.String()
}

// short returns the first uuid group, enough to tell headers apart in logs.
func (id HeaderID) short() string {
	return id.u.String()[:8]
}
