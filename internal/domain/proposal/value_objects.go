package proposal

import (
	"strings"

	"github.com/google/uuid"
)

const MaxDocumentRefLength = 2048

// ProviderSnapshot is copied into the proposal at submission so later profile edits
// never rewrite history.
type ProviderSnapshot struct {
	ProviderID uuid.UUID
	Name       string
	Email      string
}

type DocumentRef string

func NewDocumentRef(s string) (DocumentRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDocumentRef
	}
	if len(s) > MaxDocumentRefLength {
		return "", ErrDocumentRefTooLong
	}
	return DocumentRef(s), nil
}

func (d DocumentRef) String() string {
	return string(d)
}
