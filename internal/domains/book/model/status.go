package model

// PublicationStatus may only move forward: UNPUBLISHED -> PUBLISHED.
type PublicationStatus string

const (
	StatusUnpublished PublicationStatus = "UNPUBLISHED"
	StatusPublished   PublicationStatus = "PUBLISHED"
)

func (s PublicationStatus) IsValid() bool {
	return s == StatusUnpublished || s == StatusPublished
}

func (s PublicationStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether a book in status s may move to next.
func (s PublicationStatus) CanTransitionTo(next PublicationStatus) bool {
	return !(s == StatusPublished && next == StatusUnpublished)
}

func ParsePublicationStatus(s string) (PublicationStatus, error) {
	status := PublicationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus.Withf("publication status %q", s)
	}
	return status, nil
}
