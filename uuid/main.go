package uuid

import (
	"github.com/google/uuid"
)

func New() string {
	return uuid.New().String()
}

func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}

// OrNew returns id in canonical form when it is a valid UUID, otherwise a
// fresh one.
func OrNew(id string) string {
	if !IsValidUUID(id) {
		return New()
	}
	return uuid.MustParse(id).String()
}
