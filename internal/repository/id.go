package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseID validates a document identifier and returns its canonical form
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id.String(), nil
}
