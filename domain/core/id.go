package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ProfileID ID
	RunID     ID
)

// NewProfileID creates a persona profile identifier with the conventional
// "profile_" prefix used throughout persisted records.
func NewProfileID() ProfileID {
	return ProfileID("profile_" + NewID().String())
}

// NewRunID creates a generation-run identifier.
func NewRunID() RunID {
	return RunID("run_" + NewID().String())
}

// String conversions for domain IDs
func (id ProfileID) String() string { return ID(id).String() }
func (id RunID) String() string     { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}
