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
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
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

// Domain-specific key types. Product codes and location/warehouse tags come
// from the upstream master-data system and are opaque to the analytics engine.
type (
	ProductCode   string
	LocationID    string
	WarehouseCode string
)

func (c ProductCode) String() string   { return string(c) }
func (l LocationID) String() string    { return string(l) }
func (w WarehouseCode) String() string { return string(w) }

// ParseProductCode parses a string into ProductCode
func ParseProductCode(s string) (ProductCode, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("product code cannot be empty")
	}
	return ProductCode(s), nil
}
