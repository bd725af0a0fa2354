package uuidgen

import (
	"github.com/google/uuid"
	"github.com/pregen/shop-api/internal/domain/contract"
)

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new random UUID string, used as the user document id.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
