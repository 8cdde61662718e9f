package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelTypeRegistry(t *testing.T) {
	expected := []string{
		"Office", "Agent", "Seller", "Buyer",
		"Listing", "Sale", "Commission", "MonthlyCommission",
	}

	assert.Len(t, ModelTypeRegistry, len(expected))
	for _, name := range expected {
		_, exists := ModelTypeRegistry[name]
		assert.True(t, exists, "expected %s to be in registry", name)
	}
}

func TestMigrationOrderCoversRegistry(t *testing.T) {
	assert.Len(t, MigrationOrder(), len(ModelTypeRegistry))
}
