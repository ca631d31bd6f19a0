package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crania-dev/crania/internal/model"
)

func TestValidateSubtype(t *testing.T) {
	assert.NoError(t, validateSubtype(model.AccountTypeAsset, model.SubtypeCurrentAsset))
	assert.NoError(t, validateSubtype(model.AccountTypeExpense, model.SubtypeCostOfGoodsSold))
	assert.NoError(t, validateSubtype(model.AccountTypeAsset, ""), "subtype is optional")

	err := validateSubtype(model.AccountTypeRevenue, model.SubtypeCurrentAsset)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}
