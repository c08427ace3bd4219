package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPropertyType(t *testing.T) {
	for _, pt := range []PropertyType{
		PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo,
		PropertyTypeTownhouse, PropertyTypeLand, PropertyTypeCommercial,
	} {
		assert.True(t, ValidPropertyType(string(pt)), string(pt))
	}

	assert.False(t, ValidPropertyType("Castle"))
	assert.False(t, ValidPropertyType("house"))
	assert.False(t, ValidPropertyType(""))
}

func TestFullAddress(t *testing.T) {
	p := Property{
		Address: "88 Grand St",
		City:    "New York",
		State:   "NY",
		ZipCode: "10013",
	}
	assert.Equal(t, "88 Grand St, New York, NY 10013", p.FullAddress())
}
