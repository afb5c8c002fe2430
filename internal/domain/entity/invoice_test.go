package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hapkiduki/invoice-go/internal/domain/entity"
)

func TestCategoryIsValid(t *testing.T) {
	valid := []entity.Category{
		entity.CategoryBook,
		entity.CategoryFood,
		entity.CategoryElectronics,
		entity.CategoryOther,
	}
	for _, c := range valid {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}

	assert.False(t, entity.Category("furniture").IsValid())
	assert.False(t, entity.Category("").IsValid())
	assert.False(t, entity.Category("Book").IsValid(), "category match is case-sensitive")
}

func TestLineItemLineTotal(t *testing.T) {
	item := entity.LineItem{SKU: "A", Category: entity.CategoryBook, UnitPrice: 100, Qty: 2}
	assert.InDelta(t, 200, item.LineTotal(), 1e-9)

	free := entity.LineItem{SKU: "B", Category: entity.CategoryOther, UnitPrice: 0, Qty: 5}
	assert.Zero(t, free.LineTotal())
}

func TestHasMembershipRate(t *testing.T) {
	cases := []struct {
		membership string
		want       bool
	}{
		{entity.MembershipGold, true},
		{entity.MembershipPlatinum, true},
		{"none", false},
		{"silver", false},
		{"", false},
		{"Gold", false}, // tiers are case-sensitive
	}
	for _, tc := range cases {
		inv := &entity.Invoice{Membership: tc.membership}
		assert.Equal(t, tc.want, inv.HasMembershipRate(), "membership %q", tc.membership)
	}
}
