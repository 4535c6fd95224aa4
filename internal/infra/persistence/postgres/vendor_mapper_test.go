package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendir/internal/infra/persistence/model"
)

func TestToVendorDomain_OpeningHoursOrderedByDay(t *testing.T) {
	data := &model.VendorProfileModel{
		ID: 1,
		OpeningHours: []*model.OpeningHourModel{
			{ID: 10, VendorID: 1, DayOfWeek: 5, OpensAt: "10:00", ClosesAt: "18:00"},
			{ID: 11, VendorID: 1, DayOfWeek: 0, IsClosed: true},
			{ID: 12, VendorID: 1, DayOfWeek: 2, OpensAt: "09:00", ClosesAt: "17:00"},
		},
	}

	vendor := toVendorDomain(data)

	require.Len(t, vendor.OpeningHours, 3)
	assert.Equal(t, 0, vendor.OpeningHours[0].DayOfWeek)
	assert.Equal(t, 2, vendor.OpeningHours[1].DayOfWeek)
	assert.Equal(t, 5, vendor.OpeningHours[2].DayOfWeek)
}

func TestToVendorDomain_Nil(t *testing.T) {
	assert.Nil(t, toVendorDomain(nil))
}
