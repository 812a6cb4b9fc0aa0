package reminder

import (
	"testing"
	"time"

	"bloodconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.ReminderRequest)
		field  string
	}{
		{name: "short name", mutate: func(r *types.ReminderRequest) { r.DonorName = "J" }, field: "donorName"},
		{name: "email without at", mutate: func(r *types.ReminderRequest) { r.DonorEmail = "jane.example.com" }, field: "donorEmail"},
		{name: "email without domain", mutate: func(r *types.ReminderRequest) { r.DonorEmail = "jane@" }, field: "donorEmail"},
		{name: "email with display name", mutate: func(r *types.ReminderRequest) { r.DonorEmail = "Jane <jane@x.com>" }, field: "donorEmail"},
		{name: "phone too short", mutate: func(r *types.ReminderRequest) { r.DonorPhone = "555-1234" }, field: "donorPhone"},
		{name: "phone letters", mutate: func(r *types.ReminderRequest) { r.DonorPhone = "call me maybe" }, field: "donorPhone"},
		{name: "missing date", mutate: func(r *types.ReminderRequest) { r.LastDonationDate = "" }, field: "lastDonationDate"},
		{name: "bad date", mutate: func(r *types.ReminderRequest) { r.LastDonationDate = "2024-02-30" }, field: "lastDonationDate"},
		{name: "wrong date format", mutate: func(r *types.ReminderRequest) { r.LastDonationDate = "01/02/2024" }, field: "lastDonationDate"},
		{name: "future date", mutate: func(r *types.ReminderRequest) { r.LastDonationDate = "2024-07-20" }, field: "lastDonationDate"},
		{name: "before 1900", mutate: func(r *types.ReminderRequest) { r.LastDonationDate = "1899-12-31" }, field: "lastDonationDate"},
		{name: "lowercase blood type", mutate: func(r *types.ReminderRequest) { r.BloodType = "a+" }, field: "bloodType"},
		{name: "unknown blood type", mutate: func(r *types.ReminderRequest) { r.BloodType = "C+" }, field: "bloodType"},
		{name: "negative days", mutate: func(r *types.ReminderRequest) { r.DaysSinceLastDonation = -1 }, field: "daysSinceLastDonation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := Validate(req, fixedNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrValidation)

			var verr *types.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidate_AcceptsBoundaries(t *testing.T) {
	req := validRequest()
	req.LastDonationDate = "2024-07-19"
	req.DaysSinceLastDonation = 0
	assert.NoError(t, Validate(req, fixedNow))

	req.LastDonationDate = "1900-01-01"
	assert.NoError(t, Validate(req, fixedNow))

	req.DonorPhone = "(555) 123-4567"
	assert.NoError(t, Validate(req, fixedNow))
}

func TestValidate_CollectsAllFields(t *testing.T) {
	err := Validate(&types.ReminderRequest{}, fixedNow)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "donorName")
	assert.Contains(t, verr.Fields, "donorEmail")
	assert.Contains(t, verr.Fields, "donorPhone")
	assert.Contains(t, verr.Fields, "lastDonationDate")
	assert.Contains(t, verr.Fields, "bloodType")
}

func TestDaysSince(t *testing.T) {
	date, err := ParseDate("2024-01-01", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 200, DaysSince(date, fixedNow))
	assert.Equal(t, 0, DaysSince(fixedNow, fixedNow))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@x.com"))
	assert.True(t, ValidEmail(" jane@x.com "))

	for _, bad := range []string{"", "not-an-email", "not-an-email, victim@evil.example", "Jane <jane@x.com>", "a@b.com,c@d.com"} {
		assert.False(t, ValidEmail(bad), bad)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+1 (555) 123-4567"))
	assert.False(t, ValidPhone("555-1234"))
	assert.False(t, ValidPhone("spam http://spam.example"))
}
