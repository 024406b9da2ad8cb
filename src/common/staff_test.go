package common

import (
	"cafe/src/models"
	"cafe/src/types"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffProfiles(t *testing.T) {
	gdb := setupDB(t)
	barista := seedUser(t, gdb, "barista@cafe.test", types.ROLE_EMPLOYEE)
	seedUser(t, gdb, "guest@cafe.test", types.ROLE_USER)
	salary := decimal.NewFromInt(1200)

	profile, err := CreateStaffProfile(&types.CreateStaffProfileRequestBody{
		UserID:    barista.ID,
		Position:  "barista",
		Salary:    &salary,
		ShiftTime: "morning",
	})
	require.NoError(t, err)
	require.NotNil(t, profile.User)
	assert.Equal(t, barista.Email, profile.User.Email)

	_, err = CreateStaffProfile(&types.CreateStaffProfileRequestBody{
		UserID:    barista.ID,
		Position:  "cashier",
		Salary:    &salary,
		ShiftTime: "evening",
	})
	var verr types.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "user_id")

	profile, err = UpdateStaffProfile(profile.ID, &types.UpdateStaffProfileRequestBody{Position: ptr("head barista")})
	require.NoError(t, err)
	assert.Equal(t, "head barista", profile.Position)

	staff, err := ListStaffUsers()
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, barista.ID, staff[0].ID)
	require.NotNil(t, staff[0].StaffProfile)
	assert.Equal(t, profile.ID, staff[0].StaffProfile.ID)

	require.NoError(t, DeleteStaffProfile(profile.ID))
	_, err = GetStaffProfile(profile.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestShiftWindow(t *testing.T) {
	setupDB(t)

	_, err := CreateShift(&types.CreateShiftRequestBody{Name: "Late", StartTime: "22:00", EndTime: "06:00"})
	var verr types.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "end_time")

	shift, err := CreateShift(&types.CreateShiftRequestBody{Name: "Morning", StartTime: "07:00", EndTime: "15:00"})
	require.NoError(t, err)
	assert.Empty(t, shift.Assignments)

	_, err = UpdateShift(shift.ID, &types.UpdateShiftRequestBody{EndTime: ptr("06:00")})
	require.ErrorAs(t, err, &verr)
}

func TestShiftAssignments(t *testing.T) {
	gdb := setupDB(t)
	anna := seedUser(t, gdb, "anna@cafe.test", types.ROLE_EMPLOYEE)
	omar := seedUser(t, gdb, "omar@cafe.test", types.ROLE_EMPLOYEE)

	_, err := CreateShift(&types.CreateShiftRequestBody{
		Name: "Morning", StartTime: "07:00", EndTime: "15:00",
		UserIDs: []uint{anna.ID},
	})
	var verr types.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "shift_date")

	_, err = CreateShift(&types.CreateShiftRequestBody{
		Name: "Morning", StartTime: "07:00", EndTime: "15:00",
		ShiftDate: ptr("2026-11-02"), UserIDs: []uint{anna.ID, 999},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "user_ids")

	shift, err := CreateShift(&types.CreateShiftRequestBody{
		Name: "Morning", StartTime: "07:00", EndTime: "15:00",
		ShiftDate: ptr("2026-11-02"), UserIDs: []uint{anna.ID, anna.ID, omar.ID},
	})
	require.NoError(t, err)
	require.Len(t, shift.Assignments, 2)
	assert.Equal(t, "2026-11-02", *shift.Assignments[0].ShiftDate)

	shift, err = UpdateShift(shift.ID, &types.UpdateShiftRequestBody{ShiftDate: ptr("2026-11-03")})
	require.NoError(t, err)
	for _, a := range shift.Assignments {
		assert.Equal(t, "2026-11-03", *a.ShiftDate)
	}

	shift, err = UpdateShift(shift.ID, &types.UpdateShiftRequestBody{
		ShiftDate: ptr("2026-11-04"), UserIDs: &[]uint{omar.ID},
	})
	require.NoError(t, err)
	require.Len(t, shift.Assignments, 1)
	assert.Equal(t, omar.ID, shift.Assignments[0].UserID)

	mine, err := UserShifts(omar.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Shift)
	assert.Equal(t, "Morning", mine[0].Shift.Name)

	none, err := UserShifts(anna.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, DeleteShift(shift.ID))
	var count int64
	gdb.Model(&models.ShiftUser{}).Count(&count)
	assert.Zero(t, count)
}
