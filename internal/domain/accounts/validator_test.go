package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/apperror"
)

func strPtr(s string) *string { return &s }

func fields(violations []apperror.FieldViolation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Field)
	}
	return out
}

func TestValidateRoles_PhoneNumbers(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"123", false}, // too short
		{"1234567890", true},
		{"+1234567890", true},
		{"123-456-7890", true},
		{"123 456 789", true},
		{"+48 (22) 123-45-67", true},
		{"abc-def", false},
		{"+12345678901234567890", false}, // too long
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			u := NewUser("p@example.com", "x")
			u.PhoneNumber = strPtr(tc.phone)

			violations := ValidateRoles(u)

			if tc.ok {
				assert.Empty(t, violations)
			} else {
				require.Len(t, violations, 1)
				assert.Equal(t, "phone_number", violations[0].Field)
			}
		})
	}
}

func TestValidateRoles_EmptyPhoneIsAllowed(t *testing.T) {
	u := NewUser("p@example.com", "x")
	assert.Empty(t, ValidateRoles(u))

	u.PhoneNumber = strPtr("")
	assert.Empty(t, ValidateRoles(u))
}

func TestValidateRoles_ConsistentDentistPasses(t *testing.T) {
	u := NewUser("d@example.com", "x")
	u.IsWorker = true
	u.IsDentistStaff = true
	u.IsDentist = true

	assert.Empty(t, ValidateRoles(u))
}

func TestValidateRoles_DentistWithoutStaffFlag(t *testing.T) {
	u := NewUser("d@example.com", "x")
	u.IsWorker = true
	u.IsDentist = true
	u.IsDentistStaff = false

	violations := ValidateRoles(u)

	require.Len(t, violations, 1)
	assert.Equal(t, "is_dentist_staff", violations[0].Field)
}

func TestValidateRoles_StaffWithoutDentistRole(t *testing.T) {
	u := NewUser("d@example.com", "x")
	u.IsWorker = true
	u.IsDentistStaff = true

	violations := ValidateRoles(u)

	// Attached to both candidate role fields.
	assert.ElementsMatch(t, []string{"is_dentist", "is_dentist_assistant"}, fields(violations))
}

func TestValidateRoles_ManagementStaffWithoutRole(t *testing.T) {
	u := NewUser("m@example.com", "x")
	u.IsWorker = true
	u.IsManagementStaff = true

	violations := ValidateRoles(u)

	assert.ElementsMatch(t, []string{"is_hr", "is_financial"}, fields(violations))
}

func TestValidateRoles_HRWithoutManagementFlag(t *testing.T) {
	u := NewUser("m@example.com", "x")
	u.IsWorker = true
	u.IsHR = true

	violations := ValidateRoles(u)

	require.Len(t, violations, 1)
	assert.Equal(t, "is_management_staff", violations[0].Field)
}

func TestValidateRoles_StaffRequiresWorker(t *testing.T) {
	u := NewUser("d@example.com", "x")
	u.IsDentistStaff = true
	u.IsDentist = true
	u.IsWorker = false

	violations := ValidateRoles(u)

	require.Len(t, violations, 1)
	assert.Equal(t, "is_worker", violations[0].Field)
}

func TestValidateRoles_CollectsAllViolationsTogether(t *testing.T) {
	u := NewUser("broken@example.com", "x")
	u.PhoneNumber = strPtr("123")
	u.IsDentistStaff = true  // no dentist role behind it
	u.IsManagementStaff = true // no management role behind it
	u.IsWorker = false

	violations := ValidateRoles(u)

	assert.ElementsMatch(t,
		[]string{"phone_number", "is_dentist", "is_dentist_assistant", "is_hr", "is_financial", "is_worker"},
		fields(violations))
}

func TestUserValidate_WrapsViolations(t *testing.T) {
	u := NewUser("d@example.com", "x")
	u.IsDentist = true

	err := u.Validate(t.Context())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "is_dentist_staff", appErr.Violations[0].Field)
}
