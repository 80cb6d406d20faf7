package accounts

import (
	"regexp"

	"dentman/internal/core/apperror"
)

// phonePattern accepts an optional leading +, one to three digits, then
// 4 to 14 more characters drawn from digits, spaces, hyphens and parentheses.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{1,3}[0-9 \-()]{4,14}$`)

// ValidateRoles checks phone format and cross-field role consistency.
// All checks are independent: every firing violation is collected, so the
// caller sees the full picture in one rejection instead of one at a time.
func ValidateRoles(u *User) []apperror.FieldViolation {
	var violations []apperror.FieldViolation

	if u.PhoneNumber != nil && *u.PhoneNumber != "" && !phonePattern.MatchString(*u.PhoneNumber) {
		violations = append(violations, apperror.FieldViolation{
			Field:   "phone_number",
			Message: "Phone number format is invalid",
		})
	}

	dentistRole := u.IsDentist || u.IsDentistAssistant
	managementRole := u.IsHR || u.IsFinancial

	if u.IsDentistStaff && !dentistRole {
		msg := "Dentist staff member has to be a dentist or a dentist assistant"
		violations = append(violations,
			apperror.FieldViolation{Field: "is_dentist", Message: msg},
			apperror.FieldViolation{Field: "is_dentist_assistant", Message: msg},
		)
	}
	if dentistRole && !u.IsDentistStaff {
		violations = append(violations, apperror.FieldViolation{
			Field:   "is_dentist_staff",
			Message: "A dentist or a dentist assistant has to be marked as dentist staff",
		})
	}

	if u.IsManagementStaff && !managementRole {
		msg := "Management staff member has to be in HR or financial"
		violations = append(violations,
			apperror.FieldViolation{Field: "is_hr", Message: msg},
			apperror.FieldViolation{Field: "is_financial", Message: msg},
		)
	}
	if managementRole && !u.IsManagementStaff {
		violations = append(violations, apperror.FieldViolation{
			Field:   "is_management_staff",
			Message: "An HR or financial member has to be marked as management staff",
		})
	}

	if (u.IsDentistStaff || u.IsManagementStaff) && !u.IsWorker {
		violations = append(violations, apperror.FieldViolation{
			Field:   "is_worker",
			Message: "A staff member has to be a worker",
		})
	}

	return violations
}
