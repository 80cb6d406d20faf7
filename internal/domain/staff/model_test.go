package staff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
	"dentman/internal/core/types"
)

func newTestEntity() entity.BaseEntity { return entity.NewBaseEntity() }

func TestWorker_DeriveActivity(t *testing.T) {
	w := NewWorker("user-1")
	assert.True(t, w.IsActive)

	end := time.Now().UTC()
	w.ToWhen = &end
	w.DeriveActivity()
	assert.False(t, w.IsActive)

	// Reopening the window reactivates the worker.
	w.ToWhen = nil
	w.DeriveActivity()
	assert.True(t, w.IsActive)
}

func TestWorker_Validate_EndBeforeStart(t *testing.T) {
	w := NewWorker("user-1")
	end := w.SinceWhen.AddDate(0, 0, -1)
	w.ToWhen = &end

	err := w.Validate(t.Context())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestInaccessibility_WholeDayNeedsNoTimes(t *testing.T) {
	i := &Inaccessibility{
		WorkerID:   "w-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsWholeDay: true,
	}
	i.BaseEntity = newTestEntity()

	assert.NoError(t, i.Validate(t.Context()))
}

func TestInaccessibility_PartialDayMissingBothTimes(t *testing.T) {
	i := &Inaccessibility{
		WorkerID:   "w-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsWholeDay: false,
	}
	i.BaseEntity = newTestEntity()

	err := i.Validate(t.Context())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	require.Len(t, appErr.Violations, 2)
	assert.Equal(t, "since", appErr.Violations[0].Field)
	assert.Equal(t, "Please type since when is inaccessibility", appErr.Violations[0].Message)
	assert.Equal(t, "until", appErr.Violations[1].Field)
	assert.Equal(t, "Please type until when is inaccessibility", appErr.Violations[1].Message)
}

func TestInaccessibility_PartialDayMissingOneTime(t *testing.T) {
	since := "09:00"
	i := &Inaccessibility{
		WorkerID:   "w-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsWholeDay: false,
		Since:      &since,
	}
	i.BaseEntity = newTestEntity()

	err := i.Validate(t.Context())

	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "until", appErr.Violations[0].Field)
}

func TestInaccessibility_PartialDayWithBothTimes(t *testing.T) {
	since, until := "09:00", "12:30"
	i := &Inaccessibility{
		WorkerID:   "w-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsWholeDay: false,
		Since:      &since,
		Until:      &until,
	}
	i.BaseEntity = newTestEntity()

	assert.NoError(t, i.Validate(t.Context()))
}

func TestAvailability_WeekdayBounds(t *testing.T) {
	for _, day := range []int{0, 8, -1} {
		a := &Availability{WorkerID: "w-1", Weekday: day, Since: "08:00", Until: "16:00"}
		a.BaseEntity = newTestEntity()
		assert.Error(t, a.Validate(t.Context()), "weekday %d", day)
	}

	for day := 1; day <= 7; day++ {
		a := &Availability{WorkerID: "w-1", Weekday: day, Since: "08:00", Until: "16:00"}
		a.BaseEntity = newTestEntity()
		assert.NoError(t, a.Validate(t.Context()), "weekday %d", day)
	}
}

func TestEmployment_Validate(t *testing.T) {
	base := func() *Employment {
		e := &Employment{
			WorkerID:         "w-1",
			RepresentativeID: "m-1",
			Type:             EmploymentFullTime,
			SinceWhen:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			AgreementDate:    time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		}
		e.BaseEntity = newTestEntity()
		return e
	}

	t.Run("valid open-ended contract", func(t *testing.T) {
		assert.NoError(t, base().Validate(t.Context()))
	})

	t.Run("unknown type", func(t *testing.T) {
		e := base()
		e.Type = "freelance"
		assert.Error(t, e.Validate(t.Context()))
	})

	t.Run("limited time requires end date", func(t *testing.T) {
		e := base()
		e.IsForLimitedTime = true
		assert.Error(t, e.Validate(t.Context()))

		until := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		e.UntilWhen = &until
		assert.NoError(t, e.Validate(t.Context()))
	})

	t.Run("negative salary", func(t *testing.T) {
		e := base()
		salary := types.MustMoney("-100")
		e.Salary = &salary
		assert.Error(t, e.Validate(t.Context()))
	})
}

func TestBonus_Validate(t *testing.T) {
	b := &Bonus{
		WorkerID:          "w-1",
		ManagementStaffID: "m-1",
		Amount:            types.MustMoney("500.00"),
		Date:              time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Reason:            "quarterly target",
	}
	b.BaseEntity = newTestEntity()
	assert.NoError(t, b.Validate(t.Context()))

	b.Amount = types.Zero()
	assert.Error(t, b.Validate(t.Context()))
}
