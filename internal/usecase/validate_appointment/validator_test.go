package validate_appointment

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	policy, err := businesshours.DefaultPolicy()
	require.NoError(t, err)
	return NewValidator(policy)
}

func validRequest(loc *time.Location) *Request {
	return &Request{
		Title:       "Kickoff",
		Description: "Project kickoff",
		Location:    "Phoenix",
		Type:        domain.TypeIntroductory,
		CustomerID:  1,
		ContactID:   2,
		UserID:      3,
		Start:       time.Date(2024, 3, 4, 9, 0, 0, 0, loc),
		End:         time.Date(2024, 3, 4, 10, 0, 0, 0, loc),
		Zone:        loc,
	}
}

func summary(id, customerID int64, loc *time.Location, startH, startM, endH, endM int) domain.AppointmentSummary {
	return domain.AppointmentSummary{
		ID:         id,
		CustomerID: customerID,
		Interval: domain.Interval{
			Start: time.Date(2024, 3, 4, startH, startM, 0, 0, loc),
			End:   time.Date(2024, 3, 4, endH, endM, 0, 0, loc),
		},
	}
}

func TestValidator_EndToEnd(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	t.Run("touching existing appointment is valid", func(t *testing.T) {
		res := v.Validate(validRequest(ny), []domain.AppointmentSummary{summary(10, 1, ny, 8, 0, 9, 0)})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.FailedChecks())
	})

	t.Run("overlapping existing appointment is named", func(t *testing.T) {
		res := v.Validate(validRequest(ny), []domain.AppointmentSummary{summary(10, 1, ny, 8, 30, 9, 30)})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Customer has overlapping appointment from 2024-03-04 08:30 - 2024-03-04 09:30."}, res.Errors)
		assert.Equal(t, []string{CheckOverlap}, res.FailedChecks())
	})
}

func TestValidator_RequiredFields(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	req := validRequest(ny)
	req.Title = "   "
	req.Description = ""
	req.Location = "\t"
	req.Type = "Lunch"
	req.CustomerID = 0
	req.ContactID = 0
	req.UserID = 0

	res := v.Validate(req, nil)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		MsgTitleRequired,
		MsgDescriptionRequired,
		MsgLocationRequired,
		MsgTypeRequired,
		MsgCustomerRequired,
		MsgContactRequired,
		MsgUserRequired,
	}, res.Errors)
	assert.Equal(t, []string{CheckRequired}, res.FailedChecks())
}

func TestValidator_DegenerateIntervalSkipsLaterChecks(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"equal endpoints", time.Date(2024, 3, 4, 9, 0, 0, 0, ny), time.Date(2024, 3, 4, 9, 0, 0, 0, ny)},
		{"end before start", time.Date(2024, 3, 4, 23, 0, 0, 0, ny), time.Date(2024, 3, 4, 6, 0, 0, 0, ny)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(ny)
			req.Title = ""
			req.Start = tt.start
			req.End = tt.end

			res := v.Validate(req, []domain.AppointmentSummary{summary(10, 1, ny, 0, 0, 23, 45)})

			assert.False(t, res.Valid)
			assert.Equal(t, []string{MsgTitleRequired, MsgStartBeforeEnd}, res.Errors)
			assert.Equal(t, []string{CheckRequired, CheckInterval}, res.FailedChecks())
		})
	}
}

func TestValidator_AccumulatesHoursAndOverlap(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	req := validRequest(ny)
	req.Start = time.Date(2024, 3, 4, 7, 0, 0, 0, ny)
	req.End = time.Date(2024, 3, 4, 9, 0, 0, 0, ny)

	res := v.Validate(req, []domain.AppointmentSummary{summary(10, 1, ny, 8, 0, 8, 30)})

	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		MsgOutsideOpenHours,
		"Customer has overlapping appointment from 2024-03-04 08:00 - 2024-03-04 08:30.",
	}, res.Errors)
	assert.Equal(t, []string{CheckBusinessHours, CheckOverlap}, res.FailedChecks())
}

func TestValidator_SpansMidnightAtHeadquarters(t *testing.T) {
	// 18:00-20:00 в Лос-Анджелесе приходится на 21:00-23:00 в Нью-Йорке.
	// Встреча 20:30-21:30 LA пересекает полночь в головном офисе и отклоняется.
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	v := newTestValidator(t)

	req := validRequest(la)
	req.Start = time.Date(2024, 3, 4, 20, 30, 0, 0, la)
	req.End = time.Date(2024, 3, 4, 21, 30, 0, 0, la)

	res := v.Validate(req, nil)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{MsgOutsideOpenHours}, res.Errors)
}

func TestValidator_OverlapScan(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	tests := []struct {
		name      string
		id        int64
		existing  []domain.AppointmentSummary
		wantValid bool
		wantErr   string
	}{
		{
			name:      "editing appointment skips itself",
			id:        10,
			existing:  []domain.AppointmentSummary{summary(10, 1, ny, 9, 0, 10, 0)},
			wantValid: true,
		},
		{
			name:      "other customer is ignored",
			existing:  []domain.AppointmentSummary{summary(11, 2, ny, 9, 0, 10, 0)},
			wantValid: true,
		},
		{
			name:      "degenerate stored interval is ignored",
			existing:  []domain.AppointmentSummary{summary(12, 1, ny, 9, 30, 9, 30)},
			wantValid: true,
		},
		{
			name: "only first conflict is reported",
			existing: []domain.AppointmentSummary{
				summary(13, 1, ny, 8, 0, 9, 0),
				summary(14, 1, ny, 9, 45, 11, 0),
				summary(15, 1, ny, 9, 15, 9, 30),
			},
			wantErr: "Customer has overlapping appointment from 2024-03-04 09:45 - 2024-03-04 11:00.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(ny)
			req.ID = tt.id

			res := v.Validate(req, tt.existing)

			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantErr != "" {
				assert.Equal(t, []string{tt.wantErr}, res.Errors)
			}
		})
	}
}

func TestValidator_ConflictFormattedInCallerZone(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	// хранилище возвращает интервалы в UTC
	existing := domain.AppointmentSummary{
		ID:         10,
		CustomerID: 1,
		Interval: domain.Interval{
			Start: time.Date(2024, 3, 4, 13, 30, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC),
		},
	}

	res := v.Validate(validRequest(ny), []domain.AppointmentSummary{existing})

	assert.Equal(t, []string{"Customer has overlapping appointment from 2024-03-04 08:30 - 2024-03-04 09:30."}, res.Errors)
}

func TestValidator_TextFieldLength(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	t.Run("limit is inclusive and counts characters", func(t *testing.T) {
		req := validRequest(ny)
		req.Title = strings.Repeat("я", domain.MaxTextFieldLength)

		res := v.Validate(req, nil)

		assert.True(t, res.Valid)
	})

	t.Run("too long fields are reported in order", func(t *testing.T) {
		req := validRequest(ny)
		req.Title = strings.Repeat("a", domain.MaxTextFieldLength+1)
		req.Location = strings.Repeat("b", domain.MaxTextFieldLength+1)

		res := v.Validate(req, nil)

		assert.False(t, res.Valid)
		assert.Equal(t, []string{MsgTitleTooLong, MsgLocationTooLong}, res.Errors)
		assert.Equal(t, []string{CheckLength}, res.FailedChecks())
	})
}

func TestValidator_CandidateReadInCallerZone(t *testing.T) {
	ny := newYork(t)
	v := newTestValidator(t)

	// 09:00-10:00 on the clock, built in UTC, but the caller is in New York
	req := validRequest(time.UTC)
	req.Zone = ny

	t.Run("both checks see 09:00 New York", func(t *testing.T) {
		res := v.Validate(req, []domain.AppointmentSummary{summary(10, 1, ny, 9, 0, 10, 0)})

		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Customer has overlapping appointment from 2024-03-04 09:00 - 2024-03-04 10:00."}, res.Errors)
	})

	t.Run("interval carries the caller zone", func(t *testing.T) {
		interval := req.Interval()

		assert.Equal(t, ny, interval.Start.Location())
		assert.True(t, interval.Start.Equal(time.Date(2024, 3, 4, 9, 0, 0, 0, ny)))
		assert.True(t, interval.End.Equal(time.Date(2024, 3, 4, 10, 0, 0, 0, ny)))
	})

	t.Run("04:00 New York instant is not a conflict", func(t *testing.T) {
		res := v.Validate(req, []domain.AppointmentSummary{summary(10, 1, time.UTC, 9, 0, 10, 0)})

		assert.True(t, res.Valid)
	})
}
