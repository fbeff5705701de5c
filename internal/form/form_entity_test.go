package form

import (
	"testing"

	formerrors "go-garderie/internal/form/errors"

	"github.com/stretchr/testify/assert"
)

func TestWeekEntries_ValueScanRoundTrip(t *testing.T) {
	in := WeekEntries{
		{StartDate: "2024-01-01", Days: []Code{"P", "P", "A", "P", "P", "", ""}},
	}

	v, err := in.Value()
	assert.NoError(t, err)

	var out WeekEntries
	assert.NoError(t, out.Scan(v))

	assert.Len(t, out, WeeksPerForm)
	assert.Equal(t, "2024-01-01", out[0].StartDate)
	assert.Equal(t, Code("A"), out[0].Days[2])
	for _, w := range out {
		assert.Len(t, w.Days, DaysPerWeek)
	}

	// A second encode yields the same bytes: normalization is idempotent.
	v2, err := out.Value()
	assert.NoError(t, err)
	assert.Equal(t, v, v2)
}

func TestWeekEntries_ScanEmptyColumn(t *testing.T) {
	for _, src := range []any{nil, "", []byte{}} {
		var out WeekEntries
		assert.NoError(t, out.Scan(src))
		assert.Len(t, out, WeeksPerForm)
		for _, w := range out {
			assert.Len(t, w.Days, DaysPerWeek)
			assert.Equal(t, "", w.StartDate)
		}
	}
}

func TestWeekEntries_ScanShortStoredRow(t *testing.T) {
	// A row written by an older client with fewer weeks/days still loads as
	// the full 4x7 grid.
	var out WeekEntries
	err := out.Scan(`[{"start_date":"2024-01-01","days":["P"]}]`)
	assert.NoError(t, err)
	assert.Len(t, out, WeeksPerForm)
	assert.Equal(t, Code("P"), out[0].Days[0])
	assert.Equal(t, CodeEmpty, out[0].Days[6])
}

func TestWeekEntries_ValueRejectsInvalidCode(t *testing.T) {
	// Submissions are validated before they reach the store; a direct writer
	// bypassing that path must not persist an out-of-set code.
	in := WeekEntries{
		{StartDate: "2024-01-01", Days: []Code{"P", "X", "", "", "", "", ""}},
	}
	_, err := in.Value()
	assert.ErrorIs(t, err, formerrors.ErrInvalidAttendanceCode)
}

func TestWeekEntries_ScanRejectsGarbage(t *testing.T) {
	var out WeekEntries
	assert.Error(t, out.Scan("{not json"))
	assert.Error(t, out.Scan(42))
}

func TestPaymentEntries_ValueScanPreservesPresence(t *testing.T) {
	twenty := MoneyFromFloat(20)
	zero := MoneyFromFloat(0)
	in := PaymentEntries{
		{Date: "2024-01-05", Amount: &twenty, Balance: &zero},
	}

	v, err := in.Value()
	assert.NoError(t, err)

	var out PaymentEntries
	assert.NoError(t, out.Scan(v))

	assert.Len(t, out, PaymentsPerForm)
	assert.Equal(t, Money(2000), *out[0].Amount)
	assert.Equal(t, Money(0), *out[0].Balance, "recorded zero survives as zero")
	assert.Nil(t, out[1].Amount, "never-entered amount survives as unset")
	assert.Nil(t, out[1].Balance)
}

func TestPaymentEntries_ScanEmptyColumn(t *testing.T) {
	var out PaymentEntries
	assert.NoError(t, out.Scan(nil))
	assert.Len(t, out, PaymentsPerForm)
}
