package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	formerrors "go-garderie/internal/form/errors"
)

const (
	StatusDraft  = "draft"
	StatusSigned = "signed"

	// A fiche always covers 4 weeks of 7 days and 4 payment installments.
	// Missing data is represented by empty values, never by shorter slices.
	WeeksPerForm    = 4
	DaysPerWeek     = 7
	PaymentsPerForm = 4

	dateLayout = "2006-01-02"
)

// Code is one daily attendance mark on the grid.
type Code string

const (
	CodeEmpty Code = ""
)

// The full set the grid dropdown offers. Only the first eight carry a legend
// entry on the printed fiche; the rest are bureau-specific marks.
var validCodes = map[Code]struct{}{
	"":   {},
	"P":  {},
	"P½": {},
	"A":  {},
	"A½": {},
	"R":  {},
	"R½": {},
	"F":  {},
	"F½": {},
	"AN": {},
	"AD": {},
	"L":  {},
	"S":  {},
	"S½": {},
}

func (c Code) Valid() bool {
	_, ok := validCodes[c]
	return ok
}

// WeekEntry is one grid row: the week's start date plus 7 day codes,
// index 0..6 = Monday..Sunday.
type WeekEntry struct {
	StartDate string `json:"start_date"`
	Days      []Code `json:"days"`
}

// DayAt is the bounds-checked accessor for a day code. Out-of-range indexes
// and values outside the enumerated set read as empty; the stored value is
// left untouched.
func (w WeekEntry) DayAt(i int) Code {
	if i < 0 || i >= len(w.Days) {
		return CodeEmpty
	}
	c := w.Days[i]
	if !c.Valid() {
		return CodeEmpty
	}
	return c
}

// PaymentEntry is one recorded installment. Amount and Balance are nil when
// the guardian never entered a value, which renders blank instead of 0.00.
type PaymentEntry struct {
	Date    string `json:"date"`
	Amount  *Money `json:"amount,omitempty"`
	Balance *Money `json:"balance,omitempty"`
}

// Money is an amount in cents. Integer storage keeps the stored rows exact;
// the JSON form is the usual 2-decimal number.
type Money int64

func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse money %q: %w", s, err)
	}
	*m = MoneyFromFloat(f)
	return nil
}

// NormalizeWeeks forces the attendance shape to exactly WeeksPerForm entries
// of DaysPerWeek codes each: short input is zero-padded, long input truncated.
func NormalizeWeeks(in []WeekEntry) WeekEntries {
	out := make(WeekEntries, WeeksPerForm)
	for i := 0; i < WeeksPerForm; i++ {
		days := make([]Code, DaysPerWeek)
		if i < len(in) {
			out[i].StartDate = in[i].StartDate
			for j := 0; j < DaysPerWeek && j < len(in[i].Days); j++ {
				days[j] = in[i].Days[j]
			}
		}
		out[i].Days = days
	}
	return out
}

// NormalizePayments forces exactly PaymentsPerForm entries.
func NormalizePayments(in []PaymentEntry) PaymentEntries {
	out := make(PaymentEntries, PaymentsPerForm)
	for i := 0; i < PaymentsPerForm && i < len(in); i++ {
		out[i] = in[i]
	}
	return out
}

// BuildSigned assembles a complete signed fiche from the raw submission.
// Identity fields default to empty strings; the signature image is the one
// hard requirement. The result is normalized and safe to persist.
func BuildSigned(req SignFormRequest, now time.Time) (*Form, error) {
	if strings.TrimSpace(req.ParentSignature) == "" {
		return nil, formerrors.ErrSignatureRequired
	}

	weeks := make([]WeekEntry, len(req.Attendance))
	for i, w := range req.Attendance {
		days := make([]Code, len(w.Days))
		for j, d := range w.Days {
			days[j] = Code(d)
		}
		weeks[i] = WeekEntry{StartDate: w.StartDate, Days: days}
	}
	attendance := NormalizeWeeks(weeks)

	for _, w := range attendance {
		if err := checkDate(w.StartDate); err != nil {
			return nil, err
		}
		for _, d := range w.Days {
			if !d.Valid() {
				return nil, formerrors.ErrInvalidAttendanceCode
			}
		}
	}

	entries := make([]PaymentEntry, len(req.Payments))
	for i, p := range req.Payments {
		entry := PaymentEntry{Date: p.Date}
		if p.Amount != nil {
			m := MoneyFromFloat(*p.Amount)
			entry.Amount = &m
		}
		if p.Balance != nil {
			m := MoneyFromFloat(*p.Balance)
			entry.Balance = &m
		}
		entries[i] = entry
	}
	payments := NormalizePayments(entries)

	for _, p := range payments {
		if err := checkDate(p.Date); err != nil {
			return nil, err
		}
		if (p.Amount != nil && *p.Amount < 0) || (p.Balance != nil && *p.Balance < 0) {
			return nil, formerrors.ErrNegativeAmount
		}
	}

	if err := checkDate(req.EndDate); err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("form_%d", now.Unix())
	}
	nowISO := now.UTC().Format(time.RFC3339)

	return &Form{
		ID:              id,
		Office:          req.Office,
		ChildName:       req.ChildName,
		ParentName:      req.ParentName,
		ProviderName:    req.ProviderName,
		EndDate:         req.EndDate,
		Attendance:      attendance,
		Payments:        payments,
		ParentSignature: req.ParentSignature,
		CreatedAt:       nowISO,
		Status:          StatusSigned,
		Signed:          true,
		SignedAt:        nowISO,
	}, nil
}

func checkDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return formerrors.ErrInvalidDateFormat
	}
	return nil
}

// DisplayDate resolves a stored date string for form prefill. Empty means no
// value; a malformed string falls back to today for display only, the stored
// value itself is never rewritten.
func DisplayDate(s string, now time.Time) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return now, true
	}
	return t, true
}
