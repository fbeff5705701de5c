package form

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	formerrors "go-garderie/internal/form/errors"
)

// Form is one guardian's attendance-and-payment submission for a 4-week
// period. Timestamps are stored as RFC3339 strings so rows round-trip
// byte-for-byte; CreatedAt is set once at first persistence and never
// overwritten on update.
type Form struct {
	ID                string         `gorm:"column:id;type:text;primaryKey"`
	Office            string         `gorm:"column:office;type:text"`
	ChildName         string         `gorm:"column:child_name;type:text"`
	ParentName        string         `gorm:"column:parent_name;type:text"`
	ProviderName      string         `gorm:"column:provider_name;type:text"`
	EndDate           string         `gorm:"column:end_date;type:text"`
	Attendance        WeekEntries    `gorm:"column:attendance;type:text"`
	Payments          PaymentEntries `gorm:"column:payments;type:text"`
	ParentSignature   string         `gorm:"column:parent_signature;type:text"`
	ProviderSignature string         `gorm:"column:provider_signature;type:text"`
	CreatedAt         string         `gorm:"column:created_at;type:text;index"`
	Status            string         `gorm:"column:status;type:varchar(10)"`
	Signed            bool           `gorm:"column:signed;not null;default:false"`
	SignedAt          string         `gorm:"column:signed_at;type:text"`
}

func (Form) TableName() string {
	return "forms"
}

// WeekEntries is the attendance column: JSON text holding exactly
// WeeksPerForm week entries.
type WeekEntries []WeekEntry

func (w WeekEntries) Value() (driver.Value, error) {
	normalized := NormalizeWeeks(w)
	// BuildSigned validates codes on the API path; this guards direct writers.
	for _, entry := range normalized {
		for _, d := range entry.Days {
			if !d.Valid() {
				return nil, fmt.Errorf("encode attendance: %w", formerrors.ErrInvalidAttendanceCode)
			}
		}
	}
	b, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encode attendance: %w", err)
	}
	return string(b), nil
}

func (w *WeekEntries) Scan(src any) error {
	raw, err := rawColumn(src)
	if err != nil {
		return fmt.Errorf("attendance column: %w", err)
	}
	if len(raw) == 0 {
		*w = NormalizeWeeks(nil)
		return nil
	}
	var entries []WeekEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("decode attendance: %w", err)
	}
	// Shape is normalized here; code values outside the enumerated set are
	// kept as stored and masked by WeekEntry.DayAt at display time.
	*w = NormalizeWeeks(entries)
	return nil
}

// PaymentEntries is the payments column: JSON text holding exactly
// PaymentsPerForm installments.
type PaymentEntries []PaymentEntry

func (p PaymentEntries) Value() (driver.Value, error) {
	b, err := json.Marshal(NormalizePayments(p))
	if err != nil {
		return nil, fmt.Errorf("encode payments: %w", err)
	}
	return string(b), nil
}

func (p *PaymentEntries) Scan(src any) error {
	raw, err := rawColumn(src)
	if err != nil {
		return fmt.Errorf("payments column: %w", err)
	}
	if len(raw) == 0 {
		*p = NormalizePayments(nil)
		return nil
	}
	var entries []PaymentEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("decode payments: %w", err)
	}
	*p = NormalizePayments(entries)
	return nil
}

func rawColumn(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
