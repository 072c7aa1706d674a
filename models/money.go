package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency amount stored as DECIMAL(10,2) and serialized as a
// plain JSON number. Values with at most two decimal places survive the
// round-trip exactly.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func MoneyFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f).Round(2)}
}

// MoneyFromMinorUnits converts an amount in minor currency units (cents)
// back to a Money value.
func MoneyFromMinorUnits(units int64) Money {
	return Money{decimal.New(units, -2)}
}

// MinorUnits returns the amount in minor currency units (cents for KRW-less
// currencies like USD), as required by the payment processor.
func (m Money) MinorUnits() int64 {
	return m.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (m Money) MarshalJSON() ([]byte, error) {
	// Unquoted, unlike decimal.Decimal's default string form.
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		// Clients may still send the quoted form.
		var inner decimal.Decimal
		if qErr := inner.UnmarshalJSON(data); qErr != nil {
			return fmt.Errorf("invalid money value %s: %w", data, err)
		}
		d = inner
	}
	m.Decimal = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}

func (m *Money) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		m.Decimal = d
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		m.Decimal = d
	case float64:
		m.Decimal = decimal.NewFromFloat(v)
	case int64:
		m.Decimal = decimal.NewFromInt(v)
	case nil:
		m.Decimal = decimal.Zero
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}

func (Money) GormDataType() string {
	return "decimal(10,2)"
}
