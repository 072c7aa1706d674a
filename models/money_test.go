package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyJSONRoundTrip(t *testing.T) {
	for _, value := range []string{"0", "0.5", "12.99", "19.90", "1250.00", "0.01"} {
		d, err := decimal.NewFromString(value)
		require.NoError(t, err)
		m := NewMoney(d)

		body, err := json.Marshal(m)
		require.NoError(t, err)

		var back Money
		require.NoError(t, json.Unmarshal(body, &back))
		assert.True(t, m.Equal(back.Decimal), "value %s changed to %s", value, back.String())
	}
}

func TestMoneyMarshalsAsNumber(t *testing.T) {
	m := MoneyFromFloat(24.50)
	body, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "24.5", string(body))

	// Inside a struct the field must stay unquoted too.
	type wrapper struct {
		Price Money `json:"price"`
	}
	body, err = json.Marshal(wrapper{Price: MoneyFromFloat(12.99)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12.99}`, string(body))
}

func TestMoneyUnmarshalAcceptsQuotedForm(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"18.75"`), &m))
	assert.Equal(t, "18.75", m.StringFixed(2))
}

func TestMoneyMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1299), MoneyFromFloat(12.99).MinorUnits())
	assert.Equal(t, int64(100), MoneyFromFloat(1.00).MinorUnits())
	assert.Equal(t, int64(5), MoneyFromFloat(0.05).MinorUnits())
	assert.Equal(t, int64(0), Money{}.MinorUnits())
}

func TestMoneyFromMinorUnits(t *testing.T) {
	assert.Equal(t, "12.99", MoneyFromMinorUnits(1299).StringFixed(2))
	assert.Equal(t, "0.05", MoneyFromMinorUnits(5).StringFixed(2))

	// Minor-unit conversion inverts exactly.
	m := MoneyFromFloat(1250.40)
	assert.True(t, m.Equal(MoneyFromMinorUnits(m.MinorUnits()).Decimal))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan([]byte("19.90")))
	assert.Equal(t, "19.90", m.StringFixed(2))

	require.NoError(t, m.Scan("7.25"))
	assert.Equal(t, "7.25", m.StringFixed(2))

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(struct{}{}))
}
