package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"29.99", 2999},
		{"100", 10000},
		{"0.5", 50},
		{"0.05", 5},
		{"-5.50", -550},
		{"0", 0},
	}
	for _, tc := range cases {
		m, err := ParseMoney(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.cents, m.Cents(), tc.in)
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10.999", "1.2.3", "."} {
		_, err := ParseMoney(in)
		assert.Error(t, err, in)
	}
}

func TestMoney_StringAndDisplay(t *testing.T) {
	assert.Equal(t, "29.99", MustMoney("29.99").String())
	assert.Equal(t, "$29.99", MustMoney("29.99").Display())
	assert.Equal(t, "5.00", MustMoney("5").String())
	assert.Equal(t, "-5.50", MustMoney("-5.50").String())
	assert.Equal(t, "0.05", MoneyFromCents(5).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(MustMoney("29.99"))
	assert.NoError(t, err)
	// Literal numérico, não string.
	assert.Equal(t, "29.99", string(out))

	var m Money
	assert.NoError(t, json.Unmarshal([]byte("29.99"), &m))
	assert.Equal(t, MustMoney("29.99"), m)

	assert.NoError(t, json.Unmarshal([]byte(`"59.99"`), &m))
	assert.Equal(t, MustMoney("59.99"), m)
}

func TestMoney_Scan(t *testing.T) {
	var m Money

	assert.NoError(t, m.Scan([]byte("129.99")))
	assert.Equal(t, MustMoney("129.99"), m)

	assert.NoError(t, m.Scan("59.99"))
	assert.Equal(t, MustMoney("59.99"), m)

	assert.NoError(t, m.Scan(int64(2999)))
	assert.Equal(t, MustMoney("29.99"), m)

	assert.Error(t, m.Scan(true))
}

func TestMoney_ScanFloatRoundsSigned(t *testing.T) {
	var m Money

	// O fallback de float deve arredondar para o centavo mais próximo nos
	// dois sinais (ajuste de variante pode ser negativo).
	assert.NoError(t, m.Scan(float64(5.99)))
	assert.Equal(t, MustMoney("5.99"), m)

	assert.NoError(t, m.Scan(float64(-5.99)))
	assert.Equal(t, MustMoney("-5.99"), m)
}

func TestMoney_Value(t *testing.T) {
	v, err := MustMoney("69.99").Value()
	assert.NoError(t, err)
	assert.Equal(t, "69.99", v)
}

func TestMoney_Add(t *testing.T) {
	base := MustMoney("69.99")
	adj := MustMoney("5.00")
	assert.Equal(t, MustMoney("74.99"), base.Add(adj))
}
