package domain

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money é um valor monetário em centavos (int64). Toda a aritmética e as
// comparações de preço acontecem em inteiros; nunca em float64, que
// introduziria erro de arredondamento binário nos filtros de faixa de preço.
type Money int64

// ParseMoney converte uma string decimal ("29.99", "100", "-5.50") em Money.
// Aceita no máximo duas casas decimais; qualquer outro formato é erro.
// O parse é feito dígito a dígito, sem passar por float64.
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("valor monetário vazio")
	}

	negative := false
	if raw[0] == '-' {
		negative = true
		raw = raw[1:]
	} else if raw[0] == '+' {
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		intPart = raw[:dot]
		fracPart = raw[dot+1:]
	}

	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("valor monetário inválido: %q", s)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("valor monetário com mais de duas casas decimais: %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	// Completa os centavos: "9.5" => 50 centavos.
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("valor monetário inválido: %q", s)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("valor monetário inválido: %q", s)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return Money(total), nil
}

// MustMoney é o helper para valores literais (seed e testes); entra em pânico
// com entrada inválida.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromCents constrói um Money a partir de centavos inteiros.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// Cents devolve o valor em centavos.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add soma dois valores (e.g. preço base + ajuste de variante).
func (m Money) Add(other Money) Money {
	return m + other
}

// String formata o valor decimal sem símbolo: "29.99".
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Display formata o valor para exibição na vitrine: "$29.99".
func (m Money) Display() string {
	return "$" + m.String()
}

// MarshalJSON serializa como literal numérico JSON (29.99, não "29.99").
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON aceita tanto o literal numérico quanto string decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implementa sql.Scanner para colunas NUMERIC(10,2) do PostgreSQL
// (o driver entrega []byte/string) e para inteiros de centavos.
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = 0
		return nil
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case int64:
		*m = Money(v)
		return nil
	case float64:
		// Último recurso para drivers que convertem NUMERIC em float;
		// arredonda para o centavo mais próximo, inclusive para ajustes
		// negativos de variante.
		*m = Money(int64(math.Round(v * 100)))
		return nil
	default:
		return fmt.Errorf("tipo não suportado para Money: %T", value)
	}
}

// Value implementa driver.Valuer: grava como string decimal ("29.99"),
// que o PostgreSQL converte para NUMERIC sem perda.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
