package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Zero permanece zero", value: 0, expected: 0},
		{name: "Sem empate arredonda normalmente", value: 3.169, expected: 3.17},
		{name: "Empate com vizinho par abaixo arredonda para baixo", value: float64(1125) / 1000, expected: 1.12},
		{name: "Empate com vizinho par acima arredonda para cima", value: float64(1375) / 1000, expected: 1.38},
		{name: "Empate em 162.5 centavos fica no par 162", value: float64(1625) / 1000, expected: 1.62},
		{name: "Empate em 187.5 centavos vai ao par 188", value: float64(1875) / 1000, expected: 1.88},
		{name: "Valor negativo segue a mesma regra", value: -1.125, expected: -1.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundMoney(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Zero permanece zero", value: 0, expected: 0},
		{name: "Arredonda para cima a partir da metade", value: 1.125, expected: 1.13},
		{name: "Arredonda para baixo abaixo da metade", value: 1.124, expected: 1.12},
		{name: "Percentual de CTR", value: float64(9) / 896 * 100, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.value))
		})
	}
}
