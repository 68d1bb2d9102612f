package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundMoney arredonda valores monetários com duas casas decimais usando
// arredondamento banqueiro (half-to-even), para não acumular viés nas somas
func RoundMoney(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.RoundToEven(f*100) / 100
}
