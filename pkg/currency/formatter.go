package currency

import (
	"fmt"
	"math"
)

type style struct {
	symbol    string
	separator string
	decimals  int
}

var styles = map[string]style{
	"USD": {symbol: "$", separator: ",", decimals: 2},
	"EUR": {symbol: "€", separator: ",", decimals: 2},
	"GBP": {symbol: "£", separator: ",", decimals: 2},
	"JPY": {symbol: "¥", separator: ",", decimals: 0},
	"IDR": {symbol: "IDR ", separator: ".", decimals: 0},
}

// Format renders an amount in the locale convention of its currency.
// Unknown codes fall back to "CODE 1,234.56".
func Format(amount float64, code string) string {
	st, ok := styles[code]
	if !ok {
		st = style{symbol: code + " ", separator: ",", decimals: 2}
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	shift := math.Pow(10, float64(st.decimals))
	rounded := math.Round(amount*shift) / shift

	whole := math.Floor(rounded)
	intStr := addThousandsSeparator(fmt.Sprintf("%.0f", whole), st.separator)

	result := st.symbol + intStr
	if st.decimals > 0 {
		frac := int(math.Round((rounded - whole) * shift))
		result += fmt.Sprintf(".%0*d", st.decimals, frac)
	}
	if negative {
		result = "-" + result
	}
	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
