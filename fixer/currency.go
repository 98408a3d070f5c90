package fixer

import (
	"strconv"

	"golang.org/x/text/message"
)

// The currency of a gig fee or invoice amount.
// default: "SEK"
type Currency string

const (
	SEK Currency = "SEK"
	NOK Currency = "NOK"
	DKK Currency = "DKK"
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	PLN Currency = "PLN"
	ISK Currency = "ISK"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

var Currencies = []Currency{
	SEK,
	NOK,
	DKK,
	EUR,
	USD,
	GBP,
	CHF,
	PLN,
	ISK,
	JPY,
	CAD,
	AUD,
}

func FromString(code string) Currency {
	switch code {
	case "SEK":
		return SEK
	case "NOK":
		return NOK
	case "DKK":
		return DKK
	case "EUR":
		return EUR
	case "USD":
		return USD
	case "GBP":
		return GBP
	case "CHF":
		return CHF
	case "PLN":
		return PLN
	case "ISK":
		return ISK
	case "JPY":
		return JPY
	case "CAD":
		return CAD
	case "AUD":
		return AUD
	default:
		return SEK
	}
}

// Symbol returns the symbol for each fixer currency.
func (c Currency) Symbol() string {
	switch c {
	case SEK, NOK, DKK, ISK:
		return "kr"
	case EUR:
		return "€"
	case USD:
		return "$"
	case GBP:
		return "£"
	case CHF:
		return "Fr."
	case PLN:
		return "zł"
	case JPY:
		return "¥"
	case CAD:
		return "C$"
	case AUD:
		return "A$"
	default:
		return ""
	}
}

func SupportedCurrency(code string) bool {
	for _, v := range Currencies {
		if code == string(v) {
			return true
		}
	}

	return false
}

func GetCurrencySymbol(currency string) (string, bool) {
	if SupportedCurrency(currency) {
		return FromString(currency).Symbol(), true
	}

	return currency, false
}

func CodeToLabel(code string) string {
	if SupportedCurrency(code) {
		return string(FromString(code))
	}

	return code
}

func FormatCurrencyAmountFloat(p *message.Printer, amount float64, fracDigits int, currency string) string {
	symbol, ok := GetCurrencySymbol(currency)

	precision := strconv.Itoa(fracDigits)
	if !ok {
		part := "%." + precision + "f %s"
		return p.Sprintf(part, amount, currency)
	}

	part := "%s%." + precision + "f"

	return p.Sprintf(part, symbol, amount)
}
