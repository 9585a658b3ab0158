package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type PriceType string

const (
	PriceNet   PriceType = "Net"
	PriceGross PriceType = "Gross"
)

type TransferType string

const (
	TransferSolo        TransferType = "Solo"
	TransferMultiPerson TransferType = "Multi-Person"
	TransferAccompanied TransferType = "Accompanied (UM)"
)

// QuoteDetails is the ephemeral pricing/logistics input for one proposal.
// It is never persisted and never folded back into a Program.
type QuoteDetails struct {
	AgencyName      string
	ConsultantName  string
	StudentCount    string
	GroupLeaderCount string
	PricePerStudent string
	PriceType       PriceType
	ExtraLeaderPrice string
	DurationWeeks   string
	Notes           string
	TransferAirport string
	TransferType    TransferType
	StartDate       string
	EndDate         string
}

// CurrencySymbol picks the quote currency from the program's country:
// Malta programs price in euro, everything else in pound sterling.
func CurrencySymbol(p Program) string {
	if strings.Contains(strings.ToLower(p.Country), "malta") {
		return "€"
	}
	return "£"
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice normalizes free-text price input to a currency string with
// grouped thousands ("1250" -> "£1,250"). Input that does not parse as a
// number is returned trimmed but otherwise untouched.
func FormatPrice(raw string, p Program) string {
	trimmed := strings.TrimSpace(raw)
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, trimmed)
	if digits == "" {
		return trimmed
	}
	// "1.234,56" and "1,234.56" both appear in agent input; whichever
	// separator comes last is the decimal one.
	if strings.Contains(digits, ",") && strings.Contains(digits, ".") {
		if strings.LastIndex(digits, ",") > strings.LastIndex(digits, ".") {
			digits = strings.ReplaceAll(digits, ".", "")
			digits = strings.Replace(digits, ",", ".", 1)
		} else {
			digits = strings.ReplaceAll(digits, ",", "")
		}
	} else {
		digits = strings.Replace(digits, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return trimmed
	}
	return pricePrinter.Sprintf("%s%v", CurrencySymbol(p),
		number.Decimal(v, number.MaxFractionDigits(2)))
}
