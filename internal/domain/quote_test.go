package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eduquote/internal/domain"
)

var (
	ukProgram    = domain.Program{Country: "İngiltere"}
	maltaProgram = domain.Program{Country: "Malta"}
)

func TestCurrencySymbol(t *testing.T) {
	require.Equal(t, "£", domain.CurrencySymbol(ukProgram))
	require.Equal(t, "€", domain.CurrencySymbol(maltaProgram))
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in      string
		program domain.Program
		want    string
	}{
		{"995", ukProgram, "£995"},
		{"1250", ukProgram, "£1,250"},
		{" 2450 ", maltaProgram, "€2,450"},
		{"£1,250", ukProgram, "£1,250"},
		{"1.234,56", ukProgram, "£1,234.56"},
		{"1,234.56", ukProgram, "£1,234.56"},
		{"749,50", maltaProgram, "€749.5"},
		{"Fiyat Teklifi Alınız", ukProgram, "Fiyat Teklifi Alınız"},
		{"", ukProgram, ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, domain.FormatPrice(c.in, c.program), "input %q", c.in)
	}
}

func TestTransferRegionAndAirports(t *testing.T) {
	require.Equal(t, "London", domain.TransferRegion("London", "", "İngiltere"))
	require.Equal(t, "London", domain.TransferRegion("Londra", "", "İngiltere"))
	require.Equal(t, "London", domain.TransferRegion("", "King's College London", "İngiltere"))
	require.Equal(t, "Bedford", domain.TransferRegion("Bedford", "", "İngiltere"))
	require.Equal(t, "Manchester", domain.TransferRegion("Manchester", "", "İngiltere"))
	require.Equal(t, "Wellington", domain.TransferRegion("Wellington (Somerset)", "", "İngiltere"))
	require.Equal(t, "Malta", domain.TransferRegion("Valletta", "", "Malta"))
	// unknown destinations default to London
	require.Equal(t, "London", domain.TransferRegion("Edinburgh", "", "İskoçya"))

	require.Len(t, domain.AirportsFor("London"), 5)
	require.Equal(t, []string{"Manchester Airport"}, domain.AirportsFor("Manchester"))
	require.Empty(t, domain.AirportsFor("Atlantis"))

	got := domain.TransferAirports(domain.Program{City: "Malta", Country: "Malta"})
	require.Equal(t, []string{"Malta International Airport"}, got)

	// returned slices are copies
	a := domain.AirportsFor("Wellington")
	a[0] = "mutated"
	require.Equal(t, "Exeter Airport", domain.AirportsFor("Wellington")[0])
}
