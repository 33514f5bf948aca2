package serializer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/salesparser"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

func enrichedSale(matched bool) types.EnrichedTransaction {
	e := types.EnrichedTransaction{
		Transaction: types.Transaction{
			TransactionID: "T001",
			Date:          "2024-01-05",
			ProductID:     "P101",
			ProductName:   "Widget",
			Quantity:      10,
			UnitPrice:     decimal.RequireFromString("19.99"),
			CustomerID:    "C001",
			Region:        "North",
		},
		APICategory: types.NoMatchValue,
		APIBrand:    types.NoMatchValue,
	}
	if matched {
		e.APICategory = "beauty"
		e.APIBrand = "Essence"
		e.APIRating = 4.94
		e.APIMatch = true
	}
	return e
}

func TestGenerate_HeaderAndColumns(t *testing.T) {
	out := string(Generate([]types.EnrichedTransaction{enrichedSale(true)}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "T001|2024-01-05|P101|Widget|10|19.99|C001|North|beauty|Essence|4.94|true", lines[1])
}

func TestGenerate_UnmatchedDefaults(t *testing.T) {
	out := string(Generate([]types.EnrichedTransaction{enrichedSale(false)}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "T001|2024-01-05|P101|Widget|10|19.99|C001|North|N/A|N/A|0|false", lines[1])
}

func TestGenerate_EmptyIdentifiersPlaceholder(t *testing.T) {
	e := enrichedSale(false)
	e.CustomerID = ""
	e.Region = ""

	out := string(Generate([]types.EnrichedTransaction{e}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	fields := strings.Split(lines[1], "|")
	require.Len(t, fields, 12)
	assert.Equal(t, types.NoMatchValue, fields[6])
	assert.Equal(t, types.NoMatchValue, fields[7])
}

func TestGenerate_EmptySetIsHeaderOnly(t *testing.T) {
	out := string(Generate(nil))
	assert.Equal(t, Header+"\n", out)
}

// The first eight columns must survive a round trip through the feed parser.
func TestGenerate_RoundTrip(t *testing.T) {
	original := []types.EnrichedTransaction{enrichedSale(true), enrichedSale(false)}
	original[1].TransactionID = "T002"
	original[1].Quantity = 1000
	original[1].UnitPrice = decimal.RequireFromString("1299.5")

	out := string(Generate(original))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")[1:]

	for i, line := range lines {
		fields := strings.Split(line, "|")
		require.Len(t, fields, 12)

		parsed, err := salesparser.ParseLine(strings.Join(fields[:8], "|"))
		require.NoError(t, err)

		want := original[i].Transaction
		assert.Equal(t, want.TransactionID, parsed.TransactionID)
		assert.Equal(t, want.Date, parsed.Date)
		assert.Equal(t, want.ProductID, parsed.ProductID)
		assert.Equal(t, want.ProductName, parsed.ProductName)
		assert.Equal(t, want.Quantity, parsed.Quantity)
		assert.True(t, want.UnitPrice.Equal(parsed.UnitPrice))
		assert.Equal(t, want.CustomerID, parsed.CustomerID)
		assert.Equal(t, want.Region, parsed.Region)
	}
}
