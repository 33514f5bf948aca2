package salesparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_ValidLine(t *testing.T) {
	tx, err := ParseLine("T001|2024-01-05|P101|Widget|10|19.99|C001|North")
	require.NoError(t, err)

	assert.Equal(t, "T001", tx.TransactionID)
	assert.Equal(t, "2024-01-05", tx.Date)
	assert.Equal(t, "P101", tx.ProductID)
	assert.Equal(t, "Widget", tx.ProductName)
	assert.Equal(t, 10, tx.Quantity)
	assert.Equal(t, "19.99", tx.UnitPrice.String())
	assert.Equal(t, "C001", tx.CustomerID)
	assert.Equal(t, "North", tx.Region)
}

func TestParseLine_StripsThousandsSeparators(t *testing.T) {
	tx, err := ParseLine("T002|2024-01-06|P102|Deluxe, Widget|1,000|1,299.50|C002|South")
	require.NoError(t, err)

	assert.Equal(t, "Deluxe Widget", tx.ProductName)
	assert.Equal(t, 1000, tx.Quantity)
	assert.Equal(t, "1299.5", tx.UnitPrice.String())
}

func TestParseLine_WrongFieldCount(t *testing.T) {
	_, err := ParseLine("T001|2024-01-05|P101|Widget|10|19.99|C001")
	assert.Error(t, err)

	_, err = ParseLine("T001|2024-01-05|P101|Widget|10|19.99|C001|North|extra")
	assert.Error(t, err)
}

func TestParseLine_NonNumericFields(t *testing.T) {
	_, err := ParseLine("T001|2024-01-05|P101|Widget|ten|19.99|C001|North")
	assert.Error(t, err)

	_, err = ParseLine("T001|2024-01-05|P101|Widget|10|cheap|C001|North")
	assert.Error(t, err)

	// Fractional quantity is not an integer.
	_, err = ParseLine("T001|2024-01-05|P101|Widget|10.5|19.99|C001|North")
	assert.Error(t, err)
}

func TestParseLines_DropsSilentlyAndPreservesOrder(t *testing.T) {
	lines := []string{
		"T001|2024-01-05|P101|Widget|10|19.99|C001|North",
		"T002|2024-01-05|P102|Gadget|7",                          // wrong field count
		"T003|2024-01-06|P103|Gizmo|x|5.00|C003|South",           // bad quantity
		"T004|2024-01-07|P104|Doohickey|2|25.00|C004|East",       //
		"T005|2024-01-08|P105|Whatsit|3|abc|C005|West",           // bad price
	}

	parsed, dropped := ParseLines(lines)

	require.Len(t, parsed, 2)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, "T001", parsed[0].TransactionID)
	assert.Equal(t, "T004", parsed[1].TransactionID)
}

func TestParseLines_Empty(t *testing.T) {
	parsed, dropped := ParseLines(nil)
	assert.Empty(t, parsed)
	assert.Zero(t, dropped)
}
