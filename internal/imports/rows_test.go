package imports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFieldMatchesMangledHeaders(t *testing.T) {
	r := Row{
		"customer":      "Ana",
		" Product ":     "GA",
		"QUANTITY":      "2",
		"Order\nNumber": "A1",
	}

	assert.Equal(t, "Ana", r.Field(ColumnCustomer))
	assert.Equal(t, "GA", r.Field(ColumnProduct))
	assert.Equal(t, "2", r.Field(ColumnQuantity))
	assert.Equal(t, "A1", r.Field(ColumnOrderID))
	assert.Empty(t, r.Field("Missing"))
}

func TestReadCSV(t *testing.T) {
	data := strings.Join([]string{
		"Customer,Product,Quantity,OrderNumber",
		"Ana,GA Ticket,2,A1",
		",,,",
		"Ben,VIP Ticket,1,B2,extra",
	}, "\n")

	rows, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	// The all-empty record is dropped; the ragged one survives.
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Field(ColumnCustomer))
	assert.Equal(t, "B2", rows[1].Field(ColumnOrderID))
}

func TestReadCSVEmptyInput(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a zip archive"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}
