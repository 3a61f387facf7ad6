package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	data, err := WriteWorkbook(sampleViews())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Len(t, sheets, 2)

	customer, err := f.GetCellValue(sheets[0], "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Contoso A/S", customer)

	header, err := f.GetCellValue(sheets[0], "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Product", header)

	vendor, err := f.GetCellValue(sheets[0], "A3")
	assert.NoError(t, err)
	assert.Equal(t, "Microsoft", vendor)

	amount, err := f.GetCellValue(sheets[1], "G4")
	assert.NoError(t, err)
	assert.Equal(t, "90.00 (100.00 before discount)", amount)
}

func TestWriteWorkbook_SheetNamesBounded(t *testing.T) {
	views := sampleViews()
	views[0].DisplayName = "An Extremely Long Customer Display Name ApS"

	data, err := WriteWorkbook(views)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	for _, s := range f.GetSheetList() {
		assert.LessOrEqual(t, len(s), 31)
	}
}
