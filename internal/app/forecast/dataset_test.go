package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Historical_Sales,Promotion,Day_of_Week,Month,Product_ID,Demand
100,0,1,1,A,50
120,1,2,1,B,64
90,0,3,2,A,47
`

func TestParseCSV_Success(t *testing.T) {
	t.Parallel()

	dataset, err := ParseCSV([]byte(sampleCSV))
	require.NoError(t, err)
	require.Len(t, dataset.Rows, 3)

	assert.Equal(t, 100.0, dataset.Rows[0].HistoricalSales)
	assert.Equal(t, 1.0, dataset.Rows[1].Promotion)
	assert.Equal(t, "B", dataset.Rows[1].ProductID)
	assert.Equal(t, 47.0, dataset.Rows[2].Demand)
}

func TestParseCSV_MissingDemandColumn(t *testing.T) {
	t.Parallel()

	csv := "Historical_Sales,Promotion,Day_of_Week,Month,Product_ID\n100,0,1,1,A\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Demand")
}

func TestParseCSV_NonNumericValue(t *testing.T) {
	t.Parallel()

	csv := "Historical_Sales,Promotion,Day_of_Week,Month,Product_ID,Demand\nmany,0,1,1,A,50\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	csv := "Historical_Sales,Promotion,Day_of_Week,Month,Product_ID,Demand\n"
	dataset, err := ParseCSV([]byte(csv))
	require.NoError(t, err)
	assert.Empty(t, dataset.Rows)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV([]byte(""))
	require.Error(t, err)
}

func TestParseCSV_MalformedQuotes(t *testing.T) {
	t.Parallel()

	csv := "Historical_Sales,Promotion,Day_of_Week,Month,Product_ID,Demand\n\"100,0,1,1,A,50\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)
}
