package ttom

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest(t *testing.T) {
	raw, err := buildManifest(bookingRequestFixture())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, manifestHeader, rows[0])
	assert.Equal(t, []string{"ORD-1", "CHAIR", "940171", "4", "7.500", "30.000", "49.99", "199.96", "EUR"}, rows[1])
	assert.Equal(t, "", rows[2][2])
	assert.Equal(t, []string{"ORD-2", "LAMP", "", "2", "1.250", "2.500", "25.00", "50.00", "EUR"}, rows[3])
}

func TestBuildPackingList(t *testing.T) {
	raw, err := buildPackingList(bookingRequestFixture())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, packingListHeader, rows[0])
	assert.Equal(t, []string{"1", "ORD-1", "CHAIR", "4", "30.000", "Shop GmbH", "Importer Ltd"}, rows[1])
	assert.Equal(t, "3", rows[3][0])
	assert.Equal(t, "ORD-2", rows[3][1])
}
