package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name   string `csv:"Name"`
	Amount string `csv:"Amount"`
}

func TestWriteAndReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rows.csv")
	rows := []testRow{
		{Name: "COMPRA", Amount: "1234.56"},
		{Name: "CARGA", Amount: "500"},
	}

	require.NoError(t, WriteCSVFile(rows, path))

	got, err := ReadCSVFile[testRow](path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteCSVFile_NilRecords(t *testing.T) {
	var rows []testRow
	err := WriteCSVFile(rows, filepath.Join(t.TempDir(), "rows.csv"))
	assert.Error(t, err)
}

func TestReadCSVFile_MissingFile(t *testing.T) {
	_, err := ReadCSVFile[testRow](filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
