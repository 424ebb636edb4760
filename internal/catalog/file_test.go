package catalog_test

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rocket-stove/internal/catalog"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// createTestExcel builds an in-memory workbook whose first sheet holds rows.
func createTestExcel(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestLoadFile_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "rocket_stove.csv", []byte(rocketStove))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rocket Stove Build", "Stove Test"}, c.Titles)

	viaSource, err := catalog.FileSource{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, c, viaSource)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestLoadFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFile(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrResourceUnavailable)
}

func TestLoadFile_MalformedKeepsRow(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.csv", []byte("title,url\nA,https://a\nB\n"))

	_, err := catalog.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrMalformedRecord)

	var recErr *catalog.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 3, recErr.Row)
	assert.Equal(t, 1, recErr.Fields)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestLoadFile_Excel(t *testing.T) {
	t.Parallel()

	data := createTestExcel(t, [][]string{
		{"title", "url", "material"},
		{"Rocket Stove Build", "https://youtu.be/abc123", "brick"},
		{"Stove Test", "https://youtu.be/def456"},
		{},
		{"Stove Test", "https://youtu.be/ghi789"},
	})
	path := writeFile(t, t.TempDir(), "rocket_stove.XLSX", data)

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Rocket Stove Build", "Stove Test", "Stove Test"}, c.Titles)
	assert.Equal(t, []string{"https://youtu.be/def456", "https://youtu.be/ghi789"}, c.URLs["Stove Test"])
}

func TestParseExcel(t *testing.T) {
	t.Parallel()

	t.Run("header only", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.ParseExcel(bytes.NewReader(createTestExcel(t, [][]string{{"title", "url"}})))
		require.NoError(t, err)
		assert.Empty(t, c.Titles)
		assert.Empty(t, c.URLs)
	})

	t.Run("empty sheet", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.ParseExcel(bytes.NewReader(createTestExcel(t, nil)))
		assert.ErrorIs(t, err, catalog.ErrMalformedRecord)
	})

	t.Run("single field row", func(t *testing.T) {
		t.Parallel()
		data := createTestExcel(t, [][]string{{"title", "url"}, {"A", "https://a"}, {"B"}})
		_, err := catalog.ParseExcel(bytes.NewReader(data))
		require.ErrorIs(t, err, catalog.ErrMalformedRecord)

		var recErr *catalog.RecordError
		require.True(t, errors.As(err, &recErr))
		assert.Equal(t, 3, recErr.Row)
	})

	t.Run("not a workbook", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.ParseExcel(bytes.NewReader([]byte("not excel")))
		assert.ErrorIs(t, err, catalog.ErrResourceUnavailable)
	})
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "rocket_stove.csv", []byte(rocketStove))

	sum, err := catalog.Checksum(path)
	require.NoError(t, err)
	assert.Equal(t, sha256.Sum256([]byte(rocketStove)), sum)

	_, err = catalog.Checksum(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, catalog.ErrResourceUnavailable)
}
