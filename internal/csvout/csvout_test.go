package csvout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

func TestWriteAndCountRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "units.csv")

	rows := []model.Unit{
		{UnitID: 1, UnitCode: "ICU", UnitName: "Intensive Care Unit", TotalBeds: 20, IsActive: true},
		{UnitID: 2, UnitCode: "ED", UnitName: "Emergency Department", TotalBeds: 30, IsActive: true},
	}
	require.NoError(t, Write(path, model.UnitHeader, rows))

	n, err := CountRows(path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "unit_id,unit_code")
	require.Contains(t, string(data), "1,ICU,Intensive Care Unit")
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, Write(path, model.UnitHeader, []model.Unit{}))

	n, err := CountRows(path)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCountRowsMissingFile(t *testing.T) {
	_, err := CountRows(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
