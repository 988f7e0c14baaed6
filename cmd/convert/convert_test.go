package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"romamo/ibkr-flex/internal/common"
	"romamo/ibkr-flex/internal/config"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../internal/flexparser/testdata/statement.xml"

func newContainer(t *testing.T, delimiter string) (*container.Container, *logging.MockLogger) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Flex.BaseURL = "https://example.invalid"
	cfg.Flex.MaxRetries = 1
	cfg.Flex.TimeoutSeconds = 5
	cfg.CSV.Delimiter = delimiter
	mockLog := logging.NewMockLogger()
	c, err := container.NewContainer(cfg, container.WithLogger(mockLog))
	require.NoError(t, err)
	return c, mockLog
}

func readCSV(t *testing.T, path string, delimiter rune) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = delimiter
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestRun_WritesOneRowPerRecord(t *testing.T) {
	c, mockLog := newContainer(t, ";")
	dir := filepath.Join(t.TempDir(), "out")

	written, err := Run(c, fixture, dir, true, nil)
	require.NoError(t, err)
	require.Len(t, written, 3)

	trades := readCSV(t, filepath.Join(dir, common.TradesFile), ';')
	require.Len(t, trades, 3)
	assert.Equal(t, "AccountID", trades[0][0])

	cash := readCSV(t, filepath.Join(dir, common.CashTransactionsFile), ';')
	assert.Len(t, cash, 2)

	report := readCSV(t, filepath.Join(dir, common.CashReportFile), ';')
	assert.Len(t, report, 2)

	assert.True(t, mockLog.HasEntry("INFO", "Conversion completed successfully!"))
}

func TestRun_Errors(t *testing.T) {
	c, _ := newContainer(t, ",")

	_, err := Run(c, fixture, "", false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")

	_, err = Run(c, filepath.Join(t.TempDir(), "missing.xml"), t.TempDir(), false, nil)
	require.Error(t, err)
}

func TestConvertCommand_Metadata(t *testing.T) {
	assert.Equal(t, "convert", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.Contains(t, Cmd.Long, "trades.csv")
}
