package flexparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romamo/ibkr-flex/internal/flexerror"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
	"romamo/ibkr-flex/internal/parser"
)

var _ parser.FullParser = (*Parser)(nil)

func newTestParser() (*Parser, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return NewParser(logger), logger
}

func TestParseFile_Statement(t *testing.T) {
	p, _ := newTestParser()

	resp, err := p.ParseFile(filepath.Join("testdata", "statement.xml"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Portfolio Transactions", *resp.QueryName)
	assert.Equal(t, "AF", *resp.Type)
	require.Len(t, resp.FlexStatements, 1)

	stmt := resp.FlexStatements[0]
	assert.Equal(t, "U1234567", *stmt.AccountID)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *stmt.FromDate)
	assert.Equal(t, time.Date(2026, 1, 1, 8, 30, 15, 0, time.UTC), *stmt.WhenGenerated)
	require.Len(t, stmt.Trades, 2)
	require.Len(t, stmt.CashTransactions, 1)

	first, second := stmt.Trades[0], stmt.Trades[1]
	assert.Equal(t, "4GLD", *first.Symbol)
	assert.Equal(t, "AAPL", *second.Symbol)

	assert.Equal(t, models.Buy, *first.BuySell)
	assert.Equal(t, models.TradeExchange, *first.TransactionType)
	assert.Equal(t, models.AssetStock, *first.AssetCategory)
	assert.True(t, decimal.RequireFromString("-1185.20").Equal(*first.Proceeds))
	assert.False(t, *first.IsAPIOrder)
	assert.NotNil(t, first.Notes)
	assert.Empty(t, first.Notes)
	assert.Equal(t, time.Date(2025, 12, 12, 9, 30, 12, 0, time.UTC), *first.DateTime)

	assert.Equal(t, models.OrderTypeMultiple, *second.OrderType)
	assert.Equal(t, []models.Code{models.CodeClosing, models.CodePartial}, second.Notes)
	assert.Nil(t, second.TradePrice)
	assert.Nil(t, second.Expiry)
	assert.Equal(t, time.Date(2025, 12, 15, 15, 59, 59, 0, time.UTC), *second.DateTime)

	cash := stmt.CashTransactions[0]
	assert.Equal(t, models.CashDividends, *cash.Type)
	assert.Equal(t, []models.Code{models.CodeInterestReversal, models.CodeAccrualPosting}, cash.Code)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), *cash.DateTime)
	assert.True(t, decimal.RequireFromString("2.6").Equal(*cash.Amount))

	require.Len(t, stmt.CashReport, 1)
	assert.Equal(t, "BASE_SUMMARY", *stmt.CashReport[0].Currency)
	assert.True(t, decimal.RequireFromString("10000").Equal(*stmt.CashReport[0].StartingCash))
}

func TestParse_LegacyLayouts(t *testing.T) {
	p, _ := newTestParser()

	f, err := os.Open(filepath.Join("testdata", "legacy_cash_report.xml"))
	require.NoError(t, err)
	defer f.Close()

	resp, err := p.Parse(f)
	require.NoError(t, err)
	require.Len(t, resp.FlexStatements, 1)

	stmt := resp.FlexStatements[0]
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), *stmt.FromDate)
	assert.Equal(t, time.Date(2021, 1, 2, 10, 10, 10, 0, time.UTC), *stmt.WhenGenerated)
	assert.Empty(t, stmt.Trades)

	require.Len(t, stmt.CashTransactions, 2)
	assert.Equal(t, models.CashDepositsWithdrawals, *stmt.CashTransactions[0].Type)
	assert.Empty(t, stmt.CashTransactions[0].Code)
	assert.Equal(t, models.CashACATS, *stmt.CashTransactions[1].Type)

	require.Len(t, stmt.CashReport, 2)
	assert.Equal(t, "CHF", *stmt.CashReport[0].Currency)
	assert.Equal(t, "BASE_SUMMARY", *stmt.CashReport[1].Currency)
}

func TestParseBytes_CashReportInfoRows(t *testing.T) {
	p, _ := newTestParser()
	doc := `<FlexQueryResponse><FlexStatements><FlexStatement accountId="U1">
<CashReport><CashReportInfo currency="EUR" endingCash="12.5"/></CashReport>
</FlexStatement></FlexStatements></FlexQueryResponse>`

	resp, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, resp.FlexStatements[0].CashReport, 1)
	assert.Equal(t, "EUR", *resp.FlexStatements[0].CashReport[0].Currency)
}

func TestParse_WrongRoot(t *testing.T) {
	p, _ := newTestParser()

	resp, err := p.ParseBytes([]byte(`<FlexStatementResponse><Status>Fail</Status></FlexStatementResponse>`))
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, flexerror.ErrFormat))

	var ferr *flexerror.InvalidFormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "FlexStatementResponse", ferr.Actual)
}

func TestParse_MalformedXML(t *testing.T) {
	p, _ := newTestParser()

	resp, err := p.Parse(strings.NewReader("not xml at all"))
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, flexerror.ErrFormat))
}

func TestParse_NoStatements(t *testing.T) {
	p, _ := newTestParser()

	resp, err := p.ParseBytes([]byte(`<FlexQueryResponse queryName="Empty" type="AF"/>`))
	require.NoError(t, err)
	assert.NotNil(t, resp.FlexStatements)
	assert.Empty(t, resp.FlexStatements)
}

func TestParse_UnknownCodeAbortsParse(t *testing.T) {
	p, _ := newTestParser()
	doc := `<FlexQueryResponse><FlexStatements><FlexStatement accountId="U1">
<CashTransactions><CashTransaction amount="1" code="Po;NOPE"/></CashTransactions>
</FlexStatement></FlexStatements></FlexQueryResponse>`

	resp, err := p.ParseBytes([]byte(doc))
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, flexerror.ErrUnknownCode))
	assert.Contains(t, err.Error(), "CashTransaction 0")
}

func TestParse_IgnoresChildElementsAndText(t *testing.T) {
	p, _ := newTestParser()
	doc := `<FlexQueryResponse><FlexStatements><FlexStatement accountId="U1">
<Trades><Trade symbol="MSFT"><symbol>IGNORED</symbol>text</Trade></Trades>
<OpenPositions><OpenPosition symbol="X"/></OpenPositions>
</FlexStatement></FlexStatements></FlexQueryResponse>`

	resp, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, resp.FlexStatements[0].Trades, 1)
	assert.Equal(t, "MSFT", *resp.FlexStatements[0].Trades[0].Symbol)
}

func TestParse_NonUTF8Encoding(t *testing.T) {
	p, _ := newTestParser()
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<FlexQueryResponse><FlexStatements><FlexStatement accountId=\"U1\"><Trades>" +
		"<Trade description=\"Soci\xe9t\xe9 G\xe9n\xe9rale\"/>" +
		"</Trades></FlexStatement></FlexStatements></FlexQueryResponse>"

	resp, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Société Générale", *resp.FlexStatements[0].Trades[0].Description)
}

func TestParse_LogsDroppedAttributes(t *testing.T) {
	p, logger := newTestParser()

	_, err := p.ParseFile(filepath.Join("testdata", "statement.xml"))
	require.NoError(t, err)

	found := false
	for _, e := range logger.GetEntriesByLevel("DEBUG") {
		if v, ok := e.FieldValue(logging.FieldAttribute); ok && v == "futureAttribute" {
			found = true
		}
	}
	assert.True(t, found, "dropped attribute should be logged")
	assert.True(t, logger.HasEntry("INFO", "Parsed Flex Query report"))
}

func TestParseFile_Missing(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateFormat(t *testing.T) {
	p, _ := newTestParser()

	tests := []struct {
		name     string
		doc      string
		expected bool
	}{
		{"flex report", `<FlexQueryResponse queryName="x"/>`, true},
		{"error envelope", `<FlexStatementResponse><Status>Fail</Status></FlexStatementResponse>`, false},
		{"not xml", `{"json": true}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := p.ValidateFormat(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestPackageLevelParse(t *testing.T) {
	resp, err := Parse(strings.NewReader(`<FlexQueryResponse queryName="Q"/>`))
	require.NoError(t, err)
	assert.Equal(t, "Q", *resp.QueryName)

	resp, err = ParseFile(filepath.Join("testdata", "statement.xml"))
	require.NoError(t, err)
	assert.Len(t, resp.FlexStatements, 1)
}
