package common

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"romamo/ibkr-flex/internal/currencyutils"
	"romamo/ibkr-flex/internal/dateutils"
	"romamo/ibkr-flex/internal/models"
)

// CSV date layouts.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// TradeRow is the CSV shape of a trade.
type TradeRow struct {
	AccountID       string `csv:"AccountID"`
	TradeID         string `csv:"TradeID"`
	TradeDate       string `csv:"TradeDate"`
	TradeTime       string `csv:"TradeTime"`
	SettleDate      string `csv:"SettleDate"`
	TransactionType string `csv:"TransactionType"`
	AssetCategory   string `csv:"AssetCategory"`
	Symbol          string `csv:"Symbol"`
	Description     string `csv:"Description"`
	ISIN            string `csv:"ISIN"`
	Exchange        string `csv:"Exchange"`
	BuySell         string `csv:"BuySell"`
	OpenClose       string `csv:"OpenClose"`
	OrderType       string `csv:"OrderType"`
	Quantity        string `csv:"Quantity"`
	TradePrice      string `csv:"TradePrice"`
	Proceeds        string `csv:"Proceeds"`
	Commission      string `csv:"Commission"`
	CommissionCcy   string `csv:"CommissionCurrency"`
	Taxes           string `csv:"Taxes"`
	NetCash         string `csv:"NetCash"`
	Currency        string `csv:"Currency"`
	FXRateToBase    string `csv:"FXRateToBase"`
	RealizedPnL     string `csv:"FifoPnlRealized"`
	Notes           string `csv:"Notes"`
}

// CashTransactionRow is the CSV shape of a cash transaction.
type CashTransactionRow struct {
	AccountID     string `csv:"AccountID"`
	TransactionID string `csv:"TransactionID"`
	DateTime      string `csv:"DateTime"`
	SettleDate    string `csv:"SettleDate"`
	Type          string `csv:"Type"`
	AssetCategory string `csv:"AssetCategory"`
	Symbol        string `csv:"Symbol"`
	ISIN          string `csv:"ISIN"`
	Description   string `csv:"Description"`
	Amount        string `csv:"Amount"`
	Currency      string `csv:"Currency"`
	FXRateToBase  string `csv:"FXRateToBase"`
	Codes         string `csv:"Codes"`
}

// CashReportRow is the CSV shape of a per-currency cash summary.
type CashReportRow struct {
	AccountID          string `csv:"AccountID"`
	Currency           string `csv:"Currency"`
	FromDate           string `csv:"FromDate"`
	ToDate             string `csv:"ToDate"`
	StartingCash       string `csv:"StartingCash"`
	Deposits           string `csv:"Deposits"`
	Withdrawals        string `csv:"Withdrawals"`
	Dividends          string `csv:"Dividends"`
	BrokerInterest     string `csv:"BrokerInterest"`
	WithholdingTax     string `csv:"WithholdingTax"`
	Commissions        string `csv:"Commissions"`
	OtherFees          string `csv:"OtherFees"`
	NetTradesSales     string `csv:"NetTradesSales"`
	NetTradesPurchases string `csv:"NetTradesPurchases"`
	EndingCash         string `csv:"EndingCash"`
	EndingSettledCash  string `csv:"EndingSettledCash"`
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func enum[E ~string](e *E) string {
	if e == nil {
		return ""
	}
	return string(*e)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func dateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

func clock(t *dateutils.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func dec(d *decimal.Decimal) string {
	return currencyutils.FormatDecimal(d)
}

func codes(cs []models.Code) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ";")
}

// NewTradeRow flattens t for CSV output.
func NewTradeRow(t models.Trade) TradeRow {
	return TradeRow{
		AccountID:       str(t.AccountID),
		TradeID:         str(t.TradeID),
		TradeDate:       date(t.TradeDate),
		TradeTime:       clock(t.TradeTime),
		SettleDate:      date(t.SettleDateTarget),
		TransactionType: enum(t.TransactionType),
		AssetCategory:   enum(t.AssetCategory),
		Symbol:          str(t.Symbol),
		Description:     str(t.Description),
		ISIN:            str(t.ISIN),
		Exchange:        str(t.Exchange),
		BuySell:         enum(t.BuySell),
		OpenClose:       enum(t.OpenCloseIndicator),
		OrderType:       enum(t.OrderType),
		Quantity:        dec(t.Quantity),
		TradePrice:      dec(t.TradePrice),
		Proceeds:        dec(t.Proceeds),
		Commission:      dec(t.IBCommission),
		CommissionCcy:   str(t.IBCommissionCurrency),
		Taxes:           dec(t.Taxes),
		NetCash:         dec(t.NetCash),
		Currency:        str(t.Currency),
		FXRateToBase:    dec(t.FXRateToBase),
		RealizedPnL:     dec(t.FIFOPnlRealized),
		Notes:           codes(t.Notes),
	}
}

// NewCashTransactionRow flattens c for CSV output.
func NewCashTransactionRow(c models.CashTransaction) CashTransactionRow {
	return CashTransactionRow{
		AccountID:     str(c.AccountID),
		TransactionID: str(c.TransactionID),
		DateTime:      dateTime(c.DateTime),
		SettleDate:    date(c.SettleDate),
		Type:          enum(c.Type),
		AssetCategory: enum(c.AssetCategory),
		Symbol:        str(c.Symbol),
		ISIN:          str(c.ISIN),
		Description:   str(c.Description),
		Amount:        dec(c.Amount),
		Currency:      str(c.Currency),
		FXRateToBase:  dec(c.FXRateToBase),
		Codes:         codes(c.Code),
	}
}

// NewCashReportRow flattens r for CSV output.
func NewCashReportRow(r models.CashReportCurrency) CashReportRow {
	return CashReportRow{
		AccountID:          str(r.AccountID),
		Currency:           str(r.Currency),
		FromDate:           date(r.FromDate),
		ToDate:             date(r.ToDate),
		StartingCash:       dec(r.StartingCash),
		Deposits:           dec(r.Deposits),
		Withdrawals:        dec(r.Withdrawals),
		Dividends:          dec(r.Dividends),
		BrokerInterest:     dec(r.BrokerInterest),
		WithholdingTax:     dec(r.WithholdingTax),
		Commissions:        dec(r.Commissions),
		OtherFees:          dec(r.OtherFees),
		NetTradesSales:     dec(r.NetTradesSales),
		NetTradesPurchases: dec(r.NetTradesPurchases),
		EndingCash:         dec(r.EndingCash),
		EndingSettledCash:  dec(r.EndingSettledCash),
	}
}
