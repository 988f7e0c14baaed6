package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashReportCurrency is the per-currency cash summary of a statement. The
// summary row for all currencies converted to base carries currency
// "BASE_SUMMARY".
type CashReportCurrency struct {
	AccountID             *string          `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	AcctAlias             *string          `json:"acctAlias,omitempty" yaml:"acctAlias,omitempty"`
	Model                 *string          `json:"model,omitempty" yaml:"model,omitempty"`
	Currency              *string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	LevelOfDetail         *string          `json:"levelOfDetail,omitempty" yaml:"levelOfDetail,omitempty"`
	FromDate              *time.Time       `json:"fromDate,omitempty" yaml:"fromDate,omitempty"`
	ToDate                *time.Time       `json:"toDate,omitempty" yaml:"toDate,omitempty"`
	StartingCash          *decimal.Decimal `json:"startingCash,omitempty" yaml:"startingCash,omitempty"`
	StartingCashSec       *decimal.Decimal `json:"startingCashSec,omitempty" yaml:"startingCashSec,omitempty"`
	StartingCashCom       *decimal.Decimal `json:"startingCashCom,omitempty" yaml:"startingCashCom,omitempty"`
	ClientFees            *decimal.Decimal `json:"clientFees,omitempty" yaml:"clientFees,omitempty"`
	Commissions           *decimal.Decimal `json:"commissions,omitempty" yaml:"commissions,omitempty"`
	DepositWithdrawals    *decimal.Decimal `json:"depositWithdrawals,omitempty" yaml:"depositWithdrawals,omitempty"`
	Deposits              *decimal.Decimal `json:"deposits,omitempty" yaml:"deposits,omitempty"`
	Withdrawals           *decimal.Decimal `json:"withdrawals,omitempty" yaml:"withdrawals,omitempty"`
	Dividends             *decimal.Decimal `json:"dividends,omitempty" yaml:"dividends,omitempty"`
	BrokerInterest        *decimal.Decimal `json:"brokerInterest,omitempty" yaml:"brokerInterest,omitempty"`
	BondInterest          *decimal.Decimal `json:"bondInterest,omitempty" yaml:"bondInterest,omitempty"`
	WithholdingTax        *decimal.Decimal `json:"withholdingTax,omitempty" yaml:"withholdingTax,omitempty"`
	OtherFees             *decimal.Decimal `json:"otherFees,omitempty" yaml:"otherFees,omitempty"`
	AdvisorFees           *decimal.Decimal `json:"advisorFees,omitempty" yaml:"advisorFees,omitempty"`
	NetTradesSales        *decimal.Decimal `json:"netTradesSales,omitempty" yaml:"netTradesSales,omitempty"`
	NetTradesPurchases    *decimal.Decimal `json:"netTradesPurchases,omitempty" yaml:"netTradesPurchases,omitempty"`
	FXTranslationGainLoss *decimal.Decimal `json:"fxTranslationGainLoss,omitempty" yaml:"fxTranslationGainLoss,omitempty"`
	TransactionTax        *decimal.Decimal `json:"transactionTax,omitempty" yaml:"transactionTax,omitempty"`
	PaymentInLieu         *decimal.Decimal `json:"paymentInLieu,omitempty" yaml:"paymentInLieu,omitempty"`
	InternalTransfers     *decimal.Decimal `json:"internalTransfers,omitempty" yaml:"internalTransfers,omitempty"`
	EndingCash            *decimal.Decimal `json:"endingCash,omitempty" yaml:"endingCash,omitempty"`
	EndingSettledCash     *decimal.Decimal `json:"endingSettledCash,omitempty" yaml:"endingSettledCash,omitempty"`
	EndingCashSec         *decimal.Decimal `json:"endingCashSec,omitempty" yaml:"endingCashSec,omitempty"`
	EndingCashCom         *decimal.Decimal `json:"endingCashCom,omitempty" yaml:"endingCashCom,omitempty"`
}

// CashReportCurrencySchema maps CashReportCurrency attributes to their fields.
var CashReportCurrencySchema = NewSchema("CashReportCurrency", map[string]Field[CashReportCurrency]{
		"accountId":             StringField(func(c *CashReportCurrency) **string { return &c.AccountID }),
		"acctAlias":             StringField(func(c *CashReportCurrency) **string { return &c.AcctAlias }),
		"model":                 StringField(func(c *CashReportCurrency) **string { return &c.Model }),
		"currency":              StringField(func(c *CashReportCurrency) **string { return &c.Currency }),
		"levelOfDetail":         StringField(func(c *CashReportCurrency) **string { return &c.LevelOfDetail }),
		"fromDate":              DateField(func(c *CashReportCurrency) **time.Time { return &c.FromDate }),
		"toDate":                DateField(func(c *CashReportCurrency) **time.Time { return &c.ToDate }),
		"startingCash":          DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.StartingCash }),
		"startingCashSec":       DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.StartingCashSec }),
		"startingCashCom":       DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.StartingCashCom }),
		"clientFees":            DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.ClientFees }),
		"commissions":           DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.Commissions }),
		"depositWithdrawals":    DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.DepositWithdrawals }),
		"deposits":              DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.Deposits }),
		"withdrawals":           DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.Withdrawals }),
		"dividends":             DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.Dividends }),
		"brokerInterest":        DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.BrokerInterest }),
		"bondInterest":          DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.BondInterest }),
		"withholdingTax":        DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.WithholdingTax }),
		"otherFees":             DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.OtherFees }),
		"advisorFees":           DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.AdvisorFees }),
		"netTradesSales":        DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.NetTradesSales }),
		"netTradesPurchases":    DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.NetTradesPurchases }),
		"fxTranslationGainLoss": DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.FXTranslationGainLoss }),
		"transactionTax":        DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.TransactionTax }),
		"paymentInLieu":         DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.PaymentInLieu }),
		"internalTransfers":     DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.InternalTransfers }),
		"endingCash":            DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.EndingCash }),
		"endingSettledCash":     DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.EndingSettledCash }),
		"endingCashSec":         DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.EndingCashSec }),
		"endingCashCom":         DecimalField(func(c *CashReportCurrency) **decimal.Decimal { return &c.EndingCashCom }),
})
