package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is one cash movement: dividends, interest, fees,
// withholding tax, deposits and withdrawals.
type CashTransaction struct {
	Type                      *CashAction          `json:"type,omitempty" yaml:"type,omitempty"`
	AssetCategory             *AssetClass          `json:"assetCategory,omitempty" yaml:"assetCategory,omitempty"`
	SubCategory               *string              `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`
	AccountID                 *string              `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	Currency                  *string              `json:"currency,omitempty" yaml:"currency,omitempty"`
	FXRateToBase              *decimal.Decimal     `json:"fxRateToBase,omitempty" yaml:"fxRateToBase,omitempty"`
	Description               *string              `json:"description,omitempty" yaml:"description,omitempty"`
	Conid                     *string              `json:"conid,omitempty" yaml:"conid,omitempty"`
	SecurityID                *string              `json:"securityID,omitempty" yaml:"securityID,omitempty"`
	CUSIP                     *string              `json:"cusip,omitempty" yaml:"cusip,omitempty"`
	ISIN                      *string              `json:"isin,omitempty" yaml:"isin,omitempty"`
	ListingExchange           *string              `json:"listingExchange,omitempty" yaml:"listingExchange,omitempty"`
	UnderlyingConid           *string              `json:"underlyingConid,omitempty" yaml:"underlyingConid,omitempty"`
	UnderlyingSecurityID      *string              `json:"underlyingSecurityID,omitempty" yaml:"underlyingSecurityID,omitempty"`
	UnderlyingListingExchange *string              `json:"underlyingListingExchange,omitempty" yaml:"underlyingListingExchange,omitempty"`
	Amount                    *decimal.Decimal     `json:"amount,omitempty" yaml:"amount,omitempty"`
	DateTime                  *time.Time           `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
	SEDOL                     *string              `json:"sedol,omitempty" yaml:"sedol,omitempty"`
	Symbol                    *string              `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	SecurityIDType            *string              `json:"securityIDType,omitempty" yaml:"securityIDType,omitempty"`
	UnderlyingSymbol          *string              `json:"underlyingSymbol,omitempty" yaml:"underlyingSymbol,omitempty"`
	Issuer                    *string              `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Multiplier                *decimal.Decimal     `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Strike                    *decimal.Decimal     `json:"strike,omitempty" yaml:"strike,omitempty"`
	Expiry                    *time.Time           `json:"expiry,omitempty" yaml:"expiry,omitempty"`
	PutCall                   *PutCall             `json:"putCall,omitempty" yaml:"putCall,omitempty"`
	PrincipalAdjustFactor     *decimal.Decimal     `json:"principalAdjustFactor,omitempty" yaml:"principalAdjustFactor,omitempty"`
	TradeID                   *string              `json:"tradeID,omitempty" yaml:"tradeID,omitempty"`
	Code                      []Code               `json:"code,omitempty" yaml:"code,omitempty"`
	TransactionID             *string              `json:"transactionID,omitempty" yaml:"transactionID,omitempty"`
	ReportDate                *time.Time           `json:"reportDate,omitempty" yaml:"reportDate,omitempty"`
	ClientReference           *string              `json:"clientReference,omitempty" yaml:"clientReference,omitempty"`
	SettleDate                *time.Time           `json:"settleDate,omitempty" yaml:"settleDate,omitempty"`
	AcctAlias                 *string              `json:"acctAlias,omitempty" yaml:"acctAlias,omitempty"`
	ActionID                  *string              `json:"actionID,omitempty" yaml:"actionID,omitempty"`
	Model                     *string              `json:"model,omitempty" yaml:"model,omitempty"`
	LevelOfDetail             *string              `json:"levelOfDetail,omitempty" yaml:"levelOfDetail,omitempty"`
	SerialNumber              *string              `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	DeliveryType              *string              `json:"deliveryType,omitempty" yaml:"deliveryType,omitempty"`
	CommodityType             *string              `json:"commodityType,omitempty" yaml:"commodityType,omitempty"`
	Fineness                  *decimal.Decimal     `json:"fineness,omitempty" yaml:"fineness,omitempty"`
	Weight                    *string              `json:"weight,omitempty" yaml:"weight,omitempty"`
	FIGI                      *string              `json:"figi,omitempty" yaml:"figi,omitempty"`
	IssuerCountryCode         *string              `json:"issuerCountryCode,omitempty" yaml:"issuerCountryCode,omitempty"`
	AvailableForTradingDate   *time.Time           `json:"availableForTradingDate,omitempty" yaml:"availableForTradingDate,omitempty"`
	ExDate                    *time.Time           `json:"exDate,omitempty" yaml:"exDate,omitempty"`
}

// CashTransactionSchema maps CashTransaction attributes to their fields.
var CashTransactionSchema = NewSchema("CashTransaction", map[string]Field[CashTransaction]{
		"type":                      EnumField(func(c *CashTransaction) **CashAction { return &c.Type }),
		"assetCategory":             EnumField(func(c *CashTransaction) **AssetClass { return &c.AssetCategory }),
		"subCategory":               StringField(func(c *CashTransaction) **string { return &c.SubCategory }),
		"accountId":                 StringField(func(c *CashTransaction) **string { return &c.AccountID }),
		"currency":                  StringField(func(c *CashTransaction) **string { return &c.Currency }),
		"fxRateToBase":              DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.FXRateToBase }),
		"description":               StringField(func(c *CashTransaction) **string { return &c.Description }),
		"conid":                     StringField(func(c *CashTransaction) **string { return &c.Conid }),
		"securityID":                StringField(func(c *CashTransaction) **string { return &c.SecurityID }),
		"cusip":                     StringField(func(c *CashTransaction) **string { return &c.CUSIP }),
		"isin":                      StringField(func(c *CashTransaction) **string { return &c.ISIN }),
		"listingExchange":           StringField(func(c *CashTransaction) **string { return &c.ListingExchange }),
		"underlyingConid":           StringField(func(c *CashTransaction) **string { return &c.UnderlyingConid }),
		"underlyingSecurityID":      StringField(func(c *CashTransaction) **string { return &c.UnderlyingSecurityID }),
		"underlyingListingExchange": StringField(func(c *CashTransaction) **string { return &c.UnderlyingListingExchange }),
		"amount":                    DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.Amount }),
		"dateTime":                  DateTimeField(func(c *CashTransaction) **time.Time { return &c.DateTime }),
		"sedol":                     StringField(func(c *CashTransaction) **string { return &c.SEDOL }),
		"symbol":                    StringField(func(c *CashTransaction) **string { return &c.Symbol }),
		"securityIDType":            StringField(func(c *CashTransaction) **string { return &c.SecurityIDType }),
		"underlyingSymbol":          StringField(func(c *CashTransaction) **string { return &c.UnderlyingSymbol }),
		"issuer":                    StringField(func(c *CashTransaction) **string { return &c.Issuer }),
		"multiplier":                DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.Multiplier }),
		"strike":                    DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.Strike }),
		"expiry":                    DateField(func(c *CashTransaction) **time.Time { return &c.Expiry }),
		"putCall":                   EnumField(func(c *CashTransaction) **PutCall { return &c.PutCall }),
		"principalAdjustFactor":     DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.PrincipalAdjustFactor }),
		"tradeID":                   StringField(func(c *CashTransaction) **string { return &c.TradeID }),
		"code":                      CodeListField(func(c *CashTransaction) *[]Code { return &c.Code }),
		"transactionID":             StringField(func(c *CashTransaction) **string { return &c.TransactionID }),
		"reportDate":                DateField(func(c *CashTransaction) **time.Time { return &c.ReportDate }),
		"clientReference":           StringField(func(c *CashTransaction) **string { return &c.ClientReference }),
		"settleDate":                DateField(func(c *CashTransaction) **time.Time { return &c.SettleDate }),
		"acctAlias":                 StringField(func(c *CashTransaction) **string { return &c.AcctAlias }),
		"actionID":                  StringField(func(c *CashTransaction) **string { return &c.ActionID }),
		"model":                     StringField(func(c *CashTransaction) **string { return &c.Model }),
		"levelOfDetail":             StringField(func(c *CashTransaction) **string { return &c.LevelOfDetail }),
		"serialNumber":              StringField(func(c *CashTransaction) **string { return &c.SerialNumber }),
		"deliveryType":              StringField(func(c *CashTransaction) **string { return &c.DeliveryType }),
		"commodityType":             StringField(func(c *CashTransaction) **string { return &c.CommodityType }),
		"fineness":                  DecimalField(func(c *CashTransaction) **decimal.Decimal { return &c.Fineness }),
		"weight":                    StringField(func(c *CashTransaction) **string { return &c.Weight }),
		"figi":                      StringField(func(c *CashTransaction) **string { return &c.FIGI }),
		"issuerCountryCode":         StringField(func(c *CashTransaction) **string { return &c.IssuerCountryCode }),
		"availableForTradingDate":   DateTimeField(func(c *CashTransaction) **time.Time { return &c.AvailableForTradingDate }),
		"exDate":                    DateTimeField(func(c *CashTransaction) **time.Time { return &c.ExDate }),
})
