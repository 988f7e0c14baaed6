package models

import (
	"time"

	"github.com/shopspring/decimal"

	"romamo/ibkr-flex/internal/dateutils"
)

// Trade is one execution from the Trades section of a statement.
type Trade struct {
	TransactionType           *TradeType           `json:"transactionType,omitempty" yaml:"transactionType,omitempty"`
	OpenCloseIndicator        *OpenClose           `json:"openCloseIndicator,omitempty" yaml:"openCloseIndicator,omitempty"`
	BuySell                   *BuySell             `json:"buySell,omitempty" yaml:"buySell,omitempty"`
	OrderType                 *OrderType           `json:"orderType,omitempty" yaml:"orderType,omitempty"`
	AssetCategory             *AssetClass          `json:"assetCategory,omitempty" yaml:"assetCategory,omitempty"`
	AccountID                 *string              `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	Currency                  *string              `json:"currency,omitempty" yaml:"currency,omitempty"`
	FXRateToBase              *decimal.Decimal     `json:"fxRateToBase,omitempty" yaml:"fxRateToBase,omitempty"`
	Symbol                    *string              `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Conid                     *string              `json:"conid,omitempty" yaml:"conid,omitempty"`
	CUSIP                     *string              `json:"cusip,omitempty" yaml:"cusip,omitempty"`
	ISIN                      *string              `json:"isin,omitempty" yaml:"isin,omitempty"`
	FIGI                      *string              `json:"figi,omitempty" yaml:"figi,omitempty"`
	Description               *string              `json:"description,omitempty" yaml:"description,omitempty"`
	ListingExchange           *string              `json:"listingExchange,omitempty" yaml:"listingExchange,omitempty"`
	Multiplier                *decimal.Decimal     `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Strike                    *decimal.Decimal     `json:"strike,omitempty" yaml:"strike,omitempty"`
	Expiry                    *time.Time           `json:"expiry,omitempty" yaml:"expiry,omitempty"`
	PutCall                   *PutCall             `json:"putCall,omitempty" yaml:"putCall,omitempty"`
	TradeID                   *string              `json:"tradeID,omitempty" yaml:"tradeID,omitempty"`
	ReportDate                *time.Time           `json:"reportDate,omitempty" yaml:"reportDate,omitempty"`
	TradeDate                 *time.Time           `json:"tradeDate,omitempty" yaml:"tradeDate,omitempty"`
	TradeTime                 *dateutils.TimeOfDay `json:"tradeTime,omitempty" yaml:"tradeTime,omitempty"`
	SettleDateTarget          *time.Time           `json:"settleDateTarget,omitempty" yaml:"settleDateTarget,omitempty"`
	Exchange                  *string              `json:"exchange,omitempty" yaml:"exchange,omitempty"`
	Quantity                  *decimal.Decimal     `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	TradePrice                *decimal.Decimal     `json:"tradePrice,omitempty" yaml:"tradePrice,omitempty"`
	TradeMoney                *decimal.Decimal     `json:"tradeMoney,omitempty" yaml:"tradeMoney,omitempty"`
	Proceeds                  *decimal.Decimal     `json:"proceeds,omitempty" yaml:"proceeds,omitempty"`
	NetCash                   *decimal.Decimal     `json:"netCash,omitempty" yaml:"netCash,omitempty"`
	NetCashInBase             *decimal.Decimal     `json:"netCashInBase,omitempty" yaml:"netCashInBase,omitempty"`
	Taxes                     *decimal.Decimal     `json:"taxes,omitempty" yaml:"taxes,omitempty"`
	IBCommission              *decimal.Decimal     `json:"ibCommission,omitempty" yaml:"ibCommission,omitempty"`
	IBCommissionCurrency      *string              `json:"ibCommissionCurrency,omitempty" yaml:"ibCommissionCurrency,omitempty"`
	ClosePrice                *decimal.Decimal     `json:"closePrice,omitempty" yaml:"closePrice,omitempty"`
	Notes                     []Code               `json:"notes,omitempty" yaml:"notes,omitempty"`
	Cost                      *decimal.Decimal     `json:"cost,omitempty" yaml:"cost,omitempty"`
	MTMPnl                    *decimal.Decimal     `json:"mtmPnl,omitempty" yaml:"mtmPnl,omitempty"`
	OrigTradePrice            *decimal.Decimal     `json:"origTradePrice,omitempty" yaml:"origTradePrice,omitempty"`
	OrigTradeDate             *time.Time           `json:"origTradeDate,omitempty" yaml:"origTradeDate,omitempty"`
	OrigTradeID               *string              `json:"origTradeID,omitempty" yaml:"origTradeID,omitempty"`
	OrigOrderID               *string              `json:"origOrderID,omitempty" yaml:"origOrderID,omitempty"`
	OpenDateTime              *time.Time           `json:"openDateTime,omitempty" yaml:"openDateTime,omitempty"`
	FIFOPnlRealized           *decimal.Decimal     `json:"fifoPnlRealized,omitempty" yaml:"fifoPnlRealized,omitempty"`
	CapitalGainsPnl           *decimal.Decimal     `json:"capitalGainsPnl,omitempty" yaml:"capitalGainsPnl,omitempty"`
	LevelOfDetail             *string              `json:"levelOfDetail,omitempty" yaml:"levelOfDetail,omitempty"`
	IBOrderID                 *string              `json:"ibOrderID,omitempty" yaml:"ibOrderID,omitempty"`
	OrderTime                 *time.Time           `json:"orderTime,omitempty" yaml:"orderTime,omitempty"`
	ChangeInPrice             *decimal.Decimal     `json:"changeInPrice,omitempty" yaml:"changeInPrice,omitempty"`
	ChangeInQuantity          *decimal.Decimal     `json:"changeInQuantity,omitempty" yaml:"changeInQuantity,omitempty"`
	FXPnl                     *decimal.Decimal     `json:"fxPnl,omitempty" yaml:"fxPnl,omitempty"`
	ClearingFirmID            *string              `json:"clearingFirmID,omitempty" yaml:"clearingFirmID,omitempty"`
	TransactionID             *string              `json:"transactionID,omitempty" yaml:"transactionID,omitempty"`
	HoldingPeriodDateTime     *time.Time           `json:"holdingPeriodDateTime,omitempty" yaml:"holdingPeriodDateTime,omitempty"`
	IBExecID                  *string              `json:"ibExecID,omitempty" yaml:"ibExecID,omitempty"`
	BrokerageOrderID          *string              `json:"brokerageOrderID,omitempty" yaml:"brokerageOrderID,omitempty"`
	OrderReference            *string              `json:"orderReference,omitempty" yaml:"orderReference,omitempty"`
	VolatilityOrderLink       *string              `json:"volatilityOrderLink,omitempty" yaml:"volatilityOrderLink,omitempty"`
	ExchOrderID               *string              `json:"exchOrderId,omitempty" yaml:"exchOrderId,omitempty"`
	ExtExecID                 *string              `json:"extExecID,omitempty" yaml:"extExecID,omitempty"`
	TraderID                  *string              `json:"traderID,omitempty" yaml:"traderID,omitempty"`
	IsAPIOrder                *bool                `json:"isAPIOrder,omitempty" yaml:"isAPIOrder,omitempty"`
	AcctAlias                 *string              `json:"acctAlias,omitempty" yaml:"acctAlias,omitempty"`
	Model                     *string              `json:"model,omitempty" yaml:"model,omitempty"`
	SecurityID                *string              `json:"securityID,omitempty" yaml:"securityID,omitempty"`
	SecurityIDType            *string              `json:"securityIDType,omitempty" yaml:"securityIDType,omitempty"`
	PrincipalAdjustFactor     *decimal.Decimal     `json:"principalAdjustFactor,omitempty" yaml:"principalAdjustFactor,omitempty"`
	DateTime                  *time.Time           `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
	UnderlyingConid           *string              `json:"underlyingConid,omitempty" yaml:"underlyingConid,omitempty"`
	UnderlyingSecurityID      *string              `json:"underlyingSecurityID,omitempty" yaml:"underlyingSecurityID,omitempty"`
	UnderlyingSymbol          *string              `json:"underlyingSymbol,omitempty" yaml:"underlyingSymbol,omitempty"`
	UnderlyingListingExchange *string              `json:"underlyingListingExchange,omitempty" yaml:"underlyingListingExchange,omitempty"`
	Issuer                    *string              `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	SEDOL                     *string              `json:"sedol,omitempty" yaml:"sedol,omitempty"`
	WhenRealized              *time.Time           `json:"whenRealized,omitempty" yaml:"whenRealized,omitempty"`
	WhenReopened              *time.Time           `json:"whenReopened,omitempty" yaml:"whenReopened,omitempty"`
	AccruedInt                *decimal.Decimal     `json:"accruedInt,omitempty" yaml:"accruedInt,omitempty"`
	SerialNumber              *string              `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	DeliveryType              *string              `json:"deliveryType,omitempty" yaml:"deliveryType,omitempty"`
	CommodityType             *string              `json:"commodityType,omitempty" yaml:"commodityType,omitempty"`
	Fineness                  *decimal.Decimal     `json:"fineness,omitempty" yaml:"fineness,omitempty"`
	Weight                    *string              `json:"weight,omitempty" yaml:"weight,omitempty"`
	RelatedTradeID            *string              `json:"relatedTradeID,omitempty" yaml:"relatedTradeID,omitempty"`
	RelatedTransactionID      *string              `json:"relatedTransactionID,omitempty" yaml:"relatedTransactionID,omitempty"`
	OrigTransactionID         *string              `json:"origTransactionID,omitempty" yaml:"origTransactionID,omitempty"`
	SubCategory               *string              `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`
	IssuerCountryCode         *string              `json:"issuerCountryCode,omitempty" yaml:"issuerCountryCode,omitempty"`
	RTN                       *string              `json:"rtn,omitempty" yaml:"rtn,omitempty"`
	InitialInvestment         *decimal.Decimal     `json:"initialInvestment,omitempty" yaml:"initialInvestment,omitempty"`
	PositionActionID          *string              `json:"positionActionID,omitempty" yaml:"positionActionID,omitempty"`
	ActionID                  *string              `json:"actionID,omitempty" yaml:"actionID,omitempty"`
	AvailableForTradingDate   *time.Time           `json:"availableForTradingDate,omitempty" yaml:"availableForTradingDate,omitempty"`
	ExDate                    *time.Time           `json:"exDate,omitempty" yaml:"exDate,omitempty"`
}

// TradeSchema maps Trade attributes to their fields.
var TradeSchema = NewSchema("Trade", map[string]Field[Trade]{
		"transactionType":           EnumField(func(t *Trade) **TradeType { return &t.TransactionType }),
		"openCloseIndicator":        EnumField(func(t *Trade) **OpenClose { return &t.OpenCloseIndicator }),
		"buySell":                   EnumField(func(t *Trade) **BuySell { return &t.BuySell }),
		"orderType":                 EnumField(func(t *Trade) **OrderType { return &t.OrderType }),
		"assetCategory":             EnumField(func(t *Trade) **AssetClass { return &t.AssetCategory }),
		"accountId":                 StringField(func(t *Trade) **string { return &t.AccountID }),
		"currency":                  StringField(func(t *Trade) **string { return &t.Currency }),
		"fxRateToBase":              DecimalField(func(t *Trade) **decimal.Decimal { return &t.FXRateToBase }),
		"symbol":                    StringField(func(t *Trade) **string { return &t.Symbol }),
		"conid":                     StringField(func(t *Trade) **string { return &t.Conid }),
		"cusip":                     StringField(func(t *Trade) **string { return &t.CUSIP }),
		"isin":                      StringField(func(t *Trade) **string { return &t.ISIN }),
		"figi":                      StringField(func(t *Trade) **string { return &t.FIGI }),
		"description":               StringField(func(t *Trade) **string { return &t.Description }),
		"listingExchange":           StringField(func(t *Trade) **string { return &t.ListingExchange }),
		"multiplier":                DecimalField(func(t *Trade) **decimal.Decimal { return &t.Multiplier }),
		"strike":                    DecimalField(func(t *Trade) **decimal.Decimal { return &t.Strike }),
		"expiry":                    DateField(func(t *Trade) **time.Time { return &t.Expiry }),
		"putCall":                   EnumField(func(t *Trade) **PutCall { return &t.PutCall }),
		"tradeID":                   StringField(func(t *Trade) **string { return &t.TradeID }),
		"reportDate":                DateField(func(t *Trade) **time.Time { return &t.ReportDate }),
		"tradeDate":                 DateField(func(t *Trade) **time.Time { return &t.TradeDate }),
		"tradeTime":                 TimeField(func(t *Trade) **dateutils.TimeOfDay { return &t.TradeTime }),
		"settleDateTarget":          DateField(func(t *Trade) **time.Time { return &t.SettleDateTarget }),
		"exchange":                  StringField(func(t *Trade) **string { return &t.Exchange }),
		"quantity":                  DecimalField(func(t *Trade) **decimal.Decimal { return &t.Quantity }),
		"tradePrice":                DecimalField(func(t *Trade) **decimal.Decimal { return &t.TradePrice }),
		"tradeMoney":                DecimalField(func(t *Trade) **decimal.Decimal { return &t.TradeMoney }),
		"proceeds":                  DecimalField(func(t *Trade) **decimal.Decimal { return &t.Proceeds }),
		"netCash":                   DecimalField(func(t *Trade) **decimal.Decimal { return &t.NetCash }),
		"netCashInBase":             DecimalField(func(t *Trade) **decimal.Decimal { return &t.NetCashInBase }),
		"taxes":                     DecimalField(func(t *Trade) **decimal.Decimal { return &t.Taxes }),
		"ibCommission":              DecimalField(func(t *Trade) **decimal.Decimal { return &t.IBCommission }),
		"ibCommissionCurrency":      StringField(func(t *Trade) **string { return &t.IBCommissionCurrency }),
		"closePrice":                DecimalField(func(t *Trade) **decimal.Decimal { return &t.ClosePrice }),
		"notes":                     CodeListField(func(t *Trade) *[]Code { return &t.Notes }),
		"cost":                      DecimalField(func(t *Trade) **decimal.Decimal { return &t.Cost }),
		"mtmPnl":                    DecimalField(func(t *Trade) **decimal.Decimal { return &t.MTMPnl }),
		"origTradePrice":            DecimalField(func(t *Trade) **decimal.Decimal { return &t.OrigTradePrice }),
		"origTradeDate":             DateField(func(t *Trade) **time.Time { return &t.OrigTradeDate }),
		"origTradeID":               StringField(func(t *Trade) **string { return &t.OrigTradeID }),
		"origOrderID":               StringField(func(t *Trade) **string { return &t.OrigOrderID }),
		"openDateTime":              DateTimeField(func(t *Trade) **time.Time { return &t.OpenDateTime }),
		"fifoPnlRealized":           DecimalField(func(t *Trade) **decimal.Decimal { return &t.FIFOPnlRealized }),
		"capitalGainsPnl":           DecimalField(func(t *Trade) **decimal.Decimal { return &t.CapitalGainsPnl }),
		"levelOfDetail":             StringField(func(t *Trade) **string { return &t.LevelOfDetail }),
		"ibOrderID":                 StringField(func(t *Trade) **string { return &t.IBOrderID }),
		"orderTime":                 DateTimeField(func(t *Trade) **time.Time { return &t.OrderTime }),
		"changeInPrice":             DecimalField(func(t *Trade) **decimal.Decimal { return &t.ChangeInPrice }),
		"changeInQuantity":          DecimalField(func(t *Trade) **decimal.Decimal { return &t.ChangeInQuantity }),
		"fxPnl":                     DecimalField(func(t *Trade) **decimal.Decimal { return &t.FXPnl }),
		"clearingFirmID":            StringField(func(t *Trade) **string { return &t.ClearingFirmID }),
		"transactionID":             StringField(func(t *Trade) **string { return &t.TransactionID }),
		"holdingPeriodDateTime":     DateTimeField(func(t *Trade) **time.Time { return &t.HoldingPeriodDateTime }),
		"ibExecID":                  StringField(func(t *Trade) **string { return &t.IBExecID }),
		"brokerageOrderID":          StringField(func(t *Trade) **string { return &t.BrokerageOrderID }),
		"orderReference":            StringField(func(t *Trade) **string { return &t.OrderReference }),
		"volatilityOrderLink":       StringField(func(t *Trade) **string { return &t.VolatilityOrderLink }),
		"exchOrderId":               StringField(func(t *Trade) **string { return &t.ExchOrderID }),
		"extExecID":                 StringField(func(t *Trade) **string { return &t.ExtExecID }),
		"traderID":                  StringField(func(t *Trade) **string { return &t.TraderID }),
		"isAPIOrder":                BoolField(func(t *Trade) **bool { return &t.IsAPIOrder }),
		"acctAlias":                 StringField(func(t *Trade) **string { return &t.AcctAlias }),
		"model":                     StringField(func(t *Trade) **string { return &t.Model }),
		"securityID":                StringField(func(t *Trade) **string { return &t.SecurityID }),
		"securityIDType":            StringField(func(t *Trade) **string { return &t.SecurityIDType }),
		"principalAdjustFactor":     DecimalField(func(t *Trade) **decimal.Decimal { return &t.PrincipalAdjustFactor }),
		"dateTime":                  DateTimeField(func(t *Trade) **time.Time { return &t.DateTime }),
		"underlyingConid":           StringField(func(t *Trade) **string { return &t.UnderlyingConid }),
		"underlyingSecurityID":      StringField(func(t *Trade) **string { return &t.UnderlyingSecurityID }),
		"underlyingSymbol":          StringField(func(t *Trade) **string { return &t.UnderlyingSymbol }),
		"underlyingListingExchange": StringField(func(t *Trade) **string { return &t.UnderlyingListingExchange }),
		"issuer":                    StringField(func(t *Trade) **string { return &t.Issuer }),
		"sedol":                     StringField(func(t *Trade) **string { return &t.SEDOL }),
		"whenRealized":              DateTimeField(func(t *Trade) **time.Time { return &t.WhenRealized }),
		"whenReopened":              DateTimeField(func(t *Trade) **time.Time { return &t.WhenReopened }),
		"accruedInt":                DecimalField(func(t *Trade) **decimal.Decimal { return &t.AccruedInt }),
		"serialNumber":              StringField(func(t *Trade) **string { return &t.SerialNumber }),
		"deliveryType":              StringField(func(t *Trade) **string { return &t.DeliveryType }),
		"commodityType":             StringField(func(t *Trade) **string { return &t.CommodityType }),
		"fineness":                  DecimalField(func(t *Trade) **decimal.Decimal { return &t.Fineness }),
		"weight":                    StringField(func(t *Trade) **string { return &t.Weight }),
		"relatedTradeID":            StringField(func(t *Trade) **string { return &t.RelatedTradeID }),
		"relatedTransactionID":      StringField(func(t *Trade) **string { return &t.RelatedTransactionID }),
		"origTransactionID":         StringField(func(t *Trade) **string { return &t.OrigTransactionID }),
		"subCategory":               StringField(func(t *Trade) **string { return &t.SubCategory }),
		"issuerCountryCode":         StringField(func(t *Trade) **string { return &t.IssuerCountryCode }),
		"rtn":                       StringField(func(t *Trade) **string { return &t.RTN }),
		"initialInvestment":         DecimalField(func(t *Trade) **decimal.Decimal { return &t.InitialInvestment }),
		"positionActionID":          StringField(func(t *Trade) **string { return &t.PositionActionID }),
		"actionID":                  StringField(func(t *Trade) **string { return &t.ActionID }),
		"availableForTradingDate":   DateTimeField(func(t *Trade) **time.Time { return &t.AvailableForTradingDate }),
		"exDate":                    DateTimeField(func(t *Trade) **time.Time { return &t.ExDate }),
})
