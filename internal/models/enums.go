package models

// Single-valued enumerations. Values are carried verbatim from the report;
// the constants name the values callers usually branch on.

// BuySell is the side of a trade.
type BuySell string

const (
	Buy           BuySell = "BUY"
	Sell          BuySell = "SELL"
	BuyCancelled  BuySell = "BUY (Ca.)"
	SellCancelled BuySell = "SELL (Ca.)"
)

// OpenClose tells whether a trade opens or closes a position.
type OpenClose string

const (
	Open          OpenClose = "O"
	Close         OpenClose = "C"
	CloseOpen     OpenClose = "C;O"
	OpenCloseNone OpenClose = "-"
)

// OrderType is the order type of a trade. Reports listing several order
// types for one trade are collapsed to OrderTypeMultiple.
type OrderType string

const (
	OrderTypeLimit       OrderType = "LMT"
	OrderTypeMarket      OrderType = "MKT"
	OrderTypeStop        OrderType = "STP"
	OrderTypeStopLimit   OrderType = "STPLMT"
	OrderTypeMidPrice    OrderType = "MIDPX"
	OrderTypeTrail       OrderType = "TRAIL"
	OrderTypeMarketClose OrderType = "MOC"
	OrderTypeMultiple    OrderType = "MULTIPLE"
)

// AssetClass is the asset category of an instrument.
type AssetClass string

const (
	AssetStock   AssetClass = "STK"
	AssetOption  AssetClass = "OPT"
	AssetFuture  AssetClass = "FUT"
	AssetFutOpt  AssetClass = "FOP"
	AssetCash    AssetClass = "CASH"
	AssetBond    AssetClass = "BOND"
	AssetFund    AssetClass = "FUND"
	AssetWarrant AssetClass = "WAR"
	AssetCFD     AssetClass = "CFD"
	AssetCrypto  AssetClass = "CRYPTO"
	AssetMetal   AssetClass = "CMDTY"
)

// PutCall is the right of an option.
type PutCall string

const (
	Put  PutCall = "P"
	Call PutCall = "C"
)

// TradeType is the transaction type of a trade.
type TradeType string

const (
	TradeExchange      TradeType = "ExchTrade"
	TradeBook          TradeType = "BookTrade"
	TradeFracShare     TradeType = "FracShare"
	TradeFracShareCanc TradeType = "FracShareCancel"
	TradeAdjustment    TradeType = "TradeAdjustment"
	TradeCancel        TradeType = "TradeCancel"
	TradeCorrect       TradeType = "TradeCorrect"
	TradeDVPTrade      TradeType = "DvpTrade"
	TradeFXTrade       TradeType = "FXTrade"
)

// CashAction is the type of a cash transaction.
type CashAction string

const (
	CashDepositsWithdrawals CashAction = "Deposits & Withdrawals"
	CashBrokerInterestPaid  CashAction = "Broker Interest Paid"
	CashBrokerInterestRecvd CashAction = "Broker Interest Received"
	CashBrokerFees          CashAction = "Broker Fees"
	CashBondInterestRecvd   CashAction = "Bond Interest Received"
	CashBondInterestPaid    CashAction = "Bond Interest Paid"
	CashWithholdingTax      CashAction = "Withholding Tax"
	CashWith871m            CashAction = "871(m) Withholding"
	CashOtherFees           CashAction = "Other Fees"
	CashDividends           CashAction = "Dividends"
	CashPaymentInLieu       CashAction = "Payment In Lieu Of Dividends"
	CashCommissionAdj       CashAction = "Commission Adjustments"
	CashPriceAdjustments    CashAction = "Price Adjustments"
	CashAdvisorFees         CashAction = "Advisor Fees"
	CashFees                CashAction = "Cash Receipts / Disbursements"
	CashACATS               CashAction = "ACATS"
)
