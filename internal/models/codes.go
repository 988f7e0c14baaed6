package models

import (
	"fmt"

	"romamo/ibkr-flex/internal/flexerror"
)

// Code is a classification code attached to a trade ("notes") or a cash
// transaction ("code"). A record carries zero or more codes in source order.
type Code string

// Classification codes documented for Flex Query activity reports.
const (
	CodeAssignment          Code = "A"
	CodeADRFee              Code = "ADR"
	CodeAutoExercise        Code = "AEx"
	CodeAdjustment          Code = "Adj"
	CodeAllocation          Code = "Al"
	CodeAwayTrade           Code = "Aw"
	CodeBuyIn               Code = "B"
	CodeDirectBorrow        Code = "Bo"
	CodeClosing             Code = "C"
	CodeCashDelivery        Code = "CD"
	CodeComplexPosition     Code = "CP"
	CodeCancelled           Code = "Ca"
	CodeCorrected           Code = "Co"
	CodeCrossing            Code = "Cx"
	CodeETFCreation         Code = "ETF"
	CodeExpired             Code = "Ep"
	CodeExercise            Code = "Ex"
	CodeFractional          Code = "FP"
	CodeFractionalAgent     Code = "FPA"
	CodeGuaranteedAccount   Code = "G"
	CodeHighestCost         Code = "HC"
	CodeHedgeFundInvestment Code = "HFI"
	CodeHedgeFundRedemption Code = "HFR"
	CodeInternalTransfer    Code = "I"
	CodeAffiliate           Code = "IA"
	CodeInvestorTransfer    Code = "INV"
	CodeMarginViolation     Code = "L"
	CodeWashSale            Code = "LD"
	CodeLIFO                Code = "LI"
	CodeLongTerm            Code = "LT"
	CodeDirectLoan          Code = "Lo"
	CodeManual              Code = "M"
	CodeManualExercise      Code = "MEx"
	CodeMaxLosses           Code = "ML"
	CodeMaxLongTermGain     Code = "MLG"
	CodeMaxLongTermLoss     Code = "MLL"
	CodeMaxShortTermGain    Code = "MSG"
	CodeMaxShortTermLoss    Code = "MSL"
	CodeOpening             Code = "O"
	CodePartial             Code = "P"
	CodePriceImprovement    Code = "PI"
	CodeAccrualPosting      Code = "Po"
	CodeAccrualReversal     Code = "Pr"
	CodeReinvestment        Code = "R"
	CodeRedemption          Code = "RED"
	CodeRisklessPrincipal   Code = "RP"
	CodeInterestReversal    Code = "Re"
	CodeReimbursement       Code = "Ri"
	CodeSolicitedIB         Code = "SI"
	CodeSpecificLot         Code = "SL"
	CodeSolicitedBroker     Code = "SO"
	CodeShortSettlement     Code = "SS"
	CodeShortTerm           Code = "ST"
	CodeStockYield          Code = "SY"
	CodeTransfer            Code = "T"
)

var knownCodes = map[Code]string{
	CodeAssignment:          "Assignment",
	CodeADRFee:              "ADR fee accrual",
	CodeAutoExercise:        "Automatic exercise for dividend-related recommendation",
	CodeAdjustment:          "Adjustment",
	CodeAllocation:          "Allocation",
	CodeAwayTrade:           "Away trade",
	CodeBuyIn:               "Automatic buy-in",
	CodeDirectBorrow:        "Direct borrow",
	CodeClosing:             "Closing trade",
	CodeCashDelivery:        "Cash delivery",
	CodeComplexPosition:     "Complex position",
	CodeCancelled:           "Cancelled",
	CodeCorrected:           "Corrected trade",
	CodeCrossing:            "Crossing executed as dual agent",
	CodeETFCreation:         "ETF creation/redemption",
	CodeExpired:             "Resulted from an expired position",
	CodeExercise:            "Exercise",
	CodeFractional:          "Fractional share trade",
	CodeFractionalAgent:     "Fractional share trade, IB as agent",
	CodeGuaranteedAccount:   "Trade in guaranteed account segment",
	CodeHighestCost:         "Highest cost tax basis election",
	CodeHedgeFundInvestment: "Investment transferred to hedge fund",
	CodeHedgeFundRedemption: "Redemption from hedge fund",
	CodeInternalTransfer:    "Internal transfer",
	CodeAffiliate:           "Executed against an IB affiliate",
	CodeInvestorTransfer:    "Investment transfer from investor",
	CodeMarginViolation:     "Ordered by IB (margin violation)",
	CodeWashSale:            "Adjusted by loss disallowed from wash sale",
	CodeLIFO:                "Last in, first out tax basis election",
	CodeLongTerm:            "Long-term P/L",
	CodeDirectLoan:          "Direct loan",
	CodeManual:              "Entered manually by IB",
	CodeManualExercise:      "Manual exercise for dividend-related recommendation",
	CodeMaxLosses:           "Maximize losses tax basis election",
	CodeMaxLongTermGain:     "Maximize long-term gain tax basis election",
	CodeMaxLongTermLoss:     "Maximize long-term loss tax basis election",
	CodeMaxShortTermGain:    "Maximize short-term gain tax basis election",
	CodeMaxShortTermLoss:    "Maximize short-term loss tax basis election",
	CodeOpening:             "Opening trade",
	CodePartial:             "Partial execution",
	CodePriceImprovement:    "Price improvement",
	CodeAccrualPosting:      "Interest or dividend accrual posting",
	CodeAccrualReversal:     "Accrual reversal",
	CodeReinvestment:        "Dividend reinvestment",
	CodeRedemption:          "Redemption to investor",
	CodeRisklessPrincipal:   "Riskless principal",
	CodeInterestReversal:    "Interest or dividend accrual reversal",
	CodeReimbursement:       "Reimbursement",
	CodeSolicitedIB:         "Order solicited by IB",
	CodeSpecificLot:         "Specific lot tax basis election",
	CodeSolicitedBroker:     "Order solicited by introducing broker",
	CodeShortSettlement:     "Shortened settlement",
	CodeShortTerm:           "Short-term P/L",
	CodeStockYield:          "Eligible for stock yield",
	CodeTransfer:            "Transfer",
}

// ParseCode returns the Code for token. Tokens are case-sensitive: "C"
// (closing) and "Ca" (cancelled) are distinct codes.
func ParseCode(token string) (Code, error) {
	c := Code(token)
	if _, ok := knownCodes[c]; !ok {
		return "", fmt.Errorf("%w: %q", flexerror.ErrUnknownCode, token)
	}
	return c, nil
}

// Description returns the human readable meaning of c.
func (c Code) Description() string {
	if d, ok := knownCodes[c]; ok {
		return d
	}
	return string(c)
}
