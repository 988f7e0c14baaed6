// Package models defines the records produced by parsing a Flex Query
// report, together with the field-type tables that drive attribute coercion.
//
// All scalar fields are pointers: nil means the attribute was absent from the
// report or could not be coerced. Records are built once by the parser and
// are not mutated afterwards.
package models

import (
	"time"
)

// QueryResponse is the root of a Flex Query report.
type QueryResponse struct {
	QueryName      *string     `json:"queryName,omitempty" yaml:"queryName,omitempty"`
	Type           *string     `json:"type,omitempty" yaml:"type,omitempty"`
	FlexStatements []Statement `json:"flexStatements" yaml:"flexStatements"`
}

// QueryResponseSchema maps FlexQueryResponse attributes to their fields.
var QueryResponseSchema = NewSchema("FlexQueryResponse", map[string]Field[QueryResponse]{
	"queryName": StringField(func(q *QueryResponse) **string { return &q.QueryName }),
	"type":      StringField(func(q *QueryResponse) **string { return &q.Type }),
})

// Statement is one reporting period of one account.
type Statement struct {
	AccountID        *string              `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	FromDate         *time.Time           `json:"fromDate,omitempty" yaml:"fromDate,omitempty"`
	ToDate           *time.Time           `json:"toDate,omitempty" yaml:"toDate,omitempty"`
	Period           *string              `json:"period,omitempty" yaml:"period,omitempty"`
	WhenGenerated    *time.Time           `json:"whenGenerated,omitempty" yaml:"whenGenerated,omitempty"`
	Trades           []Trade              `json:"trades" yaml:"trades"`
	CashTransactions []CashTransaction    `json:"cashTransactions" yaml:"cashTransactions"`
	CashReport       []CashReportCurrency `json:"cashReport,omitempty" yaml:"cashReport,omitempty"`
}

// StatementSchema maps FlexStatement attributes to their fields.
var StatementSchema = NewSchema("FlexStatement", map[string]Field[Statement]{
	"accountId":     StringField(func(s *Statement) **string { return &s.AccountID }),
	"fromDate":      DateField(func(s *Statement) **time.Time { return &s.FromDate }),
	"toDate":        DateField(func(s *Statement) **time.Time { return &s.ToDate }),
	"period":        StringField(func(s *Statement) **string { return &s.Period }),
	"whenGenerated": DateTimeField(func(s *Statement) **time.Time { return &s.WhenGenerated }),
})

// TradeCount returns the number of trades across all statements.
func (q *QueryResponse) TradeCount() int {
	n := 0
	for _, s := range q.FlexStatements {
		n += len(s.Trades)
	}
	return n
}

// CashTransactionCount returns the number of cash transactions across all
// statements.
func (q *QueryResponse) CashTransactionCount() int {
	n := 0
	for _, s := range q.FlexStatements {
		n += len(s.CashTransactions)
	}
	return n
}
