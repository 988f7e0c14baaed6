// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

// FlexXPaths contains the XPath expressions used on Flex Web Service
// documents.
type FlexXPaths struct {
	// Envelope addresses the FlexStatementResponse answer of SendRequest and
	// the error answer of GetStatement.
	Envelope struct {
		Status        string
		ReferenceCode string
		ErrorCode     string
		ErrorMessage  string
	}

	// Report addresses a Flex Query report.
	Report struct {
		Root       string
		Statements string
		AccountID  string
	}
}

// DefaultFlexXPaths returns the XPath expressions for Flex Web Service
// documents.
func DefaultFlexXPaths() FlexXPaths {
	var flex FlexXPaths

	// Any root element: SendRequest and GetStatement answer with
	// FlexStatementResponse, older deployments with FlexWebServiceResponse.
	flex.Envelope.Status = "/*/Status"
	flex.Envelope.ReferenceCode = "/*/ReferenceCode"
	flex.Envelope.ErrorCode = "/*/ErrorCode"
	flex.Envelope.ErrorMessage = "/*/ErrorMessage"

	flex.Report.Root = "/FlexQueryResponse"
	flex.Report.Statements = "/FlexQueryResponse/FlexStatements/FlexStatement"
	flex.Report.AccountID = "/FlexQueryResponse/FlexStatements/FlexStatement/@accountId"

	return flex
}
