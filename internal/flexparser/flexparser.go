// Package flexparser converts Flex Query XML reports into model records.
//
// Only element attributes carry record fields; child elements are visited
// solely to descend through the list containers of a statement
// (Trades, CashTransactions, CashReport).
package flexparser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"gopkg.in/xmlpath.v2"

	"romamo/ibkr-flex/internal/flexerror"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
	"romamo/ibkr-flex/internal/parser"
	"romamo/ibkr-flex/internal/xmlutils"
)

// RootElement is the root tag of every Flex Query report.
const RootElement = "FlexQueryResponse"

const bytesSource = "<bytes>"

var rootPath = xmlpath.MustCompile(xmlutils.DefaultFlexXPaths().Report.Root)

// node is a generic XML element.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n *node) attributes() map[string]string {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		attrs[a.Name.Local] = a.Value
	}
	return attrs
}

// child returns the first child element named name, or nil.
func (n *node) child(name string) *node {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// children returns the child elements named name.
func (n *node) children(name string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// Parser parses Flex Query reports.
type Parser struct {
	parser.BaseParser
}

// NewParser returns a Parser logging to logger. A nil logger selects the
// default logrus adapter.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

// Parse reads a complete report from r.
func (p *Parser) Parse(r io.Reader) (*models.QueryResponse, error) {
	return p.parse(r, bytesSource)
}

// ParseBytes parses an in-memory report, typically the payload returned by
// the Flex Web Service.
func (p *Parser) ParseBytes(data []byte) (*models.QueryResponse, error) {
	return p.parse(bytes.NewReader(data), bytesSource)
}

// ParseFile parses the report stored at path.
func (p *Parser) ParseFile(path string) (*models.QueryResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.GetLogger().WithError(cerr).Warn("Failed to close file")
		}
	}()
	return p.parse(f, path)
}

// ValidateFormat reports whether the document in r has a FlexQueryResponse
// root. Malformed XML is reported as false with no error.
func (p *Parser) ValidateFormat(r io.Reader) (bool, error) {
	if r == nil {
		return false, fmt.Errorf("nil reader")
	}
	root, err := xmlutils.Parse(r)
	if err != nil {
		p.GetLogger().WithError(err).Debug("Document is not valid XML")
		return false, nil
	}
	return rootPath.Exists(root), nil
}

func (p *Parser) parse(r io.Reader, source string) (*models.QueryResponse, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, source)
	logger.Debug("Parsing Flex Query report")

	var root node
	if err := xmlutils.NewDecoder(r).Decode(&root); err != nil {
		return nil, &flexerror.InvalidFormatError{
			Source:         source,
			ExpectedFormat: RootElement,
			Msg:            "document is not well-formed XML",
			Err:            err,
		}
	}

	if root.XMLName.Local != RootElement {
		return nil, &flexerror.InvalidFormatError{
			Source:         source,
			ExpectedFormat: RootElement,
			Actual:         root.XMLName.Local,
			Msg:            "unexpected root element",
		}
	}

	resp, err := p.queryResponse(&root, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Parsed Flex Query report",
		logging.F("statements", len(resp.FlexStatements)),
		logging.F("trades", resp.TradeCount()),
		logging.F("cash_transactions", resp.CashTransactionCount()))
	return resp, nil
}

func (p *Parser) queryResponse(root *node, logger logging.Logger) (*models.QueryResponse, error) {
	resp, err := buildRecord(root, models.QueryResponseSchema, logger)
	if err != nil {
		return nil, err
	}

	resp.FlexStatements = []models.Statement{}
	for _, el := range root.child("FlexStatements").children("FlexStatement") {
		stmt, err := p.statement(el, logger)
		if err != nil {
			return nil, err
		}
		resp.FlexStatements = append(resp.FlexStatements, stmt)
	}
	return &resp, nil
}

func (p *Parser) statement(el *node, logger logging.Logger) (models.Statement, error) {
	stmt, err := buildRecord(el, models.StatementSchema, logger)
	if err != nil {
		return models.Statement{}, err
	}
	if stmt.AccountID != nil {
		logger = logger.WithField(logging.FieldAccountID, *stmt.AccountID)
	}

	if stmt.Trades, err = buildList(el.child("Trades"), "Trade", models.TradeSchema, logger); err != nil {
		return models.Statement{}, err
	}
	if stmt.CashTransactions, err = buildList(el.child("CashTransactions"), "CashTransaction", models.CashTransactionSchema, logger); err != nil {
		return models.Statement{}, err
	}
	if stmt.CashReport, err = p.cashReport(el, logger); err != nil {
		return models.Statement{}, err
	}

	logger.Debug("Parsed statement",
		logging.F("trades", len(stmt.Trades)),
		logging.F("cash_transactions", len(stmt.CashTransactions)),
		logging.F("cash_report", len(stmt.CashReport)))
	return stmt, nil
}

// cashReport reads CashReport/CashReportCurrency, falling back to the legacy
// CashReport/CashReportInfo and CashReportInfo/CashReportCurrency layouts.
func (p *Parser) cashReport(el *node, logger logging.Logger) ([]models.CashReportCurrency, error) {
	layouts := []struct{ container, row string }{
		{"CashReport", "CashReportCurrency"},
		{"CashReport", "CashReportInfo"},
		{"CashReportInfo", "CashReportCurrency"},
	}
	for _, l := range layouts {
		rows, err := buildList(el.child(l.container), l.row, models.CashReportCurrencySchema, logger)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return []models.CashReportCurrency{}, nil
}

// buildList converts every row element of container. A missing container
// yields an empty list.
func buildList[T any](container *node, row string, schema *models.Schema[T], logger logging.Logger) ([]T, error) {
	elems := container.children(row)
	records := make([]T, 0, len(elems))
	for i, el := range elems {
		rec, err := buildRecord(el, schema, logger)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", row, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func buildRecord[T any](el *node, schema *models.Schema[T], logger logging.Logger) (T, error) {
	attrs := el.attributes()
	for key := range attrs {
		if _, ok := schema.FieldType(key); !ok {
			logger.Debug("Dropping unknown attribute",
				logging.F(logging.FieldRecord, schema.Name()),
				logging.F(logging.FieldAttribute, key))
		}
	}

	fields, err := MapAttributes(attrs, schema)
	if err != nil {
		var zero T
		return zero, err
	}
	return schema.Build(fields), nil
}

// Parse parses a report from r with a default parser.
func Parse(r io.Reader) (*models.QueryResponse, error) {
	return NewParser(nil).Parse(r)
}

// ParseFile parses the report at path with a default parser.
func ParseFile(path string) (*models.QueryResponse, error) {
	return NewParser(nil).ParseFile(path)
}
