package flexparser

import (
	"strings"

	"romamo/ibkr-flex/internal/currencyutils"
	"romamo/ibkr-flex/internal/dateutils"
	"romamo/ibkr-flex/internal/flexerror"
	"romamo/ibkr-flex/internal/models"
)

// Fixup rewrites a legacy attribute value before it is coerced.
type Fixup struct {
	Field   string
	Match   func(value string) bool
	Replace string
}

func equals(want string) func(string) bool {
	return func(value string) bool { return value == want }
}

// Fixups is the ordered table of legacy value rewrites. The first matching
// rule for a field wins.
var Fixups = []Fixup{
	{Field: "type", Match: equals("Deposits/Withdrawals"), Replace: string(models.CashDepositsWithdrawals)},
	{Field: "type", Match: equals("ACAT"), Replace: string(models.CashACATS)},
	{Field: "orderType", Match: func(v string) bool { return strings.Contains(v, ";") }, Replace: string(models.OrderTypeMultiple)},
}

func applyFixups(field, value string) string {
	for _, f := range Fixups {
		if f.Field == field && f.Match(value) {
			return f.Replace
		}
	}
	return value
}

// MapAttributes converts the raw attributes of one element into a typed field
// map for schema. Attributes the schema does not declare are dropped. Scalar
// values that cannot be coerced are nil; an unknown classification code is a
// *flexerror.ParseError.
func MapAttributes(attrs map[string]string, schema models.FieldTyper) (models.FieldMap, error) {
	fields := make(models.FieldMap, len(attrs))
	for key, raw := range attrs {
		ft, ok := schema.FieldType(key)
		if !ok {
			continue
		}

		if ft == models.FieldCodeList {
			codes, err := parseCodes(raw)
			if err != nil {
				return nil, &flexerror.ParseError{Record: schema.Name(), Field: key, Value: raw, Err: err}
			}
			fields[key] = models.Value{Type: ft, Codes: codes}
			continue
		}

		fields[key] = coerce(ft, applyFixups(key, raw))
	}
	return fields, nil
}

func coerce(ft models.FieldType, raw string) models.Value {
	v := models.Value{Type: ft}
	switch ft {
	case models.FieldDateTime:
		if t, ok := dateutils.ParseDateTime(raw); ok {
			v.Time = &t
		}
	case models.FieldDate:
		if t, ok := dateutils.ParseDate(raw); ok {
			v.Time = &t
		}
	case models.FieldTime:
		if c, ok := dateutils.ParseTime(raw); ok {
			v.Clock = &c
		}
	case models.FieldBool:
		if b, ok := dateutils.ParseBool(raw); ok {
			v.Bool = &b
		}
	case models.FieldDecimal:
		if d, ok := currencyutils.ParseDecimal(raw); ok {
			v.Decimal = &d
		}
	default:
		if raw != "" {
			s := raw
			v.Str = &s
		}
	}
	return v
}

// parseCodes splits a code list on ";" or, failing that, on ",".
func parseCodes(raw string) ([]models.Code, error) {
	codes := []models.Code{}
	if raw == "" {
		return codes, nil
	}
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}
	for _, token := range strings.Split(raw, sep) {
		if token == "" {
			continue
		}
		code, err := models.ParseCode(token)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
