package xmlutils

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

// NewDecoder returns an XML decoder for r that understands the character
// sets declared by reports, e.g. ISO-8859-1.
func NewDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// Parse reads an XML document from r into an xmlpath tree.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.ParseDecoder(NewDecoder(r))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ParseBytes reads an XML document held in memory.
func ParseBytes(data []byte) (*xmlpath.Node, error) {
	return Parse(bytes.NewReader(data))
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, CleanText(iter.Node().String()))
	}

	return values, nil
}

// First returns the first value matched by path, or "" when nothing matches.
func First(root *xmlpath.Node, path *xmlpath.Path) string {
	v, ok := path.String(root)
	if !ok {
		return ""
	}
	return CleanText(v)
}

// GetOrEmpty returns the value at the specified index in a slice, or an empty string if the index is out of bounds
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}

// CleanText collapses runs of whitespace, including newlines, into single
// spaces and trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
