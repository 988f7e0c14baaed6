package xmlutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/xmlpath.v2"
)

const report = `<?xml version="1.0" encoding="UTF-8"?>
<FlexQueryResponse queryName="Q" type="AF">
  <FlexStatements count="2">
    <FlexStatement accountId="U1"/>
    <FlexStatement accountId="U2"/>
  </FlexStatements>
</FlexQueryResponse>`

const envelope = `<FlexStatementResponse timestamp="13 December, 2025 10:00 AM EST">
  <Status>Warn</Status>
  <ErrorCode> 1019 </ErrorCode>
  <ErrorMessage>Statement generation in progress.
    Please try again shortly.</ErrorMessage>
</FlexStatementResponse>`

func TestGetOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		index    int
		expected string
	}{
		{"valid index returns value", []string{"a", "b", "c"}, 1, "b"},
		{"first index", []string{"first", "second"}, 0, "first"},
		{"index out of bounds returns empty", []string{"a", "b"}, 5, ""},
		{"negative index returns empty", []string{"a"}, -1, ""},
		{"nil slice returns empty", nil, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetOrEmpty(tt.slice, tt.index))
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \n\tb   c \n"))
	assert.Equal(t, "", CleanText(" \n "))
	assert.Equal(t, "1019", CleanText("1019"))
}

func TestDefaultFlexXPaths_Envelope(t *testing.T) {
	paths := DefaultFlexXPaths()
	root, err := ParseBytes([]byte(envelope))
	require.NoError(t, err)

	assert.Equal(t, "Warn", First(root, xmlpath.MustCompile(paths.Envelope.Status)))
	assert.Equal(t, "1019", First(root, xmlpath.MustCompile(paths.Envelope.ErrorCode)))
	assert.Equal(t, "Statement generation in progress. Please try again shortly.",
		First(root, xmlpath.MustCompile(paths.Envelope.ErrorMessage)))
	assert.Equal(t, "", First(root, xmlpath.MustCompile(paths.Envelope.ReferenceCode)))
}

func TestDefaultFlexXPaths_Report(t *testing.T) {
	paths := DefaultFlexXPaths()
	root, err := ParseBytes([]byte(report))
	require.NoError(t, err)

	assert.True(t, xmlpath.MustCompile(paths.Report.Root).Exists(root))
	ids, err := ExtractFromXML(root, paths.Report.AccountID)
	require.NoError(t, err)
	assert.Equal(t, []string{"U1", "U2"}, ids)

	statements, err := ExtractFromXML(root, paths.Report.Statements)
	require.NoError(t, err)
	assert.Len(t, statements, 2)
}

func TestParse_Charset(t *testing.T) {
	latin1 := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Status>Z\xfcrich</Status>"
	root, err := Parse(strings.NewReader(latin1))
	require.NoError(t, err)
	assert.Equal(t, "Zürich", First(root, xmlpath.MustCompile("/Status")))
}

func TestParse_Malformed(t *testing.T) {
	_, err := ParseBytes([]byte("<FlexQueryResponse>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse XML")
}

func TestLoadXMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xml")
	require.NoError(t, os.WriteFile(path, []byte(report), 0o600))

	root, err := LoadXMLFile(path)
	require.NoError(t, err)
	assert.NotNil(t, root)

	_, err = LoadXMLFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open XML file")
}

func TestExtractFromXML_InvalidXPath(t *testing.T) {
	root, err := ParseBytes([]byte(report))
	require.NoError(t, err)

	_, err = ExtractFromXML(root, "[[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile XPath")
}
