package flexerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FlexError
		expected string
	}{
		{
			name:     "rate limit",
			err:      &FlexError{Kind: KindRateLimit, Code: "1008", Message: "Too many requests"},
			expected: "flex rate limit exceeded: Too many requests",
		},
		{
			name:     "auth",
			err:      &FlexError{Kind: KindAuth, Code: "1012", Message: "Token has expired."},
			expected: "flex authentication error: Token has expired.",
		},
		{
			name:     "provider keeps code",
			err:      &FlexError{Kind: KindProvider, Code: "1020", Message: "Invalid request"},
			expected: "flex API error 1020: Invalid request",
		},
		{
			name:     "transport with cause",
			err:      &FlexError{Kind: KindTransport, Message: "GET SendRequest", Err: errors.New("connection refused")},
			expected: "flex transport error: GET SendRequest: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFlexError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("downloading: %w", &FlexError{Kind: KindNotReady, Code: "1003", Message: "Statement is not ready"})

	assert.True(t, errors.Is(err, ErrNotReady))
	assert.False(t, errors.Is(err, ErrInProgress))
	assert.False(t, errors.Is(err, ErrProvider))

	var fe *FlexError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "1003", fe.Code)
}

func TestFlexError_UnwrapCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := &FlexError{Kind: KindTransport, Message: "GET", Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestClassify(t *testing.T) {
	tests := map[string]Kind{
		"1003": KindNotReady,
		"1008": KindRateLimit,
		"1009": KindAuth,
		"1012": KindAuth,
		"1019": KindInProgress,
		"1018": KindProvider,
		"":     KindProvider,
	}
	for code, want := range tests {
		assert.Equal(t, want, Classify(code), "code %q", code)
	}
}

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(&FlexError{Kind: KindRateLimit}))
	assert.True(t, IsRecoverable(&FlexError{Kind: KindInProgress}))
	assert.True(t, IsRecoverable(&FlexError{Kind: KindNotReady}))
	assert.False(t, IsRecoverable(&FlexError{Kind: KindAuth}))
	assert.False(t, IsRecoverable(&FlexError{Kind: KindTransport}))
	assert.False(t, IsRecoverable(errors.New("plain")))
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Record: "CashTransaction",
		Field:  "code",
		Value:  "XYZ",
		Err:    ErrUnknownCode,
	}

	assert.Equal(t, "CashTransaction: failed to parse code='XYZ': unknown classification code", err.Error())
	assert.True(t, errors.Is(err, ErrUnknownCode))
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "with actual root",
			err: &InvalidFormatError{
				Source:         "/tmp/report.xml",
				ExpectedFormat: "FlexQueryResponse",
				Actual:         "FlexStatementResponse",
				Msg:            "unexpected root element",
			},
			expected: "invalid format in '/tmp/report.xml': unexpected root element. Expected: FlexQueryResponse. Found: FlexStatementResponse",
		},
		{
			name: "without actual root",
			err: &InvalidFormatError{
				Source:         "<bytes>",
				ExpectedFormat: "FlexQueryResponse",
				Msg:            "malformed XML",
				Err:            errors.New("EOF"),
			},
			expected: "invalid format in '<bytes>': malformed XML. Expected: FlexQueryResponse: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrFormat))
		})
	}
}
