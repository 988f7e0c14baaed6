package container

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"romamo/ibkr-flex/internal/config"
	"romamo/ibkr-flex/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Flex.Token = "config-token"
	cfg.Flex.QueryID = "config-query"
	cfg.Flex.BaseURL = "https://example.invalid"
	cfg.Flex.MaxRetries = 4
	cfg.Flex.RetryIntervalSeconds = 7
	cfg.Flex.TimeoutSeconds = 30
	cfg.CSV.Delimiter = ";"
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := NewContainer(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, container)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, container)
			assert.NotNil(t, container.GetLogger())
			assert.NotNil(t, container.GetClient())
			assert.NotNil(t, container.GetParser())
		})
	}
}

func TestContainer_ConvenienceMethods(t *testing.T) {
	cfg := testConfig()
	mockLog := logging.NewMockLogger()

	container, err := NewContainer(cfg, WithLogger(mockLog))
	require.NoError(t, err)

	assert.Equal(t, mockLog, container.GetLogger())
	assert.Equal(t, cfg, container.GetConfig())
	assert.Equal(t, ';', container.GetConfig().DelimiterRune())

	assert.NoError(t, container.Close())
}

func TestContainer_DownloadRequest(t *testing.T) {
	container, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	req := container.DownloadRequest("", "", "20250101", "20250131")
	assert.Equal(t, "config-token", req.Token)
	assert.Equal(t, "config-query", req.QueryID)
	assert.Equal(t, 4, req.MaxRetries)
	assert.Equal(t, 7*time.Second, req.RetryInterval)
	assert.Equal(t, "20250101", req.FromDate)
	assert.Equal(t, "20250131", req.ToDate)

	req = container.DownloadRequest("flag-token", "flag-query", "", "")
	assert.Equal(t, "flag-token", req.Token)
	assert.Equal(t, "flag-query", req.QueryID)
}

func TestContainer_WiresClientToConfiguredService(t *testing.T) {
	var sends, gets int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/SendRequest":
			sends++
			fmt.Fprint(w, `<FlexStatementResponse><Status>Success</Status><ReferenceCode>REF</ReferenceCode></FlexStatementResponse>`)
		case "/GetStatement":
			gets++
			if gets == 1 {
				fmt.Fprint(w, `<FlexStatementResponse><Status>Warn</Status><ErrorCode>1003</ErrorCode><ErrorMessage>not ready</ErrorMessage></FlexStatementResponse>`)
				return
			}
			fmt.Fprint(w, `<FlexQueryResponse queryName="Q"/>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Flex.BaseURL = server.URL

	var slept []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	container, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()), WithSleep(sleep))
	require.NoError(t, err)

	body, err := container.GetClient().Download(context.Background(), container.DownloadRequest("", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, `<FlexQueryResponse queryName="Q"/>`, string(body))
	assert.Equal(t, 1, sends)
	assert.Equal(t, 2, gets)
	assert.Equal(t, []time.Duration{7 * time.Second}, slept)
}
