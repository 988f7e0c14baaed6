// Package flexclient retrieves Flex Query reports from the IBKR Flex Web
// Service.
//
// Retrieval is a two-phase protocol. SendRequest asks the service to generate
// a report and returns a reference code; GetStatement fetches the report for
// that code once it is ready. Download drives both phases with fixed-interval
// retries.
package flexclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/xmlpath.v2"

	"romamo/ibkr-flex/internal/flexerror"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/xmlutils"
)

const (
	// DefaultBaseURL is the production Flex Web Service endpoint.
	DefaultBaseURL = "https://ndcdyn.interactivebrokers.com/AccountManagement/FlexWebService"
	// DefaultUserAgent identifies the client to the service.
	DefaultUserAgent = "go/ibkr-flex"
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 30 * time.Second

	// APIVersion is the protocol version sent as the v parameter.
	APIVersion = "3"

	statusSuccess = "Success"
	envelopeTag   = "<FlexStatementResponse"
)

var (
	envelopePaths = xmlutils.DefaultFlexXPaths().Envelope
	statusPath    = xmlpath.MustCompile(envelopePaths.Status)
	referencePath = xmlpath.MustCompile(envelopePaths.ReferenceCode)
	errorCodePath = xmlpath.MustCompile(envelopePaths.ErrorCode)
	errorMsgPath  = xmlpath.MustCompile(envelopePaths.ErrorMessage)
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config configures a Client. Zero values select the defaults.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
	Sleep      SleepFunc
}

// DateRange is an optional report period in yyyyMMdd form. Empty bounds are
// not sent.
type DateRange struct {
	From string
	To   string
}

// DownloadRequest describes one report download.
type DownloadRequest struct {
	Token         string
	QueryID       string
	MaxRetries    int
	RetryInterval time.Duration
	FromDate      string
	ToDate        string
}

// Client talks to the Flex Web Service. A Client holds no per-call state and
// may be shared by concurrent downloads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     logging.Logger
	sleep      SleepFunc
}

// NewClient creates a new Flex Web Service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		logger:     logger,
		sleep:      sleep,
	}
}

// SendRequest asks the service to generate the report for queryID and
// returns the reference code to fetch it with.
func (c *Client) SendRequest(ctx context.Context, token, queryID string, dates DateRange) (string, error) {
	params := url.Values{}
	params.Set("t", token)
	params.Set("q", queryID)
	params.Set("v", APIVersion)
	if dates.From != "" {
		params.Set("fd", dates.From)
	}
	if dates.To != "" {
		params.Set("td", dates.To)
	}

	body, err := c.get(ctx, "SendRequest", params)
	if err != nil {
		return "", err
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return "", err
	}
	if env.status == statusSuccess {
		if env.referenceCode == "" {
			return "", &flexerror.FlexError{Kind: flexerror.KindProvider, Message: "ReferenceCode missing in success response"}
		}
		return env.referenceCode, nil
	}

	kind := flexerror.Classify(env.errorCode)
	if kind == flexerror.KindNotReady {
		kind = flexerror.KindProvider
	}
	return "", &flexerror.FlexError{Kind: kind, Code: env.errorCode, Message: env.errorMessage}
}

// GetStatement fetches the report for referenceCode. A body that is not an
// error envelope is returned verbatim without validation.
func (c *Client) GetStatement(ctx context.Context, token, referenceCode string) ([]byte, error) {
	params := url.Values{}
	params.Set("t", token)
	params.Set("q", referenceCode)
	params.Set("v", APIVersion)

	body, err := c.get(ctx, "GetStatement", params)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if !bytes.HasPrefix(trimmed, []byte(envelopeTag)) {
		return body, nil
	}

	env, err := parseEnvelope(trimmed)
	if err != nil {
		return nil, err
	}
	if env.status == statusSuccess {
		return body, nil
	}

	var kind flexerror.Kind
	switch env.errorCode {
	case flexerror.CodeNotReady:
		kind = flexerror.KindNotReady
	case flexerror.CodeRateLimit:
		kind = flexerror.KindRateLimit
	default:
		kind = flexerror.KindProvider
	}
	return nil, &flexerror.FlexError{Kind: kind, Code: env.errorCode, Message: env.errorMessage}
}

// Download generates and fetches a report. Each phase is attempted up to
// MaxRetries times (at least once), sleeping RetryInterval between attempts
// only while generation is in progress (phase one) or the statement is not
// ready (phase two). Every other error is returned immediately.
func (c *Client) Download(ctx context.Context, req DownloadRequest) ([]byte, error) {
	attempts := req.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	logger := c.logger.WithField(logging.FieldQueryID, req.QueryID)

	logger.Info("Requesting Flex statement generation",
		logging.F(logging.FieldPhase, "SendRequest"),
		logging.F(logging.FieldMaxAttempts, attempts))

	var ref string
	for attempt := 1; ; attempt++ {
		logger.Debug("Sending request", logging.F(logging.FieldAttempt, attempt))

		var err error
		ref, err = c.SendRequest(ctx, req.Token, req.QueryID, DateRange{From: req.FromDate, To: req.ToDate})
		if err == nil {
			break
		}
		if !errors.Is(err, flexerror.ErrInProgress) || attempt >= attempts {
			return nil, err
		}
		logger.WithError(err).Warn("Statement generation in progress, retrying",
			logging.F(logging.FieldAttempt, attempt),
			logging.F(logging.FieldDuration, req.RetryInterval.Milliseconds()))
		if err := c.sleep(ctx, req.RetryInterval); err != nil {
			return nil, err
		}
	}

	logger = logger.WithField(logging.FieldReferenceCode, ref)
	logger.Info("Fetching Flex statement", logging.F(logging.FieldPhase, "GetStatement"))

	for attempt := 1; ; attempt++ {
		logger.Debug("Getting statement", logging.F(logging.FieldAttempt, attempt))

		body, err := c.GetStatement(ctx, req.Token, ref)
		if err == nil {
			logger.Info("Flex statement downloaded", logging.F(logging.FieldCount, len(body)))
			return body, nil
		}
		if !errors.Is(err, flexerror.ErrNotReady) {
			return nil, err
		}
		if attempt >= attempts {
			return nil, &flexerror.FlexError{
				Kind:    flexerror.KindNotReady,
				Code:    flexerror.CodeNotReady,
				Message: fmt.Sprintf("maximum retries (%d) exceeded while waiting for report", attempts),
			}
		}
		logger.Warn("Statement not ready, retrying",
			logging.F(logging.FieldAttempt, attempt),
			logging.F(logging.FieldDuration, req.RetryInterval.Milliseconds()))
		if err := c.sleep(ctx, req.RetryInterval); err != nil {
			return nil, err
		}
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &flexerror.FlexError{Kind: flexerror.KindTransport, Message: endpoint + " request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &flexerror.FlexError{
			Kind:    flexerror.KindTransport,
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Message: fmt.Sprintf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &flexerror.FlexError{Kind: flexerror.KindTransport, Message: "failed to read " + endpoint + " response", Err: err}
	}
	return body, nil
}

type envelope struct {
	status        string
	referenceCode string
	errorCode     string
	errorMessage  string
}

func parseEnvelope(body []byte) (envelope, error) {
	root, err := xmlutils.ParseBytes(body)
	if err != nil {
		return envelope{}, &flexerror.FlexError{Kind: flexerror.KindProvider, Message: "malformed response envelope", Err: err}
	}
	return envelope{
		status:        xmlutils.First(root, statusPath),
		referenceCode: xmlutils.First(root, referencePath),
		errorCode:     xmlutils.First(root, errorCodePath),
		errorMessage:  xmlutils.First(root, errorMsgPath),
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
