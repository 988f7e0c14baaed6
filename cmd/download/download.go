// Package download handles the Flex Web Service download command
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"romamo/ibkr-flex/cmd/root"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/dateutils"
	"romamo/ibkr-flex/internal/fileutils"
	"romamo/ibkr-flex/internal/flexerror"
	"romamo/ibkr-flex/internal/logging"

	"github.com/spf13/cobra"
)

// Options holds the download command flags.
type Options struct {
	Token         string
	QueryID       string
	FromDate      string
	ToDate        string
	Output        string
	MaxRetries    int           // 0 keeps the configured value
	RetryInterval time.Duration // negative keeps the configured value
}

var opts = Options{RetryInterval: -1}

var retryIntervalSeconds int

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download a Flex Query report",
	Long: `Download a Flex Query report from the Interactive Brokers Flex Web Service.

The report is first requested, then fetched once generated. Both steps are
retried while the service reports that the statement is still being prepared.

Example:
  ibkr-flex download -t TOKEN -q 123456 -o report.xml
  ibkr-flex download --from-date 2025-01-01 --to-date 2025-01-31 > report.xml`,
	RunE: downloadFunc,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "Flex Web Service token (default from IBKR_FLEX_TOKEN)")
	Cmd.Flags().StringVarP(&opts.QueryID, "query-id", "q", "", "Flex Query ID (default from IBKR_FLEX_QUERY_ID)")
	Cmd.Flags().StringVar(&opts.FromDate, "from-date", "", "Report start date (YYYY-MM-DD or YYYYMMDD)")
	Cmd.Flags().StringVar(&opts.ToDate, "to-date", "", "Report end date (YYYY-MM-DD or YYYYMMDD), defaults to yesterday when --from-date is set")
	Cmd.Flags().IntVar(&opts.MaxRetries, "max-retries", 0, "Attempts per phase (default from configuration)")
	Cmd.Flags().IntVar(&retryIntervalSeconds, "retry-interval", 0, "Seconds between attempts (default from configuration)")
}

func downloadFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	o := opts
	o.Output = root.SharedFlags.Output
	if cmd.Flags().Changed("retry-interval") {
		o.RetryInterval = time.Duration(retryIntervalSeconds) * time.Second
	}

	return Run(cmd.Context(), appContainer, o, cmd.OutOrStdout(), time.Now())
}

// Run downloads the report described by o and writes it to o.Output, or to
// stdout when no output file is given. now anchors the default end date.
func Run(ctx context.Context, c *container.Container, o Options, stdout io.Writer, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.GetLogger()

	fromDate, toDate, err := ResolveDates(o.FromDate, o.ToDate, now)
	if err != nil {
		return err
	}

	req := c.DownloadRequest(o.Token, o.QueryID, fromDate, toDate)
	if req.Token == "" {
		return fmt.Errorf("flex token is required (use --token or IBKR_FLEX_TOKEN)")
	}
	if req.QueryID == "" {
		return fmt.Errorf("flex query ID is required (use --query-id or IBKR_FLEX_QUERY_ID)")
	}
	if o.MaxRetries > 0 {
		req.MaxRetries = o.MaxRetries
	}
	if o.RetryInterval >= 0 {
		req.RetryInterval = o.RetryInterval
	}

	start := time.Now()
	body, err := c.GetClient().Download(ctx, req)
	if err != nil {
		var flexErr *flexerror.FlexError
		if errors.As(err, &flexErr) {
			logger.WithError(err).Error("Flex download failed",
				logging.F(logging.FieldQueryID, req.QueryID),
				logging.F(logging.FieldErrorCode, flexErr.Code))
		}
		return err
	}

	if err := fileutils.WriteOutput(o.Output, body, stdout); err != nil {
		return err
	}

	fields := []logging.Field{
		logging.F(logging.FieldQueryID, req.QueryID),
		logging.F(logging.FieldCount, len(body)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()),
	}
	if o.Output != "" && o.Output != fileutils.StdStream {
		fields = append(fields, logging.F(logging.FieldOutputFile, o.Output))
	}
	logger.Info("Flex report downloaded", fields...)
	return nil
}

// ResolveDates normalizes the optional report period to yyyyMMdd. A start
// date without an end date ends yesterday.
func ResolveDates(fromDate, toDate string, now time.Time) (string, string, error) {
	from, err := requestDate("from-date", fromDate)
	if err != nil {
		return "", "", err
	}
	to, err := requestDate("to-date", toDate)
	if err != nil {
		return "", "", err
	}
	if from != "" && to == "" {
		to = dateutils.DefaultToDate(now)
	}
	return from, to, nil
}

func requestDate(flag, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	normalized := dateutils.NormalizeRequestDate(value)
	if _, err := time.Parse(dateutils.RequestDateLayout, normalized); err != nil {
		return "", fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD or YYYYMMDD", flag, value)
	}
	return normalized, nil
}
