// Package parse handles the report inspection command
package parse

import (
	"fmt"
	"io"

	"romamo/ibkr-flex/cmd/common"
	"romamo/ibkr-flex/cmd/root"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/report"
	"romamo/ibkr-flex/internal/validation"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a Flex Query report and print its contents",
	Long: `Parse a Flex Query XML report and print a per-statement summary, or the
complete record tree as YAML or JSON.

Example:
  ibkr-flex parse -i report.xml
  ibkr-flex download | ibkr-flex parse -i - --format json`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatSummary, "Output format (summary, yaml, json)")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	return Run(appContainer, root.SharedFlags.Input, format, root.SharedFlags.Validate, cmd.InOrStdin(), cmd.OutOrStdout())
}

// Run parses the report at input and writes it to stdout in the given format.
func Run(c *container.Container, input, format string, validate bool, stdin io.Reader, stdout io.Writer) error {
	if err := validation.IsValidOutputFormat(format, report.Formats...); err != nil {
		return err
	}

	resp, err := common.ReadReport(c.GetParser(), input, stdin, validate, c.GetLogger())
	if err != nil {
		return err
	}

	out, err := report.NewReportGenerator(c.GetLogger()).GenerateReport(resp, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}
