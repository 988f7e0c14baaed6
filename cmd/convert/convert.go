// Package convert handles the CSV export command
package convert

import (
	"fmt"
	"io"

	"romamo/ibkr-flex/cmd/common"
	"romamo/ibkr-flex/cmd/root"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Flex Query report to CSV",
	Long: `Convert a Flex Query XML report to CSV files.

Trades, cash transactions and the cash report are written to trades.csv,
cash_transactions.csv and cash_report.csv in the output directory, using the
configured CSV delimiter.

Example:
  ibkr-flex convert -i report.xml -o out/
  ibkr-flex convert -i report.xml -o out/ --delimiter ';'`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	_, err := Run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, cmd.InOrStdin())
	return err
}

// Run parses the report at input and writes its CSV files into outputDir,
// returning the written paths.
func Run(c *container.Container, input, outputDir string, validate bool, stdin io.Reader) ([]string, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("an output directory is required (use --output)")
	}

	p := c.GetParser()
	resp, err := common.ReadReport(p, input, stdin, validate, c.GetLogger())
	if err != nil {
		return nil, err
	}

	written, err := p.WriteToCSV(resp, outputDir, c.GetConfig().DelimiterRune())
	if err != nil {
		return written, fmt.Errorf("error writing CSV files: %w", err)
	}

	c.GetLogger().Info("Conversion completed successfully!",
		logging.F(logging.FieldOutputFile, outputDir),
		logging.F(logging.FieldCount, len(written)))
	return written, nil
}
