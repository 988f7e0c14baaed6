// Package batch handles batch processing of report directories
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"romamo/ibkr-flex/cmd/root"
	"romamo/ibkr-flex/internal/batch"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
	"romamo/ibkr-flex/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert a directory of Flex Query reports",
	Long: `Batch convert all Flex Query XML reports in an input directory to CSV.

Statements are merged per account across reports. Trades and cash transactions
that appear in several overlapping reports are written once. Each account gets
its own output directory named {account}_{start}_{end}.

Example:
  ibkr-flex batch -i reports/ -o out/`,
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	count, err := Run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output)
	if err != nil {
		return err
	}
	appContainer.GetLogger().Info(fmt.Sprintf("Batch processing completed. %d account directories written.", count))
	return nil
}

// Run converts every report in inputDir and writes one CSV directory per
// account below outputDir. It returns the number of accounts written.
func Run(c *container.Container, inputDir, outputDir string) (int, error) {
	logger := c.GetLogger()
	if inputDir == "" || outputDir == "" {
		return 0, fmt.Errorf("input and output directories must be specified")
	}
	if err := validation.IsValidDirectory(inputDir); err != nil {
		return 0, err
	}

	files, err := batch.FindReports(inputDir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		logger.Warn("No XML reports found in input directory", logging.F(logging.FieldFile, inputDir))
		return 0, nil
	}
	aggregator := batch.NewBatchAggregator(logger)
	files = aggregator.SelectReports(files)
	if len(files) == 0 {
		return 0, fmt.Errorf("no Flex Query reports found in %s", inputDir)
	}
	logger.Info("Found files for processing", logging.F(logging.FieldCount, len(files)))

	p := c.GetParser()
	groups, err := aggregator.Aggregate(files, p.ParseFile)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, group := range groups {
		dir := filepath.Join(outputDir, batch.OutputDirName(group.AccountID, group.DateRange))
		resp := &models.QueryResponse{FlexStatements: []models.Statement{group.Statement}}
		if _, err := p.WriteToCSV(resp, dir, c.GetConfig().DelimiterRune()); err != nil {
			logger.WithError(err).Error("Failed to write account group",
				logging.F(logging.FieldAccountID, group.AccountID))
			continue
		}
		written++
	}
	return written, nil
}
