// Package genescan turns a workbook of NCBI gene identifiers into a table
// of protein accessions, gene lengths and protein lengths.
package genescan

import (
	"context"
	"fmt"

	"github.com/kiltia/genescan/config"

	"go.uber.org/zap"
)

// Runner drives one batch: identifiers in, output workbook out.
type Runner struct {
	src     Source
	fetcher Fetcher
	sink    Sink
}

func NewRunner(src Source, fetcher Fetcher, sink Sink) *Runner {
	return &Runner{
		src:     src,
		fetcher: fetcher,
		sink:    sink,
	}
}

// Run processes every identifier in input order, strictly one at a time.
// A failed identifier is logged and recorded with absent values; it never
// aborts the batch. The whole table is held in memory and written once at
// the end, so a crash mid-batch loses all progress.
func (r *Runner) Run(ctx context.Context) (string, error) {
	ids, err := r.src.GeneIDs()
	if err != nil {
		return "", fmt.Errorf("reading gene identifiers: %w", err)
	}

	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		values, err := r.fetcher.FetchGeneData(ctx, id)
		if err != nil {
			zap.S().Errorw(
				"error processing gene",
				"gene_id", id,
				"error", err,
			)
			rows = append(rows, Row{GeneID: id})
			continue
		}
		rows = append(rows, Row{GeneID: id, Values: &values})
	}

	outputPath, err := r.sink.WriteRows(rows)
	if err != nil {
		return "", fmt.Errorf("writing output table: %w", err)
	}
	zap.S().Infow("output saved", "path", outputPath)
	return outputPath, nil
}

// ProcessGeneList wires the concrete source, fetcher and sink for one batch
// over the workbook at inputPath. Contact-configuration errors are returned
// before anything is fetched or written.
func ProcessGeneList(
	ctx context.Context,
	cfg *config.Config,
	inputPath string,
) (string, error) {
	email, err := config.ReadContactEmail(cfg.Entrez.ContactPath)
	if err != nil {
		return "", err
	}

	client := NewEntrezClient(cfg.Entrez, email)
	runner := NewRunner(
		NewWorkbookSource(inputPath, cfg.Input.IDColumn),
		NewEntrezFetcher(client, cfg.Entrez.MaxDelay),
		NewWorkbookSink(inputPath, cfg.Input.OutputSuffix),
	)
	return runner.Run(ctx)
}
