package genescan

import "context"

// GeneValues are the three values derived for one gene identifier.
type GeneValues struct {
	Accession     string
	GeneLength    int
	ProteinLength int
}

// Row is one line of the output table. Values is nil when the fetch for
// this identifier failed; the value columns are then left empty.
type Row struct {
	GeneID string
	Values *GeneValues
}

// Fetcher derives GeneValues for a single gene identifier.
type Fetcher interface {
	FetchGeneData(ctx context.Context, geneID string) (GeneValues, error)
}

// Source yields the ordered list of gene identifiers to process.
type Source interface {
	GeneIDs() ([]string, error)
}

// Sink persists the accumulated output table and returns the path it was
// written to.
type Sink interface {
	WriteRows(rows []Row) (string, error)
}
