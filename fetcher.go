package genescan

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// EntrezFetcher derives GeneValues for one identifier with two sequential
// Entrez lookups: the gene record, then the protein FASTA.
type EntrezFetcher struct {
	client   *EntrezClient
	maxDelay time.Duration
}

func NewEntrezFetcher(client *EntrezClient, maxDelay time.Duration) *EntrezFetcher {
	return &EntrezFetcher{
		client:   client,
		maxDelay: maxDelay,
	}
}

func (f *EntrezFetcher) FetchGeneData(
	ctx context.Context,
	geneID string,
) (GeneValues, error) {
	id, err := strconv.Atoi(strings.TrimSpace(geneID))
	if err != nil {
		return GeneValues{}, fmt.Errorf("gene identifier %q is not an integer", geneID)
	}

	// Courtesy pause before hitting the shared NCBI service.
	f.pause()

	locus, err := f.client.FetchGeneRecord(ctx, id)
	if err != nil {
		return GeneValues{}, err
	}
	geneLength := locus.Length()
	zap.S().Infow(
		"processed gene record",
		"gene_id", id,
		"gene_length", geneLength,
	)

	proteinLength, err := f.client.FetchProteinLength(ctx, locus.ProteinAccession)
	if err != nil {
		return GeneValues{}, err
	}
	zap.S().Infow(
		"processed protein record",
		"accession", locus.ProteinAccession,
		"protein_length", proteinLength,
	)

	return GeneValues{
		Accession:     locus.ProteinAccession,
		GeneLength:    geneLength,
		ProteinLength: proteinLength,
	}, nil
}

// pause sleeps for a uniformly random duration in [0, maxDelay).
func (f *EntrezFetcher) pause() {
	if f.maxDelay <= 0 {
		return
	}
	time.Sleep(time.Duration(rand.Int63n(int64(f.maxDelay))))
}
