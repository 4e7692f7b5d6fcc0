package genescan

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// The subset of the Entrezgene XML that the extraction below navigates.
// Gene-commentary is recursive: the genomic locus commentary nests the mRNA
// products, which in turn nest the protein products.
type entrezgeneSet struct {
	XMLName xml.Name     `xml:"Entrezgene-Set"`
	Genes   []entrezgene `xml:"Entrezgene"`
}

type entrezgene struct {
	Locus []geneCommentary `xml:"Entrezgene_locus>Gene-commentary"`
}

type geneCommentary struct {
	Accession string           `xml:"Gene-commentary_accession"`
	Products  []geneCommentary `xml:"Gene-commentary_products>Gene-commentary"`
	Seqs      []seqLoc         `xml:"Gene-commentary_seqs>Seq-loc"`
}

type seqLoc struct {
	Interval *seqInterval `xml:"Seq-loc_int>Seq-interval"`
}

type seqInterval struct {
	From int `xml:"Seq-interval_from"`
	To   int `xml:"Seq-interval_to"`
}

// GeneLocus carries the fields extracted from one gene record: the primary
// protein product's accession and the genomic interval of the primary locus.
type GeneLocus struct {
	ProteinAccession string
	Start            int
	End              int
}

// Length of the genomic interval. The strand determines which endpoint is
// larger, hence the absolute difference.
func (l GeneLocus) Length() int {
	length := l.End - l.Start
	if length < 0 {
		length = -length
	}
	return length
}

// extractGeneLocus is the only function that knows the shape of the Entrez
// gene record; when NCBI changes the record layout, this is the place to fix.
func extractGeneLocus(data []byte) (GeneLocus, error) {
	var set entrezgeneSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return GeneLocus{}, fmt.Errorf("decoding gene record: %w", err)
	}

	if len(set.Genes) == 0 {
		return GeneLocus{}, errors.New("no gene records in response")
	}
	if len(set.Genes[0].Locus) == 0 {
		return GeneLocus{}, errors.New("gene record has no locus commentary")
	}
	locus := set.Genes[0].Locus[0]

	if len(locus.Products) == 0 {
		return GeneLocus{}, errors.New("locus commentary has no products")
	}
	if len(locus.Products[0].Products) == 0 {
		return GeneLocus{}, errors.New("locus product has no nested protein product")
	}
	protein := locus.Products[0].Products[0]
	if protein.Accession == "" {
		return GeneLocus{}, errors.New("protein product has no accession")
	}

	if len(locus.Seqs) == 0 || locus.Seqs[0].Interval == nil {
		return GeneLocus{}, errors.New("locus commentary has no genomic interval")
	}
	interval := locus.Seqs[0].Interval

	return GeneLocus{
		ProteinAccession: protein.Accession,
		Start:            interval.From,
		End:              interval.To,
	}, nil
}
