package genescan

import (
	"fmt"
	"strings"
	"testing"
)

func geneRecordXML(from, to int) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<Entrezgene-Set>
  <Entrezgene>
    <Entrezgene_locus>
      <Gene-commentary>
        <Gene-commentary_accession>NC_000017.11</Gene-commentary_accession>
        <Gene-commentary_products>
          <Gene-commentary>
            <Gene-commentary_accession>NM_000546.6</Gene-commentary_accession>
            <Gene-commentary_products>
              <Gene-commentary>
                <Gene-commentary_accession>NP_000537.3</Gene-commentary_accession>
              </Gene-commentary>
            </Gene-commentary_products>
          </Gene-commentary>
        </Gene-commentary_products>
        <Gene-commentary_seqs>
          <Seq-loc>
            <Seq-loc_int>
              <Seq-interval>
                <Seq-interval_from>%d</Seq-interval_from>
                <Seq-interval_to>%d</Seq-interval_to>
              </Seq-interval>
            </Seq-loc_int>
          </Seq-loc>
        </Gene-commentary_seqs>
      </Gene-commentary>
    </Entrezgene_locus>
  </Entrezgene>
</Entrezgene-Set>`, from, to)
}

func TestExtractGeneLocus(t *testing.T) {
	locus, err := extractGeneLocus([]byte(geneRecordXML(7661779, 7687538)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locus.ProteinAccession != "NP_000537.3" {
		t.Fatalf("unexpected accession: %q", locus.ProteinAccession)
	}
	if locus.Start != 7661779 || locus.End != 7687538 {
		t.Fatalf("unexpected interval: %+v", locus)
	}
	if locus.Length() != 25759 {
		t.Fatalf("unexpected gene length: %d", locus.Length())
	}
}

func TestGeneLocusLengthReversedInterval(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{7661779, 7687538, 25759},
		{7687538, 7661779, 25759},
		{100, 100, 0},
		{0, 1, 1},
	}
	for _, c := range cases {
		locus := GeneLocus{Start: c.start, End: c.end}
		if got := locus.Length(); got != c.want {
			t.Fatalf("Length(%d, %d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestExtractGeneLocusMissingPieces(t *testing.T) {
	cases := []struct {
		name string
		xml  string
	}{
		{"empty set", `<Entrezgene-Set></Entrezgene-Set>`},
		{"no locus", `<Entrezgene-Set><Entrezgene></Entrezgene></Entrezgene-Set>`},
		{
			"no products",
			`<Entrezgene-Set><Entrezgene><Entrezgene_locus>
			<Gene-commentary></Gene-commentary>
			</Entrezgene_locus></Entrezgene></Entrezgene-Set>`,
		},
		{
			"no nested product",
			`<Entrezgene-Set><Entrezgene><Entrezgene_locus>
			<Gene-commentary><Gene-commentary_products>
			<Gene-commentary></Gene-commentary>
			</Gene-commentary_products></Gene-commentary>
			</Entrezgene_locus></Entrezgene></Entrezgene-Set>`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := extractGeneLocus([]byte(c.xml)); err == nil {
				t.Fatal("expected an extraction error")
			}
		})
	}
}

func TestExtractGeneLocusMissingInterval(t *testing.T) {
	record := strings.Replace(
		geneRecordXML(1, 2),
		"Gene-commentary_seqs", "Gene-commentary_other", 2,
	)
	_, err := extractGeneLocus([]byte(record))
	if err == nil {
		t.Fatal("expected an error for a record without a genomic interval")
	}
}

func TestExtractGeneLocusMalformedXML(t *testing.T) {
	if _, err := extractGeneLocus([]byte("<Entrezgene-Set>")); err == nil {
		t.Fatal("expected a decode error")
	}
}
