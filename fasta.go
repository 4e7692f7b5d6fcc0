package genescan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// fastaRecord is a single FASTA record: the definition line without the
// leading '>' and the concatenated sequence lines.
type fastaRecord struct {
	Header   string
	Sequence string
}

// Residues returns the number of sequence symbols in the record.
func (r fastaRecord) Residues() int {
	return len(r.Sequence)
}

// parseSingleFASTA reads a FASTA stream that must contain exactly one
// record. Sequence lines are concatenated with surrounding whitespace
// stripped.
func parseSingleFASTA(r io.Reader) (fastaRecord, error) {
	scanner := bufio.NewScanner(r)

	var rec fastaRecord
	var seq strings.Builder
	seen := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			seen++
			if seen > 1 {
				return fastaRecord{}, fmt.Errorf("expected a single FASTA record, found %d or more", seen)
			}
			rec.Header = strings.TrimPrefix(line, ">")
			continue
		}
		if seen == 0 {
			return fastaRecord{}, errors.New("sequence data before FASTA definition line")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return fastaRecord{}, fmt.Errorf("reading FASTA stream: %w", err)
	}
	if seen == 0 {
		return fastaRecord{}, errors.New("no FASTA record found")
	}
	rec.Sequence = seq.String()
	if rec.Sequence == "" {
		return fastaRecord{}, errors.New("FASTA record has an empty sequence")
	}
	return rec, nil
}
