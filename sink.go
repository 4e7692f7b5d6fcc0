package genescan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var outputColumns = []string{"Gene ID", "Accession", "Gene Length", "Protein Length"}

// WorkbookSink writes the output table next to the input workbook, with the
// configured suffix appended to the input file's base name.
type WorkbookSink struct {
	inputPath string
	suffix    string
}

func NewWorkbookSink(inputPath, suffix string) *WorkbookSink {
	return &WorkbookSink{
		inputPath: inputPath,
		suffix:    suffix,
	}
}

// OutputPath derives the output file name: the input extension is replaced
// by .xlsx and the suffix goes before it.
func (s *WorkbookSink) OutputPath() string {
	ext := filepath.Ext(s.inputPath)
	return strings.TrimSuffix(s.inputPath, ext) + s.suffix + ".xlsx"
}

func (s *WorkbookSink) WriteRows(rows []Row) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(outputColumns))
	for i, col := range outputColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cells := []any{row.GeneID, nil, nil, nil}
		if row.Values != nil {
			cells[1] = row.Values.Accession
			cells[2] = row.Values.GeneLength
			cells[3] = row.Values.ProteinLength
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("computing cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	outputPath := s.OutputPath()
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("saving workbook %s: %w", outputPath, err)
	}
	zap.S().Debugw(
		"wrote output workbook",
		"path", outputPath,
		"rows", len(rows),
	)
	return outputPath, nil
}
