package genescan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// WorkbookSource reads the ordered identifier column from the first sheet
// of an xlsx workbook.
type WorkbookSource struct {
	path     string
	idColumn string
}

func NewWorkbookSource(path, idColumn string) *WorkbookSource {
	return &WorkbookSource{
		path:     path,
		idColumn: idColumn,
	}
}

func (s *WorkbookSource) GeneIDs() ([]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no sheets found in workbook")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook is empty")
	}

	col := -1
	for i, cell := range rows[0] {
		if strings.TrimSpace(cell) == s.idColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("column %q not found in %s", s.idColumn, s.path)
	}

	ids := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var id string
		if col < len(row) {
			id = strings.TrimSpace(row[col])
		}
		ids = append(ids, id)
	}
	zap.S().Infow(
		"read gene identifiers",
		"path", s.path,
		"count", len(ids),
	)
	return ids, nil
}
