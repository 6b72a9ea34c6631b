package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVLoader converts CSV files to headed text: each batch of rows
// becomes a level-1 section so large files stay navigable.
type CSVLoader struct{}

const csvBatchSize = 20

func (l *CSVLoader) Load(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	var b strings.Builder
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := i + csvBatchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		header(&b, 1, fmt.Sprintf("Rows %d-%d", i+2, end+1)) // 1-indexed, skip header row
		b.WriteString("Headers: " + strings.Join(headers, ", ") + "\n")
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				if j < len(headers) {
					b.WriteString(headers[j] + ": " + cell)
				} else {
					b.WriteString(cell)
				}
				if j < len(row)-1 {
					b.WriteString(", ")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
