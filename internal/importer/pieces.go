// Package importer reads custom piece atlases from CSV files. It supports
// automatic delimiter detection and collects per-row errors and warnings
// instead of failing on the first bad line.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/TileFit/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Pieces   []model.Piece
	Errors   []string
	Warnings []string
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// ImportCSV reads a piece atlas from a CSV file. Each row is a piece name
// followed by a flat list of row/column coordinate pairs, e.g.
//
//	I5,0,0,0,1,0,2,0,3,0,4
//
// A header row whose first column reads "name" or "piece" is skipped.
// Rows that fail to parse are reported in Errors; the remaining rows still
// import.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	seen := make(map[string]bool)
	for i, row := range records {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		piece, err := parsePieceRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if seen[piece.Name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: duplicate piece name %q skipped", i+1, piece.Name))
			continue
		}
		seen[piece.Name] = true
		result.Pieces = append(result.Pieces, piece)
	}

	if len(result.Pieces) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "File contains no piece rows")
	}
	return result
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "name" || first == "piece"
}

func parsePieceRow(row []string) (model.Piece, error) {
	if len(row) < 3 {
		return model.Piece{}, fmt.Errorf("expected a name and at least one coordinate pair, got %d columns", len(row))
	}
	name := strings.TrimSpace(row[0])
	coords := row[1:]
	if len(coords)%2 != 0 {
		return model.Piece{}, fmt.Errorf("piece %q has an odd number of coordinates", name)
	}

	shape := make(model.Shape, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		r, err := strconv.Atoi(strings.TrimSpace(coords[i]))
		if err != nil {
			return model.Piece{}, fmt.Errorf("invalid row coordinate %q", coords[i])
		}
		c, err := strconv.Atoi(strings.TrimSpace(coords[i+1]))
		if err != nil {
			return model.Piece{}, fmt.Errorf("invalid column coordinate %q", coords[i+1])
		}
		shape = append(shape, model.Cell{Row: r, Col: c})
	}

	return model.NewPiece(name, shape)
}
