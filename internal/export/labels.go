package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/TileFit/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	Piece     string       `json:"piece"`
	CellCount int          `json:"cell_count"`
	Anchor    model.Cell   `json:"anchor"`
	Cells     []model.Cell `json:"cells"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// WriteLabels generates a PDF of QR-coded labels, one per placed piece.
// Each label shows the piece name, its cell count and anchor position, and
// a QR code encoding the full placement as JSON, so a physical piece can
// be matched to its spot on the board.
func WriteLabels(path string, sol *model.Solution) error {
	labels := CollectLabelInfos(sol)
	if len(labels) == 0 {
		return fmt.Errorf("no placements to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Piece, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", info.Piece, info.Anchor.Row, info.Anchor.Col)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, info.Piece, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d cells", info.CellCount), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	anchor := fmt.Sprintf("Anchor @ R%d C%d", info.Anchor.Row+1, info.Anchor.Col+1)
	pdf.CellFormat(textW, 3, anchor, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a solution for use in
// testing or alternative export formats. The anchor is the lexicographically
// smallest cell of each placement.
func CollectLabelInfos(sol *model.Solution) []LabelInfo {
	if sol == nil {
		return nil
	}
	var labels []LabelInfo
	for _, p := range sol.Placements {
		cells := append([]model.Cell(nil), p.Cells...)
		model.SortCells(cells)
		labels = append(labels, LabelInfo{
			Piece:     p.Piece,
			CellCount: len(cells),
			Anchor:    cells[0],
			Cells:     cells,
		})
	}
	return labels
}
