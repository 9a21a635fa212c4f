package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

const (
	qrSize = 45.0 // QR code size in mm
	// maxQRPayload keeps the summary within what a medium-recovery code holds.
	maxQRPayload = 2000
)

// TourSummary is the data encoded into the report QR code.
type TourSummary struct {
	Points     int      `json:"points"`
	BestScore  *float32 `json:"best_score,omitempty"`
	SavedScore *float32 `json:"saved_score,omitempty"`
	Checkpoint string   `json:"checkpoint,omitempty"`
	Steps      uint64   `json:"steps"`
	Accepted   uint64   `json:"accepted"`
	// Order lists point indices of the best tour. Dropped when too long.
	Order []int `json:"order,omitempty"`
}

// NewTourSummary builds the summary of snap.
func NewTourSummary(snap model.Snapshot) TourSummary {
	s := TourSummary{
		Points:     len(snap.Points),
		BestScore:  scorePtr(snap.Score),
		SavedScore: scorePtr(snap.SavedScore),
		Checkpoint: snap.Checkpoint.ID,
		Steps:      snap.Steps,
		Accepted:   snap.Accepted,
	}
	for _, p := range snap.Best {
		s.Order = append(s.Order, model.IndexOf(snap.Points, p))
	}
	return s
}

func scorePtr(s float32) *float32 {
	if math.IsInf(float64(s), 1) {
		return nil
	}
	return &s
}

// encode marshals the summary, dropping the order when the payload would
// not fit a QR code.
func (s TourSummary) encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tour summary: %w", err)
	}
	if len(data) > maxQRPayload && len(s.Order) > 0 {
		s.Order = nil
		return s.encode()
	}
	return data, nil
}

// SummaryQR returns a PNG QR code holding the JSON summary of snap.
func SummaryQR(snap model.Snapshot) ([]byte, error) {
	data, err := NewTourSummary(snap).encode()
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// ExportQR writes the summary QR code of snap to a PNG file.
func ExportQR(path string, snap model.Snapshot) error {
	data, err := NewTourSummary(snap).encode()
	if err != nil {
		return err
	}
	if err := qrcode.WriteFile(string(data), qrcode.Medium, 512, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}

// placePNG registers png under name and draws it as a square of side size.
func placePNG(pdf *fpdf.Fpdf, name string, png []byte, x, y, size float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, size, size, false, opts, 0, "")
}
