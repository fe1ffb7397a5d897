package storage

import (
	"encoding/json"
	"io"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
)

type ExportData struct {
	Meta    RunMetadata `json:"meta"`
	Samples int         `json:"samples"`
	Times   []float64   `json:"times"`
	X1      []float64   `json:"x1"`
	V1      []float64   `json:"v1"`
	X2      []float64   `json:"x2"`
	V2      []float64   `json:"v2"`
}

// ExportJSON writes a complete run (metadata plus the four component
// sequences) as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, series *physics.Series) error {
	data := ExportData{
		Meta:    meta,
		Samples: series.Len(),
		Times:   series.Times,
		X1:      series.X1,
		V1:      series.V1,
		X2:      series.X2,
		V2:      series.V2,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
