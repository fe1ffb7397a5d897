package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
)

func testSeries() *physics.Series {
	return &physics.Series{
		Times: []float64{0, 0.5, 1.0},
		X1:    []float64{0.444, 0.40, 0.35},
		V1:    []float64{0, -0.2, -0.1},
		X2:    []float64{0.966, 0.95, 0.92},
		V2:    []float64{0, -0.1, -0.05},
	}
}

func testMeta() RunMetadata {
	return RunMetadata{
		Params:     physics.Params{M1: 1, M2: 2, K1: 100, K2: 50, L1: 0.1, L2: 0.15, G: 9.8},
		TStart:     0,
		TEnd:       1.0,
		Samples:    3,
		Integrator: "rk4",
		X1Eq:       0.394,
		X2Eq:       0.936,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testSeries())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Params.K1 != 100 {
		t.Errorf("expected k1 100, got %g", meta.Params.K1)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", series.Len())
	}
	if math.Abs(series.X1[0]-0.444) > 1e-6 {
		t.Errorf("expected x1[0] = 0.444, got %f", series.X1[0])
	}
	if math.Abs(series.V2[2]-(-0.05)) > 1e-6 {
		t.Errorf("expected v2[2] = -0.05, got %f", series.V2[2])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), testSeries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("run_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, testMeta(), testSeries()); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}

	if data.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", data.Samples)
	}
	if len(data.X1) != 3 || len(data.V2) != 3 {
		t.Errorf("component sequences have wrong length: %d, %d", len(data.X1), len(data.V2))
	}
	if data.Meta.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", data.Meta.Integrator)
	}
}
