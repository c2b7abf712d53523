package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFormMetricsCountByLabel(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewFormMetrics(registry)

	m.IncLoad("create")
	m.IncLoad("edit")
	m.IncLoad("edit")
	m.IncUpload("success")
	m.IncSubmission("create", "failure")

	if got := testutil.ToFloat64(m.loads.WithLabelValues("edit")); got != 2 {
		t.Errorf("expected 2 edit loads, got %v", got)
	}
	if got := testutil.ToFloat64(m.loads.WithLabelValues("create")); got != 1 {
		t.Errorf("expected 1 create load, got %v", got)
	}
	if got := testutil.ToFloat64(m.uploads.WithLabelValues("success")); got != 1 {
		t.Errorf("expected 1 successful upload, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("create", "failure")); got != 1 {
		t.Errorf("expected 1 failed create submission, got %v", got)
	}
}

func TestFormMetricsNormalizeEmptyLabels(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewFormMetrics(registry)

	m.IncLoad("")
	if got := testutil.ToFloat64(m.loads.WithLabelValues("unknown")); got != 1 {
		t.Errorf("expected empty mode to count as unknown, got %v", got)
	}
}

func TestFormMetricsAreSafeWhenUnregistered(t *testing.T) {
	var m *FormMetrics
	m.IncLoad("create")
	m.IncUpload("success")
	m.IncSubmission("edit", "success")

	m = NewFormMetrics(nil)
	m.IncLoad("create")
	m.IncUpload("failure")
	m.IncSubmission("create", "invalid")
}
