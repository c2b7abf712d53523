package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FormMetrics counts the form pipeline's network operations by outcome.
type FormMetrics struct {
	loads       *prometheus.CounterVec
	uploads     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewFormMetrics registers the form metrics on the provided registerer.
func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	if reg == nil {
		return &FormMetrics{}
	}
	loads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "form_loads_total",
		Help: "Form renders, labelled by mode (create/edit).",
	}, []string{"mode"})
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Media uploads forwarded to the image host.",
	}, []string{"outcome"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Form submissions dispatched to the catalog API.",
	}, []string{"mode", "outcome"})
	reg.MustRegister(loads, uploads, submissions)
	return &FormMetrics{
		loads:       loads,
		uploads:     uploads,
		submissions: submissions,
	}
}

// IncLoad records a form render in the given mode.
func (m *FormMetrics) IncLoad(mode string) {
	if m == nil || m.loads == nil {
		return
	}
	m.loads.WithLabelValues(normalizeLabel(mode)).Inc()
}

// IncUpload records an upload attempt with its outcome.
func (m *FormMetrics) IncUpload(outcome string) {
	if m == nil || m.uploads == nil {
		return
	}
	m.uploads.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncSubmission records a submission attempt with its mode and outcome.
func (m *FormMetrics) IncSubmission(mode, outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(mode), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
