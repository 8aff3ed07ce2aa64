// Package metrics counts menu actions and validation rejections on a private
// Prometheus registry.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/clubledger/internal/validation"
)

const namespace = "clubledger"

// Action outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// reasons maps validation sentinels to rejection label values.
var reasons = []struct {
	err   error
	label string
}{
	{validation.ErrInvalidID, "invalid_id"},
	{validation.ErrDuplicateID, "duplicate_id"},
	{validation.ErrInvalidName, "invalid_name"},
	{validation.ErrInvalidDocument, "invalid_document"},
	{validation.ErrInvalidDate, "invalid_date"},
	{validation.ErrUnderage, "underage"},
	{validation.ErrInvalidPhone, "invalid_phone"},
	{validation.ErrUnknownMember, "unknown_member"},
	{validation.ErrInvalidAmount, "invalid_amount"},
	{validation.ErrInvalidOption, "invalid_option"},
}

// Recorder holds the ledger's collectors.
type Recorder struct {
	registry   *prometheus.Registry
	actions    *prometheus.CounterVec
	rejections *prometheus.CounterVec
	records    *prometheus.GaugeVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Menu actions run, by action and outcome.",
		}, []string{"action", "outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Field values rejected by validation, by reason.",
		}, []string{"reason"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records currently held, by table.",
		}, []string{"table"}),
	}
	r.registry.MustRegister(r.actions, r.rejections, r.records)
	return r
}

// ObserveAction counts one run of action.
func (r *Recorder) ObserveAction(action string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.actions.WithLabelValues(action, outcome).Inc()
}

// ObserveRejection counts a validation rejection.
func (r *Recorder) ObserveRejection(err error) {
	r.rejections.WithLabelValues(Reason(err)).Inc()
}

// SetRecords records the current size of a table.
func (r *Recorder) SetRecords(table string, n int) {
	r.records.WithLabelValues(table).Set(float64(n))
}

// Reason returns the rejection label for err, or "other".
func Reason(err error) string {
	for _, rs := range reasons {
		if errors.Is(err, rs.err) {
			return rs.label
		}
	}
	return "other"
}

// Summary returns every sample as "name{labels}" -> value, for logging.
func (r *Recorder) Summary() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

// WriteTextfile writes the metrics in the Prometheus text format, for the
// node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
