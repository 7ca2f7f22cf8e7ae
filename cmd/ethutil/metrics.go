package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

func (o *Operator) handleMetrics(ctx context.Context) {
	families, err := o.registry.Gather()
	if err != nil {
		o.fail(ctx, "gather metrics", err)
		return
	}
	if len(families) == 0 {
		fmt.Fprintln(o.out, "No curve operations recorded yet.")
		return
	}

	rows := make([][]any, 0)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			rows = append(rows, []any{mf.GetName(), formatLabels(m.GetLabel()), metricValue(mf.GetType(), m)})
		}
	}
	o.renderRecords([]string{"Metric", "Labels", "Value"}, rows)
}

func formatLabels(pairs []*dto.LabelPair) string {
	labels := make([]string, 0, len(pairs))
	for _, p := range pairs {
		labels = append(labels, p.GetName()+"="+p.GetValue())
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}

// metricValue is the counter value, or the sample count and mean for a histogram.
func metricValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		if h.GetSampleCount() == 0 {
			return "0 samples"
		}
		mean := h.GetSampleSum() / float64(h.GetSampleCount())
		return fmt.Sprintf("%d samples, mean %.6fs", h.GetSampleCount(), mean)
	default:
		return m.String()
	}
}
