package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/tiny"
	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/reconcile"
)

// session is one in-memory document plus the optional metrics registry.
type session struct {
	env      *tiny.Env
	registry *prometheus.Registry
}

func (a *app) newSession() *session {
	ropts := []reconcile.Option{reconcile.WithRootIndex(a.cfg.RootIndex)}

	s := &session{}
	if a.cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		ropts = append(ropts, reconcile.WithMetrics(reconcile.NewMetrics(reconcile.MetricsConfig{
			Namespace: a.cfg.Metrics.Namespace,
			Registry:  s.registry,
		})))
	}
	if a.cfg.Tracing.Enabled {
		ropts = append(ropts, reconcile.WithTracer(otel.Tracer(a.cfg.Tracing.TracerName)))
	}

	s.env = tiny.NewEnv(
		tiny.WithIDAttribute(a.cfg.IDAttribute),
		tiny.WithLogger(a.logger),
		tiny.WithRendererOptions(ropts...),
	)
	return s
}

// close releases the document and prints collected metrics to w.
func (s *session) close(w io.Writer) error {
	s.env.Close()
	if s.registry == nil {
		return nil
	}
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	writeMetrics(w, families)
	return nil
}

// writeMetrics prints one line per counter series and histogram count.
func writeMetrics(w io.Writer, families []*dto.MetricFamily) {
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				lines = append(lines, fmt.Sprintf("%s_count %d", name, m.GetHistogram().GetSampleCount()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// safely runs fn and turns a contract-violation panic into an error.
func safely(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(*errors.TinyError)
			if !ok {
				panic(r)
			}
			err = te
		}
	}()
	fn()
	return nil
}

// printOps writes one line per operation, or a note when there are none.
func printOps(w io.Writer, ops []tiny.Op) {
	if len(ops) == 0 {
		info(w, "no changes")
		return
	}
	for _, op := range ops {
		fmt.Fprintln(w, op.String())
	}
}
