package kit

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// LogMetrics writes every gathered sample as one log entry.
func LogMetrics(log *zap.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		log.Warn("gather metrics failed", zap.Error(err))
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := make([]zap.Field, 0, len(m.GetLabel())+3)
			fields = append(fields, zap.String("metric", mf.GetName()))
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}

			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			}
			log.Info("metric", fields...)
		}
	}
}
