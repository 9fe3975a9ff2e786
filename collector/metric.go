package collector

import (
	"bytes"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
)

// metricDesc describes one metric family of the rendered document.
type metricDesc struct {
	name      string
	help      string
	valueType prometheus.ValueType
	desc      *prometheus.Desc
}

func description(prefix, name, helpText string, valueType prometheus.ValueType, labelNames ...string) *metricDesc {
	return descriptionForNamespace(namespace, prefix, name, helpText, valueType, labelNames...)
}

func descriptionForNamespace(ns, prefix, name, helpText string, valueType prometheus.ValueType, labelNames ...string) *metricDesc {
	fqName := prometheus.BuildFQName(ns, prefix, name)
	return &metricDesc{
		name:      fqName,
		help:      helpText,
		valueType: valueType,
		desc:      prometheus.NewDesc(fqName, helpText, labelNames, nil),
	}
}

func (d *metricDesc) family() *family {
	return &family{desc: d}
}

// family collects the samples of one metric for a single render.
type family struct {
	desc    *metricDesc
	metrics []*dto.Metric
}

func (f *family) add(v float64, labelValues ...string) {
	for i, lv := range labelValues {
		labelValues[i] = strings.ToValidUTF8(lv, "\uFFFD")
	}

	m, err := prometheus.NewConstMetric(f.desc.desc, f.desc.valueType, v, labelValues...)
	if err != nil {
		log.WithFields(log.Fields{
			"metric": f.desc.name,
			"error":  err,
		}).Error("error creating metric")
		return
	}

	pb := &dto.Metric{}
	if err := m.Write(pb); err != nil {
		log.WithFields(log.Fields{
			"metric": f.desc.name,
			"error":  err,
		}).Error("error writing metric")
		return
	}
	f.metrics = append(f.metrics, pb)
}

func (f *family) metricType() dto.MetricType {
	switch f.desc.valueType {
	case prometheus.CounterValue:
		return dto.MetricType_COUNTER
	case prometheus.GaugeValue:
		return dto.MetricType_GAUGE
	default:
		return dto.MetricType_UNTYPED
	}
}

// writeTo encodes the family in the text exposition format. Nothing is
// written for a family without samples or when encoding fails.
func (f *family) writeTo(w io.Writer) error {
	if len(f.metrics) == 0 {
		return nil
	}

	mf := &dto.MetricFamily{
		Name:   proto.String(f.desc.name),
		Help:   proto.String(f.desc.help),
		Type:   f.metricType().Enum(),
		Metric: f.metrics,
	}

	var buf bytes.Buffer
	if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
