package collector

import (
	log "github.com/sirupsen/logrus"
)

const (
	namespace = "i2p"

	// exporterName prefixes the metrics describing the exporter itself.
	exporterName = "i2pd_webconsole_exporter"
)

// pageCollector is one independent extraction rule. A collector only ever
// fills its own fields of the snapshot and never fails.
type pageCollector interface {
	collect(ctx *collectorContext)
}

// collectors is the fixed extractor set, built once per process.
var collectors = []pageCollector{
	newStatusCollector(),
	newTunnelRateCollector(),
	newTrafficCollector(),
	newCapabilitiesCollector(),
	newAddressCollector(),
	newNetworkCountCollector(),
	newTunnelCountCollector(),
	newServiceCollector(),
}

// Extract runs every extraction rule against the page and returns the
// resulting snapshot. It is safe for concurrent use.
func Extract(html string) *Snapshot {
	s := &Snapshot{}
	ctx := &collectorContext{html: html, snapshot: s}

	for _, c := range collectors {
		c.collect(ctx)
	}

	log.WithFields(log.Fields{
		"bytes":     len(html),
		"addresses": len(s.ExternalAddresses),
		"services":  len(s.Services),
	}).Debug("extracted web console snapshot")

	return s
}
