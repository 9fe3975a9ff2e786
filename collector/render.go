package collector

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/version"
	log "github.com/sirupsen/logrus"
)

// ContentType is the media type of the rendered document.
const ContentType = "text/plain; version=0.0.4"

// statusOK is the only network status reported as up.
const statusOK = "OK"

var (
	statusV4Desc = description("network", "status_v4", "IPv4 network status as string", prometheus.GaugeValue, "status")
	statusV6Desc = description("network", "status_v6", "IPv6 network status as string", prometheus.GaugeValue, "status")

	tunnelRateDesc = description("tunnel", "creation_success_rate", "Percentage of successful tunnel creations", prometheus.GaugeValue)

	receivedDesc = description("data", "received_bytes", "Total data received in bytes", prometheus.CounterValue)
	sentDesc     = description("data", "sent_bytes", "Total data sent in bytes", prometheus.CounterValue)
	transitDesc  = description("data", "transit_bytes", "Total transit data in bytes", prometheus.CounterValue)
	rateDesc     = description("data", "rate_bytes_per_second", "Data transfer rate in bytes/second", prometheus.GaugeValue, "direction")

	capabilitiesDesc = description("router", "capabilities", "Router capabilities", prometheus.GaugeValue, "capabilities")
	addressDesc      = description("", "external_address", "External addresses the router is reachable at", prometheus.GaugeValue, "protocol", "address")

	routersDesc    = description("network", "routers", "Count of routers in the network", prometheus.GaugeValue)
	floodfillsDesc = description("network", "floodfills", "Count of floodfill routers in the network", prometheus.GaugeValue)
	leaseSetsDesc  = description("network", "leasesets", "Count of leasesets in the network", prometheus.GaugeValue)

	clientTunnelsDesc  = description("", "client_tunnels", "Count of client tunnels", prometheus.GaugeValue)
	transitTunnelsDesc = description("", "transit_tunnels", "Count of transit tunnels", prometheus.GaugeValue)

	serviceDesc = description("service", "status", "Status of i2pd services (1=enabled, 0=disabled)", prometheus.GaugeValue, "service")

	versionDesc = descriptionForNamespace(exporterName, "", "version_info", "I2P webconsole exporter version info", prometheus.GaugeValue, "version")
)

// Render writes the snapshot as a metrics exposition document. Absent fields
// produce no lines; the version block is always present.
func Render(s *Snapshot) string {
	var b strings.Builder
	b.Grow(2048)

	for _, f := range families(s) {
		if err := f.writeTo(&b); err != nil {
			log.WithFields(log.Fields{
				"metric": f.desc.name,
				"error":  err,
			}).Error("error encoding metric family")
		}
	}

	return b.String()
}

func families(s *Snapshot) []*family {
	fs := []*family{
		statusFamily(statusV4Desc, s.IPv4Status),
		statusFamily(statusV6Desc, s.IPv6Status),
		floatFamily(tunnelRateDesc, s.TunnelCreationRate),
		countFamily(receivedDesc, s.Received.Bytes),
		countFamily(sentDesc, s.Sent.Bytes),
		countFamily(transitDesc, s.Transit.Bytes),
		rateFamily(s),
	}

	caps := capabilitiesDesc.family()
	if s.RouterCapabilities != nil {
		caps.add(1, *s.RouterCapabilities)
	}

	addrs := addressDesc.family()
	for _, a := range s.ExternalAddresses {
		addrs.add(1, a.Protocol, a.Address)
	}

	fs = append(fs,
		caps,
		addrs,
		countFamily(routersDesc, s.Network.Routers),
		countFamily(floodfillsDesc, s.Network.Floodfills),
		countFamily(leaseSetsDesc, s.Network.LeaseSets),
		countFamily(clientTunnelsDesc, s.Tunnels.Client),
		countFamily(transitTunnelsDesc, s.Tunnels.Transit),
		serviceFamily(s.Services),
		versionFamily(),
	)

	return fs
}

func statusFamily(d *metricDesc, status *string) *family {
	f := d.family()
	if status == nil {
		return f
	}

	var v float64
	if *status == statusOK {
		v = 1
	}
	f.add(v, *status)
	return f
}

func floatFamily(d *metricDesc, v *float64) *family {
	f := d.family()
	if v != nil {
		f.add(*v)
	}
	return f
}

func countFamily(d *metricDesc, v *uint64) *family {
	f := d.family()
	if v != nil {
		f.add(float64(*v))
	}
	return f
}

func rateFamily(s *Snapshot) *family {
	f := rateDesc.family()
	for _, d := range []struct {
		direction string
		traffic   Traffic
	}{
		{"received", s.Received},
		{"sent", s.Sent},
		{"transit", s.Transit},
	} {
		if d.traffic.hasRate() {
			f.add(*d.traffic.Rate, d.direction)
		}
	}
	return f
}

func serviceFamily(services map[string]bool) *family {
	f := serviceDesc.family()

	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var v float64
		if services[name] {
			v = 1
		}
		f.add(v, name)
	}
	return f
}

func versionFamily() *family {
	f := versionDesc.family()
	f.add(1, Version())
	return f
}

// Version is the build version stamped on the version info block.
func Version() string {
	if version.Version == "" {
		return "unknown"
	}
	return version.Version
}
