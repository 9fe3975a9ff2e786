package collector

import "regexp"

// networkCountCollector reads the netdb line. The three numbers are only
// looked at when the whole line matches.
type networkCountCollector struct {
	re *regexp.Regexp
}

func newNetworkCountCollector() pageCollector {
	return &networkCountCollector{
		re: regexp.MustCompile(`<b>Routers:</b> (\d+) <b>Floodfills:</b> (\d+) <b>LeaseSets:</b> (\d+)`),
	}
}

func (c *networkCountCollector) collect(ctx *collectorContext) {
	m := c.re.FindStringSubmatch(ctx.html)
	if m == nil {
		return
	}

	ctx.snapshot.Network = NetworkCounts{
		Routers:    parseCount(m[1], "routers"),
		Floodfills: parseCount(m[2], "floodfills"),
		LeaseSets:  parseCount(m[3], "leasesets"),
	}
}

type tunnelCountCollector struct {
	re *regexp.Regexp
}

func newTunnelCountCollector() pageCollector {
	return &tunnelCountCollector{
		re: regexp.MustCompile(`<b>Client Tunnels:</b> (\d+) <b>Transit Tunnels:</b> (\d+)`),
	}
}

func (c *tunnelCountCollector) collect(ctx *collectorContext) {
	m := c.re.FindStringSubmatch(ctx.html)
	if m == nil {
		return
	}

	ctx.snapshot.Tunnels = TunnelCounts{
		Client:  parseCount(m[1], "client_tunnels"),
		Transit: parseCount(m[2], "transit_tunnels"),
	}
}
