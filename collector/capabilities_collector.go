package collector

import "regexp"

type capabilitiesCollector struct {
	re *regexp.Regexp
}

func newCapabilitiesCollector() pageCollector {
	return &capabilitiesCollector{
		re: regexp.MustCompile(`<b>Router Caps:</b> ([A-Za-z0-9~]+)<br>`),
	}
}

func (c *capabilitiesCollector) collect(ctx *collectorContext) {
	if v, ok := firstSubmatch(c.re, ctx.html); ok {
		ctx.snapshot.RouterCapabilities = &v
	}
}
