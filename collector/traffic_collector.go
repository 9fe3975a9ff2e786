package collector

import (
	"regexp"
	"strings"
)

type trafficCollector struct {
	received *regexp.Regexp
	sent     *regexp.Regexp
	transit  *regexp.Regexp
}

func newTrafficCollector() pageCollector {
	c := &trafficCollector{}
	c.init()
	return c
}

func (c *trafficCollector) init() {
	c.received = regexp.MustCompile(`<b>Received:</b> ([^<]+)<br>`)
	c.sent = regexp.MustCompile(`<b>Sent:</b> ([^<]+)<br>`)
	c.transit = regexp.MustCompile(`<b>Transit:</b> ([^<]+)<br>`)
}

func (c *trafficCollector) collect(ctx *collectorContext) {
	ctx.snapshot.Received = c.traffic(c.received, ctx.html)
	ctx.snapshot.Sent = c.traffic(c.sent, ctx.html)
	ctx.snapshot.Transit = c.traffic(c.transit, ctx.html)
}

func (c *trafficCollector) traffic(re *regexp.Regexp, html string) Traffic {
	v, ok := firstSubmatch(re, html)
	if !ok {
		return Traffic{}
	}
	return parseTraffic(v)
}

// parseTraffic splits "<size>" or "<size> (<rate>)". The total and the rate
// are parsed independently of each other.
func parseTraffic(s string) Traffic {
	var t Traffic

	total, rate, hasRate := strings.Cut(s, " (")
	if b, ok := parseSize(total); ok {
		t.Bytes = &b
	}
	if hasRate {
		if r, ok := parseRate(strings.TrimRight(rate, ")")); ok {
			t.Rate = &r
		}
	}

	return t
}
