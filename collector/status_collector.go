package collector

import (
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

type statusCollector struct {
	v4 *regexp.Regexp
	v6 *regexp.Regexp
}

func newStatusCollector() pageCollector {
	c := &statusCollector{}
	c.init()
	return c
}

func (c *statusCollector) init() {
	c.v4 = regexp.MustCompile(`<b>Network status:</b> ([^<]+)`)
	c.v6 = regexp.MustCompile(`<b>Network status v6:</b> ([^<]+)`)
}

func (c *statusCollector) collect(ctx *collectorContext) {
	ctx.snapshot.IPv4Status = c.status(c.v4, ctx.html)
	ctx.snapshot.IPv6Status = c.status(c.v6, ctx.html)
}

func (c *statusCollector) status(re *regexp.Regexp, html string) *string {
	v, ok := firstSubmatch(re, html)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	return &v
}

type tunnelRateCollector struct {
	re *regexp.Regexp
}

func newTunnelRateCollector() pageCollector {
	return &tunnelRateCollector{
		re: regexp.MustCompile(`<b>Tunnel creation success rate:</b> (\d+)%`),
	}
}

func (c *tunnelRateCollector) collect(ctx *collectorContext) {
	v, ok := firstSubmatch(c.re, ctx.html)
	if !ok {
		return
	}

	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.WithFields(log.Fields{
			"value": v,
			"error": err,
		}).Debug("error parsing tunnel creation success rate")
		return
	}
	ctx.snapshot.TunnelCreationRate = &rate
}
