package collector

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var sizeRegex *regexp.Regexp
var rateRegex *regexp.Regexp
var unitMultipliers map[string]float64

func init() {
	sizeRegex = regexp.MustCompile(`^(\d+\.\d+|\d+)\s*([KMGT]iB|B)$`)
	rateRegex = regexp.MustCompile(`^(\d+\.\d+|\d+)\s*([KMGT]iB|B)/s$`)
	unitMultipliers = map[string]float64{
		"B":   1,
		"KiB": 1 << 10,
		"MiB": 1 << 20,
		"GiB": 1 << 30,
		"TiB": 1 << 40,
	}
}

// parseSize converts "1.23 GiB" into bytes, truncating any fraction. Totals
// that do not fit in a uint64 are rejected.
func parseSize(s string) (uint64, bool) {
	v, ok := parseWithUnit(sizeRegex, s)
	if !ok {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= 1<<64 {
		log.WithField("value", s).Debug("data size out of range")
		return 0, false
	}
	return uint64(v), true
}

// parseRate converts "100.5 KiB/s" into bytes per second.
func parseRate(s string) (float64, bool) {
	return parseWithUnit(rateRegex, s)
}

func parseWithUnit(re *regexp.Regexp, s string) (float64, bool) {
	m := re.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	mult, ok := unitMultipliers[m[2]]
	if !ok {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		log.WithFields(log.Fields{
			"value": s,
			"error": err,
		}).Debug("error parsing data value")
		return 0, false
	}

	return v * mult, true
}

// parseCount parses one captured integer, nil when it does not fit.
func parseCount(s, name string) *uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.WithFields(log.Fields{
			"property": name,
			"value":    s,
			"error":    err,
		}).Debug("error parsing count value")
		return nil
	}
	return &v
}

// firstSubmatch returns the first capture group of re in html.
func firstSubmatch(re *regexp.Regexp, html string) (string, bool) {
	m := re.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func serviceKey(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "_", -1)
}
