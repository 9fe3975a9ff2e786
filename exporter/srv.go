package exporter

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"

	"i2pd-webconsole-exporter/config"
)

const resolvConf = "/etc/resolv.conf"

// resolveSrv looks up the SRV record and returns host:port of the target with
// the lowest priority, preferring the highest weight among equals.
func resolveSrv(ctx context.Context, srv config.SrvRecord) (string, error) {
	dnsServer, err := srvDnsServer(srv.Dns)
	if err != nil {
		return "", err
	}

	dnsMsg := new(dns.Msg)
	dnsCli := new(dns.Client)

	dnsMsg.RecursionDesired = true
	dnsMsg.SetQuestion(dns.Fqdn(srv.Record), dns.TypeSRV)
	r, _, err := dnsCli.ExchangeContext(ctx, dnsMsg, dnsServer)
	if err != nil {
		return "", fmt.Errorf("SRV lookup of %s via %s failed: %w", srv.Record, dnsServer, err)
	}
	if r.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("SRV lookup of %s via %s failed: %s", srv.Record, dnsServer, dns.RcodeToString[r.Rcode])
	}

	var best *dns.SRV
	for _, k := range r.Answer {
		s, ok := k.(*dns.SRV)
		if !ok {
			continue
		}
		if best == nil || s.Priority < best.Priority || (s.Priority == best.Priority && s.Weight > best.Weight) {
			best = s
		}
	}
	if best == nil {
		return "", fmt.Errorf("no SRV records found for %s", srv.Record)
	}

	target := net.JoinHostPort(strings.TrimRight(best.Target, "."), strconv.Itoa(int(best.Port)))
	log.WithFields(log.Fields{
		"SRV":    srv.Record,
		"target": target,
	}).Debug("resolved web console SRV record")

	return target, nil
}

func srvDnsServer(d config.DnsServer) (string, error) {
	if (config.DnsServer{}) != d {
		return net.JoinHostPort(d.Address, strconv.Itoa(d.Port)), nil
	}

	conf, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", resolvConf, err)
	}
	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("no nameservers in %s", resolvConf)
	}

	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}
