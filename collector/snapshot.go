package collector

// Snapshot holds everything extracted from one web console page. A nil pointer
// means the field was not found on the page or could not be parsed.
type Snapshot struct {
	IPv4Status         *string
	IPv6Status         *string
	TunnelCreationRate *float64

	Received Traffic
	Sent     Traffic
	Transit  Traffic

	RouterCapabilities *string

	// ExternalAddresses is nil when the section is missing and empty when the
	// table has no rows.
	ExternalAddresses []ExternalAddress

	Network NetworkCounts
	Tunnels TunnelCounts

	// Services maps the normalized service name to its enabled state.
	Services map[string]bool
}

// Traffic is the byte total and current rate for one direction.
type Traffic struct {
	Bytes *uint64
	Rate  *float64
}

// ExternalAddress is one row of the external address table.
type ExternalAddress struct {
	Protocol string
	Address  string
}

// NetworkCounts are the netdb sizes reported on a single line.
type NetworkCounts struct {
	Routers    *uint64
	Floodfills *uint64
	LeaseSets  *uint64
}

// TunnelCounts are the tunnel counts reported on a single line.
type TunnelCounts struct {
	Client  *uint64
	Transit *uint64
}

func (t Traffic) hasRate() bool {
	return t.Rate != nil
}
