package collector

// collectorContext is shared by the collectors of one extraction. Each
// collector writes only the snapshot fields it owns.
type collectorContext struct {
	html     string
	snapshot *Snapshot
}
