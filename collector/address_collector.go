package collector

const (
	addressMarker   = "<b>Our external address:</b>"
	addressTableTag = `<table class="extaddr">`
)

type addressCollector struct{}

func newAddressCollector() pageCollector {
	return &addressCollector{}
}

func (c *addressCollector) collect(ctx *collectorContext) {
	table, ok := sectionTable(ctx.html, addressMarker, addressTableTag)
	if !ok {
		return
	}

	addrs := make([]ExternalAddress, 0)
	for _, row := range tableRows(table) {
		if len(row) != 2 || row[0].classed || row[1].classed {
			continue
		}
		addrs = append(addrs, ExternalAddress{
			Protocol: row[0].text,
			Address:  row[1].text,
		})
	}
	ctx.snapshot.ExternalAddresses = addrs
}
