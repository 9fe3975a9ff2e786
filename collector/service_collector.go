package collector

const (
	servicesTableTag = `<table class="services">`

	// enabledClass marks a running service, every other class is disabled.
	enabledClass = "enabled"
)

type serviceCollector struct{}

func newServiceCollector() pageCollector {
	return &serviceCollector{}
}

func (c *serviceCollector) collect(ctx *collectorContext) {
	table, ok := sectionTable(ctx.html, "", servicesTableTag)
	if !ok {
		return
	}

	services := make(map[string]bool)
	for _, row := range tableRows(table) {
		if len(row) != 2 || row[0].classed || !row[1].classed {
			continue
		}
		services[serviceKey(row[0].text)] = row[1].class == enabledClass
	}
	ctx.snapshot.Services = services
}
