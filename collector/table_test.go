package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionTable(t *testing.T) {
	page := `<table class="services"><tr><td>a</td></tr></table>` +
		`<b>Our external address:</b><table class="extaddr"><tr><td>x</td></tr></table>`

	table, ok := sectionTable(page, addressMarker, addressTableTag)
	assert.True(t, ok)
	assert.Equal(t, `<table class="extaddr"><tr><td>x</td></tr></table>`, table)

	table, ok = sectionTable(page, "", servicesTableTag)
	assert.True(t, ok)
	assert.Equal(t, `<table class="services"><tr><td>a</td></tr></table>`, table)

	_, ok = sectionTable(`<table class="extaddr"></table>`, addressMarker, addressTableTag)
	assert.False(t, ok, "marker missing")

	_, ok = sectionTable(addressMarker+`<table class="extaddr"><tr>`, addressMarker, addressTableTag)
	assert.False(t, ok, "table not closed")

	_, ok = sectionTable(`<table class="extaddr"></table>`+addressMarker, addressMarker, addressTableTag)
	assert.False(t, ok, "table before marker")
}

func TestTableRows(t *testing.T) {
	rows := tableRows(`<table>
<caption>Caption</caption>
<tr><th>Name</th><th>Value</th></tr>
<tr><td>one</td><td class='enabled'>1</td></tr>
<tr> <td> two </td>
 <td>2</td> </tr>
<tr><td><b>bold</b></td><td>3</td></tr>
<tr><td></td><td>4</td></tr>
<tr>stray<td>five</td><td>5</td></tr>
<tr><td>a &amp; b</td><td>6</td></tr>
<tr><td>unclosed</td><td>7</td>
<tr><td>eight</td><td>8</td></tr>
</table>`)

	assert.Equal(t, [][]tableCell{
		{{text: "one"}, {text: "1", class: "enabled", classed: true}},
		{{text: "two"}, {text: "2"}},
		{{text: "a & b"}, {text: "6"}},
		{{text: "eight"}, {text: "8"}},
	}, rows)
}

func TestExtractExternalAddresses(t *testing.T) {
	var testCases = []struct {
		name   string
		input  string
		output []ExternalAddress
	}{
		{
			name:   "section missing",
			input:  `<table class="extaddr"><tr><td>NTCP2</td><td>1.2.3.4:1</td></tr></table>`,
			output: nil,
		},
		{
			name:   "table missing",
			input:  `<b>Our external address:</b><br>`,
			output: nil,
		},
		{
			name:   "empty table",
			input:  `<b>Our external address:</b><br><table class="extaddr"></table>`,
			output: []ExternalAddress{},
		},
		{
			name: "rows in order",
			input: `<b>Our external address:</b><br><table class="extaddr">` +
				`<tr><td>SSU2</td><td>1.2.3.4:1</td></tr>` +
				`<tr><td>NTCP2</td><td>1.2.3.4:2</td></tr>` +
				`<tr><td>only one</td></tr>` +
				`</table><tr><td>after</td><td>table</td></tr>`,
			output: []ExternalAddress{{"SSU2", "1.2.3.4:1"}, {"NTCP2", "1.2.3.4:2"}},
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.output, Extract(testCase.input).ExternalAddresses, testCase.name)
	}
}

func TestExtractServices(t *testing.T) {
	s := Extract(`<table class="services"><tr><td>SOCKS</td><td class='enabled'>Yes</td></tr></table>`)
	assert.Equal(t, map[string]bool{"socks": true}, s.Services)

	s = Extract(`<table class="services">` +
		`<tr><td>HTTP Proxy</td><td class='enabled'>Enabled</td></tr>` +
		`<tr><td>http proxy</td><td class='disabled'>Disabled</td></tr>` +
		`<tr><td>SAM</td><td class='unknown'>?</td></tr>` +
		`<tr><td>BOB</td><td>Enabled</td></tr>` +
		`</table>`)
	assert.Equal(t, map[string]bool{"http_proxy": false, "sam": false}, s.Services)

	assert.Nil(t, Extract(`<tr><td>SOCKS</td><td class='enabled'>Yes</td></tr>`).Services)
}
