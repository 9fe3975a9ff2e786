package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	var testCases = []struct {
		input  string
		output uint64
		ok     bool
	}{
		{"1 B", 1, true},
		{"1 KiB", 1024, true},
		{"1 MiB", 1024 * 1024, true},
		{"1 GiB", 1024 * 1024 * 1024, true},
		{"1 TiB", 1024 * 1024 * 1024 * 1024, true},
		{"1.5 MiB", 1572864, true},
		{"2.00 GiB", 2147483648, true},
		{"0.5 B", 0, true},
		{" 12 KiB ", 12288, true},
		{"12KiB", 12288, true},
		{"16777216 TiB", 0, false},
		{"99999999999 TiB", 0, false},
		{"16777215 TiB", 16777215 << 40, true},
		{"1 PiB", 0, false},
		{"1 KB", 0, false},
		{"1 KiB/s", 0, false},
		{"lots MiB", 0, false},
		{"garbage", 0, false},
		{"", 0, false},
	}

	for _, testCase := range testCases {
		v, ok := parseSize(testCase.input)

		assert.Equal(t, testCase.ok, ok, "input %q", testCase.input)
		assert.Equal(t, testCase.output, v, "input %q", testCase.input)
	}
}

func TestParseRate(t *testing.T) {
	var testCases = []struct {
		input  string
		output float64
		ok     bool
	}{
		{"1 B/s", 1, true},
		{"100.5 KiB/s", 102912.0, true},
		{"150.00 KiB/s", 153600.0, true},
		{"1 MiB/s", 1 << 20, true},
		{"2 GiB/s", 2 << 30, true},
		{"1 TiB/s", 1 << 40, true},
		{"0.25 B/s", 0.25, true},
		{"1 KiB", 0, false},
		{"1 kB/s", 0, false},
		{"fast", 0, false},
		{"", 0, false},
	}

	for _, testCase := range testCases {
		v, ok := parseRate(testCase.input)

		assert.Equal(t, testCase.ok, ok, "input %q", testCase.input)
		assert.Equal(t, testCase.output, v, "input %q", testCase.input)
	}
}

func TestParseTraffic(t *testing.T) {
	var testCases = []struct {
		input string
		bytes *uint64
		rate  *float64
	}{
		{"2.00 GiB (150.00 KiB/s)", uint64Ptr(2147483648), float64Ptr(153600)},
		{"2.00 GiB", uint64Ptr(2147483648), nil},
		{"2.00 GiB (fast)", uint64Ptr(2147483648), nil},
		{"2.00 GiB (", uint64Ptr(2147483648), nil},
		{"lots (1.00 KiB/s)", nil, float64Ptr(1024)},
		{"garbage", nil, nil},
	}

	for _, testCase := range testCases {
		tr := parseTraffic(testCase.input)

		assert.Equal(t, testCase.bytes, tr.Bytes, "input %q", testCase.input)
		assert.Equal(t, testCase.rate, tr.Rate, "input %q", testCase.input)
	}
}

func TestServiceKey(t *testing.T) {
	assert.Equal(t, "socks", serviceKey("SOCKS"))
	assert.Equal(t, "http_proxy", serviceKey("HTTP Proxy"))
	assert.Equal(t, "a__b", serviceKey("A  B"))
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
