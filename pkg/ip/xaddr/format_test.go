package xaddr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddr4String(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want string
	}{
		{name: "zero", v: 0, want: "0.0.0.0"},
		{name: "max", v: 0xFFFFFFFF, want: "255.255.255.255"},
		{name: "private", v: 0xC0A80101, want: "192.168.1.1"},
		{name: "public dns", v: 0x08080808, want: "8.8.8.8"},
		{name: "mixed widths", v: 0x0A00FF07, want: "10.0.255.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Addr4FromUint32(tt.v).String())
		})
	}
}

func TestAddr6String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unspecified", input: "::", want: "::"},
		{name: "loopback", input: "::1", want: "::1"},
		{name: "trailing ellipsis", input: "1::", want: "1::"},
		{name: "full no zeros", input: "1:2:3:4:5:6:7:8", want: "1:2:3:4:5:6:7:8"},
		{name: "documentation", input: "2001:0db8:0000:0000:0000:0000:8a2e:0370", want: "2001:db8::8a2e:370"},
		{name: "single zero group kept", input: "2001:db8:0:1:1:1:1:1", want: "2001:db8:0:1:1:1:1:1"},
		{name: "leftmost of equal runs", input: "2001:db8:0:0:1:0:0:1", want: "2001:db8::1:0:0:1"},
		{name: "leftmost tie at start", input: "2001:0:0:1:0:0:1:1", want: "2001::1:0:0:1:1"},
		{name: "longer run wins", input: "1:0:0:2:0:0:0:3", want: "1:0:0:2::3"},
		{name: "run at end", input: "1:2:3:4:5:6:0:0", want: "1:2:3:4:5:6::"},
		{name: "lowercase hex", input: "2001:DB8::ABCD", want: "2001:db8::abcd"},
		{name: "mapped", input: "::ffff:192.168.1.1", want: "::ffff:192.168.1.1"},
		{name: "mapped zero", input: "::ffff:0:0", want: "::ffff:0.0.0.0"},
		{name: "near mapped not dotted", input: "::fffe:102:304", want: "::fffe:102:304"},
		{name: "link local", input: "fe80::1", want: "fe80::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse6(tt.input).String())
		})
	}
}

func TestAddr6Expanded(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unspecified", input: "::", want: "0000:0000:0000:0000:0000:0000:0000:0000"},
		{name: "loopback", input: "::1", want: "0000:0000:0000:0000:0000:0000:0000:0001"},
		{name: "documentation", input: "2001:db8::8a2e:370:7334", want: "2001:0db8:0000:0000:0000:8a2e:0370:7334"},
		{name: "full form unchanged", input: "1111:2222:3333:4444:5555:6666:7777:8888", want: "1111:2222:3333:4444:5555:6666:7777:8888"},
		{name: "mapped stays dotted", input: "::ffff:10.0.0.1", want: "::ffff:10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse6(tt.input).Expanded())
		})
	}
}

// 进位跨越 64 位边界后的渲染：低 64 位全 1 加一后高位进 1。
func TestAddr6StringAfterCarry(t *testing.T) {
	a := MustParse6("::ffff:ffff:ffff:ffff")
	assert.Equal(t, "0:0:0:1::", a.Next().String())
}

// 与标准库 netip 对照：两边都按 RFC 5952 输出，文本必须一致。
func TestStringAgreesWithNetip(t *testing.T) {
	inputs := []string{
		"::", "::1", "1::", "2001:db8::8a2e:370:7334",
		"2001:db8:0:0:1:0:0:1", "1:0:0:2:0:0:0:3",
		"::ffff:192.168.1.1", "::ffff:0:0", "fe80::1",
		"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:0:0",
	}

	for _, s := range inputs {
		got, err := Parse6(s)
		require.NoError(t, err, s)
		assert.Equal(t, netip.MustParseAddr(s).String(), got.String(), s)
	}
}

// String 往返：任何地址渲染后再解析必须得到原值。
func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"0.0.0.0", "255.255.255.255", "192.168.1.1",
		"::", "::1", "2001:db8::8a2e:370:7334", "::ffff:10.0.0.1",
		"1:0:0:2:0:0:0:3", "fe80::1",
	}

	for _, s := range inputs {
		a, err := Parse(s)
		require.NoError(t, err, s)

		back, err := Parse(a.String())
		require.NoError(t, err, s)
		assert.Equal(t, a, back, s)
	}
}
