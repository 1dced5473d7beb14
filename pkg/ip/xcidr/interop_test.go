package xcidr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{name: "v4 masked", block: "10.0.0.0/24", want: "10.0.0.0/24"},
		{name: "v4 host bits kept", block: "10.0.0.7/24", want: "10.0.0.7/24"},
		{name: "v4 single", block: "192.168.1.1/32", want: "192.168.1.1/32"},
		{name: "v6 masked", block: "2001:db8::/48", want: "2001:db8::/48"},
		{name: "v6 host bits kept", block: "2001:db8::1/48", want: "2001:db8::1/48"},
		{name: "mapped", block: "::ffff:10.0.0.0/104", want: "::ffff:10.0.0.0/104"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := MustParse(tt.block).Prefix()
			require.True(t, ok)
			assert.Equal(t, netip.MustParsePrefix(tt.want), p)
		})
	}
}

func TestPrefixZeroBlock(t *testing.T) {
	var b Block
	p, ok := b.Prefix()
	assert.False(t, ok)
	assert.Equal(t, netip.Prefix{}, p)
}

func TestFromPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "v4", prefix: "10.0.0.0/8"},
		{name: "v4 host bits", prefix: "10.0.0.7/24"},
		{name: "v6", prefix: "2001:db8::/32"},
		{name: "v6 full", prefix: "::1/128"},
		{name: "mapped", prefix: "::ffff:10.0.0.0/104"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromPrefix(netip.MustParsePrefix(tt.prefix))
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, b.String())
		})
	}
}

func TestFromPrefixInvalid(t *testing.T) {
	_, err := FromPrefix(netip.Prefix{})
	assert.ErrorIs(t, err, xaddr.ErrInvalidAddress)

	// 负的前缀长度构造出无效 Prefix
	_, err = FromPrefix(netip.PrefixFrom(netip.MustParseAddr("10.0.0.1"), -1))
	assert.ErrorIs(t, err, xaddr.ErrInvalidAddress)
}

// Prefix 与 FromPrefix 互为逆运算。
func TestPrefixRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0.0.0.0/0", "10.0.0.0/8", "10.0.0.7/24", "255.255.255.255/32",
		"::/0", "2001:db8::/32", "2001:db8::1/48", "::ffff:10.0.0.1/104", "::1/128",
	} {
		b := MustParse(s)
		p, ok := b.Prefix()
		require.True(t, ok, s)

		back, err := FromPrefix(p)
		require.NoError(t, err, s)
		assert.Equal(t, b, back, s)
	}
}

func TestIPRange(t *testing.T) {
	// 与 netipx 对同一前缀给出的范围完全一致
	for _, s := range []string{
		"10.0.0.0/24", "10.0.0.7/24", "172.16.0.0/12", "192.168.1.1/32", "0.0.0.0/0",
		"2001:db8::/32", "2001:db8::1/64", "::1/128", "::/0", "::ffff:10.0.0.0/104",
	} {
		b := MustParse(s)
		r, ok := b.IPRange()
		require.True(t, ok, s)

		p, ok := b.Prefix()
		require.True(t, ok, s)
		assert.Equal(t, netipx.RangeOfPrefix(p), r, s)
	}
}

func TestIPRangeZeroBlock(t *testing.T) {
	var b Block
	r, ok := b.IPRange()
	assert.False(t, ok)
	assert.Equal(t, netipx.IPRange{}, r)
}
