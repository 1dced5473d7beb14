package xaddr

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析基准测试（对标 netip.ParseAddr）
// =============================================================================

func BenchmarkParse4(b *testing.B) {
	b.Run("Parse4", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse4("192.168.1.1")
		}
	})
	b.Run("netip.ParseAddr", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("192.168.1.1")
		}
	})
}

func BenchmarkParse6(b *testing.B) {
	b.Run("Parse6", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse6("2001:db8::8a2e:370:7334")
		}
	})
	b.Run("Parse6Mapped", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse6("::ffff:192.168.1.1")
		}
	})
	b.Run("netip.ParseAddr", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("2001:db8::8a2e:370:7334")
		}
	})
}

// =============================================================================
// 渲染基准测试
// =============================================================================

func BenchmarkString(b *testing.B) {
	a4 := MustParse4("192.168.1.1")
	b.Run("IPv4", func(b *testing.B) {
		for b.Loop() {
			_ = a4.String()
		}
	})

	a6 := MustParse6("2001:db8::8a2e:370:7334")
	b.Run("IPv6", func(b *testing.B) {
		for b.Loop() {
			_ = a6.String()
		}
	})

	mapped := MustParse6("::ffff:192.168.1.1")
	b.Run("IPv6/mapped", func(b *testing.B) {
		for b.Loop() {
			_ = mapped.String()
		}
	})

	std := netip.MustParseAddr("2001:db8::8a2e:370:7334")
	b.Run("netip.Addr.String", func(b *testing.B) {
		for b.Loop() {
			_ = std.String()
		}
	})
}

func BenchmarkExpanded(b *testing.B) {
	a := MustParse6("2001:db8::1")
	for b.Loop() {
		_ = a.Expanded()
	}
}

// =============================================================================
// 比较基准测试
// =============================================================================

func BenchmarkCompare(b *testing.B) {
	x := MustParse6("2001:db8::1")
	y := MustParse6("2001:db8::2")
	b.Run("Addr6.Compare", func(b *testing.B) {
		for b.Loop() {
			_ = x.Compare(y)
		}
	})

	sx := netip.MustParseAddr("2001:db8::1")
	sy := netip.MustParseAddr("2001:db8::2")
	b.Run("netip.Addr.Compare", func(b *testing.B) {
		for b.Loop() {
			_ = sx.Compare(sy)
		}
	})
}

// =============================================================================
// 分类基准测试
// =============================================================================

func BenchmarkClassify(b *testing.B) {
	a4 := MustParse4("192.168.1.1")
	b.Run("IPv4", func(b *testing.B) {
		for b.Loop() {
			_ = Classify(a4)
		}
	})

	a6 := MustParse6("2001:db8::1")
	b.Run("IPv6", func(b *testing.B) {
		for b.Loop() {
			_ = Classify(a6)
		}
	})
}

// =============================================================================
// 反向域名基准测试
// =============================================================================

func BenchmarkReverseName(b *testing.B) {
	a4 := MustParse4("192.168.1.1")
	b.Run("IPv4", func(b *testing.B) {
		for b.Loop() {
			_ = a4.ReverseName()
		}
	})

	a6 := MustParse6("2001:db8::8a2e:370:7334")
	b.Run("IPv6", func(b *testing.B) {
		for b.Loop() {
			_ = a6.ReverseName()
		}
	})
}
