package xaddr

// IsUnspecified 报告 a 是否为未指定地址 ::。
func (a Addr6) IsUnspecified() bool {
	return a.v.IsZero()
}

// IsLoopback 报告 a 是否为环回地址 ::1。
func (a Addr6) IsLoopback() bool {
	return a.v.Hi == 0 && a.v.Lo == 1
}

// IsMulticast 报告 a 是否为多播地址（ff00::/8）。
func (a Addr6) IsMulticast() bool {
	return a.v.Hi>>56 == 0xFF
}

// IsLinkLocal 报告 a 是否为链路本地单播地址（fe80::/10）。
func (a Addr6) IsLinkLocal() bool {
	// fe80::/10：最高 10 位为 1111111010
	return a.v.Hi>>54 == 0x3FA
}

// IsUniqueLocal 报告 a 是否为唯一本地地址（fc00::/7，ULA）。
// ULA 是 IPv6 中与 RFC 1918 私有网段对应的概念。
func (a Addr6) IsUniqueLocal() bool {
	// fc00::/7：最高 7 位为 1111110
	return a.v.Hi>>57 == 0x7E
}

// IsMapped 报告 a 是否为 IPv4-mapped 地址（::ffff:0:0/96）。
// 映射地址的低 32 位可通过 [Addr6.To4] 取回。
func (a Addr6) IsMapped() bool {
	return a.v.Hi == 0 && a.v.Lo>>32 == 0xFFFF
}

// IsReserved 报告 a 是否落在不可公网路由的保留网段内：
//   - 100::/64（丢弃前缀，RFC 6666）
//   - 2001::/32（Teredo）
//   - 2001:2::/48（基准测试）
//   - 2001:db8::/32（文档专用）
//   - 2002::/16（6to4）
func (a Addr6) IsReserved() bool {
	return a.v.Hi == 0x0100000000000000 ||
		a.v.Hi>>32 == 0x20010000 ||
		a.v.Hi>>16 == 0x200100020000 ||
		a.v.Hi>>32 == 0x20010DB8 ||
		a.v.Hi>>48 == 0x2002
}

// IsGlobalUnicast 报告 a 是否为全局单播地址：
// 落在 2000::/3 内且不属于其中的保留网段。
func (a Addr6) IsGlobalUnicast() bool {
	// 2000::/3：最高 3 位为 001
	return a.v.Hi>>61 == 0x1 && !a.IsReserved()
}
