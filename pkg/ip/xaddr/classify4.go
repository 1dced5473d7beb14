package xaddr

// IsUnspecified 报告 a 是否为未指定地址 0.0.0.0。
func (a Addr4) IsUnspecified() bool {
	return a.v == 0
}

// IsBroadcast 报告 a 是否为有限广播地址 255.255.255.255。
func (a Addr4) IsBroadcast() bool {
	return a.v == 0xFFFFFFFF
}

// IsLoopback 报告 a 是否为环回地址（127.0.0.0/8）。
func (a Addr4) IsLoopback() bool {
	// 127.0.0.0/8 = 0x7F000000 - 0x7FFFFFFF
	return inRange(a.v, 0x7F000000, 0x7FFFFFFF)
}

// IsPrivate 报告 a 是否为 RFC 1918 私有地址：
//   - 10.0.0.0/8
//   - 172.16.0.0/12
//   - 192.168.0.0/16
func (a Addr4) IsPrivate() bool {
	// 10.0.0.0/8 = 0x0A000000 - 0x0AFFFFFF
	// 172.16.0.0/12 = 0xAC100000 - 0xAC1FFFFF
	// 192.168.0.0/16 = 0xC0A80000 - 0xC0A8FFFF
	return inRange(a.v, 0x0A000000, 0x0AFFFFFF) ||
		inRange(a.v, 0xAC100000, 0xAC1FFFFF) ||
		inRange(a.v, 0xC0A80000, 0xC0A8FFFF)
}

// IsLinkLocal 报告 a 是否为链路本地地址（169.254.0.0/16，APIPA）。
func (a Addr4) IsLinkLocal() bool {
	// 169.254.0.0/16 = 0xA9FE0000 - 0xA9FEFFFF
	return inRange(a.v, 0xA9FE0000, 0xA9FEFFFF)
}

// IsMulticast 报告 a 是否为多播地址（224.0.0.0/4）。
func (a Addr4) IsMulticast() bool {
	// 224.0.0.0/4 = 0xE0000000 - 0xEFFFFFFF
	return inRange(a.v, 0xE0000000, 0xEFFFFFFF)
}

// IsReserved 报告 a 是否落在不可公网路由的保留网段内：
//   - 0.0.0.0/8（本网络）
//   - 100.64.0.0/10（共享地址空间，CGNAT）
//   - 192.0.0.0/24（IETF 协议保留）
//   - 192.0.2.0/24、198.51.100.0/24、203.0.113.0/24（TEST-NET-1/2/3）
//   - 192.88.99.0/24（6to4 中继）
//   - 198.18.0.0/15（基准测试）
//   - 240.0.0.0/4（Class E）
//   - 以及私有、环回、链路本地和多播网段
func (a Addr4) IsReserved() bool {
	// 0.0.0.0/8 = 0x00000000 - 0x00FFFFFF
	// 100.64.0.0/10 = 0x64400000 - 0x647FFFFF
	// 192.0.0.0/24 = 0xC0000000 - 0xC00000FF
	// 192.0.2.0/24 = 0xC0000200 - 0xC00002FF
	// 192.88.99.0/24 = 0xC0586300 - 0xC05863FF
	// 198.18.0.0/15 = 0xC6120000 - 0xC613FFFF
	// 198.51.100.0/24 = 0xC6336400 - 0xC63364FF
	// 203.0.113.0/24 = 0xCB007100 - 0xCB0071FF
	// 240.0.0.0/4 = 0xF0000000 - 0xFFFFFFFF
	return inRange(a.v, 0x00000000, 0x00FFFFFF) ||
		inRange(a.v, 0x64400000, 0x647FFFFF) ||
		inRange(a.v, 0xC0000000, 0xC00000FF) ||
		inRange(a.v, 0xC0000200, 0xC00002FF) ||
		inRange(a.v, 0xC0586300, 0xC05863FF) ||
		inRange(a.v, 0xC6120000, 0xC613FFFF) ||
		inRange(a.v, 0xC6336400, 0xC63364FF) ||
		inRange(a.v, 0xCB007100, 0xCB0071FF) ||
		inRange(a.v, 0xF0000000, 0xFFFFFFFF) ||
		a.IsPrivate() || a.IsLoopback() || a.IsLinkLocal() || a.IsMulticast()
}

// IsGlobalUnicast 报告 a 是否为可公网路由的全局单播地址，
// 即非未指定、非广播且不落在任何保留网段内。
// 注意私有地址属于保留网段，因此不是全局单播。
func (a Addr4) IsGlobalUnicast() bool {
	return !a.IsUnspecified() && !a.IsBroadcast() && !a.IsReserved()
}

// inRange 检查 v 是否在 [lo, hi] 范围内。
func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}
