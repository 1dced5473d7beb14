package xaddr

import "strconv"

// ReverseName 返回用于反向 DNS 解析的 ARPA 域名：
// 逆序的十进制八位段加 ".in-addr.arpa" 后缀，不带末尾点。
//
//	MustParse4("192.168.1.1").ReverseName() // "1.1.168.192.in-addr.arpa"
func (a Addr4) ReverseName() string {
	b := a.As4()
	var buf [28]byte // len("255.255.255.255.in-addr.arpa")
	out := buf[:0]
	for i := 3; i >= 0; i-- {
		out = strconv.AppendUint(out, uint64(b[i]), 10)
		out = append(out, '.')
	}
	return string(append(out, "in-addr.arpa"...))
}

// ReverseName 返回用于反向 DNS 解析的 ARPA 域名：
// 32 个逆序的十六进制半字节以 '.' 相连，加 ".ip6.arpa" 后缀，不带末尾点。
// IPv4-mapped 地址与其他 IPv6 地址一样使用半字节格式。
//
//	MustParse6("2001:db8::1").ReverseName()
//	// "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa"
func (a Addr6) ReverseName() string {
	b := a.As16()
	var buf [72]byte // 32 个 "x." 加 len("ip6.arpa")
	out := buf[:0]
	for i := 15; i >= 0; i-- {
		out = append(out, hexLower[b[i]&0xf], '.', hexLower[b[i]>>4], '.')
	}
	return string(append(out, "ip6.arpa"...))
}
