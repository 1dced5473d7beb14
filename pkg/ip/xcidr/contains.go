package xcidr

import "github.com/omeyang/ipkit/pkg/ip/xaddr"

// Contains 报告操作数是否落在块内。
//
// 操作数经 [xaddr.Resolve] 解析：既接受地址值（[xaddr.Addr4]、
// [xaddr.Addr6]）也接受文本字面量。判定式永不报错：无法解析的
// 操作数、版本不匹配（IPv4-mapped 是 IPv6 值，不落在任何 IPv4
// 块内）和无效块一律返回 false。
func (b Block) Contains(v any) bool {
	a, err := xaddr.Resolve(v)
	if err != nil {
		return false
	}
	return b.ContainsAddr(a)
}

// ContainsAddr 报告地址值是否落在块内：network <= a <= broadcast
// 按整数序。类型化快路径，不经过操作数解析。
func (b Block) ContainsAddr(a xaddr.Addr) bool {
	switch x := b.addr.(type) {
	case xaddr.Addr4:
		c, ok := a.(xaddr.Addr4)
		if !ok {
			return false
		}
		m := mask4(int(b.bits))
		return c.Uint32()&m == x.Uint32()&m
	case xaddr.Addr6:
		c, ok := a.(xaddr.Addr6)
		if !ok {
			return false
		}
		m := netmask6(int(b.bits))
		return c.And(m) == x.And(m)
	default:
		return false
	}
}
