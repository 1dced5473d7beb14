package xcidr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Prefix 返回等价的 [netip.Prefix]（地址保持构造形态，不做掩码
// 归一化）。无效块返回 (零值, false)。
func (b Block) Prefix() (netip.Prefix, bool) {
	if b.addr == nil {
		return netip.Prefix{}, false
	}
	p := netip.PrefixFrom(b.addr.NetIP(), int(b.bits))
	return p, p.IsValid()
}

// FromPrefix 从 [netip.Prefix] 构造块。
// 无效 Prefix 返回 [xaddr.ErrInvalidAddress]。
func FromPrefix(p netip.Prefix) (Block, error) {
	if !p.IsValid() {
		return Block{}, fmt.Errorf("%w: invalid prefix", xaddr.ErrInvalidAddress)
	}
	a, err := xaddr.FromNetIP(p.Addr())
	if err != nil {
		return Block{}, err
	}
	return New(a, p.Bits())
}

// IPRange 返回块覆盖的 [netipx.IPRange]（网络地址到范围上界）。
// 无效块返回 (零值, false)。
func (b Block) IPRange() (netipx.IPRange, bool) {
	if b.addr == nil {
		return netipx.IPRange{}, false
	}
	r := netipx.IPRangeFrom(b.Network().NetIP(), b.Broadcast().NetIP())
	return r, r.IsValid()
}
