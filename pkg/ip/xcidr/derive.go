package xcidr

import (
	"math/big"

	"github.com/omeyang/ipkit/internal/uint128"
	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// mask4 返回 IPv4 前缀掩码的 32 位整数值。
// bits 取 0-32；bits 为 0 时移位计数等于字宽，结果为 0。
func mask4(bits int) uint32 {
	return ^uint32(0) << (32 - uint(bits))
}

// netmask4 返回 IPv4 前缀掩码地址。
func netmask4(bits int) xaddr.Addr4 {
	return xaddr.Addr4FromUint32(mask4(bits))
}

// netmask6 返回 IPv6 前缀掩码地址。
// bits 取 0-128；bits 为 0 时移位计数等于字宽，结果为全零。
func netmask6(bits int) xaddr.Addr6 {
	return xaddr.Addr6From16(uint128.Max().Lsh(uint(128 - bits)).As16())
}

// range4 返回 IPv4 块的网络地址和广播地址。
// 调用方保证 b.addr 是 [xaddr.Addr4]。
func (b Block) range4() (network, broadcast xaddr.Addr4) {
	a := b.addr.(xaddr.Addr4)
	m := netmask4(int(b.bits))
	network = a.And(m)
	broadcast = network.Or(m.Not())
	return network, broadcast
}

// range6 返回 IPv6 块的首尾地址。
// 调用方保证 b.addr 是 [xaddr.Addr6]。
func (b Block) range6() (first, last xaddr.Addr6) {
	a := b.addr.(xaddr.Addr6)
	m := netmask6(int(b.bits))
	first = a.And(m)
	last = first.Or(m.Not())
	return first, last
}

// Netmask 返回块的前缀掩码：前 bits 位为 1，其余为 0。
// 无效块返回 nil。
func (b Block) Netmask() xaddr.Addr {
	switch b.addr.(type) {
	case xaddr.Addr4:
		return netmask4(int(b.bits))
	case xaddr.Addr6:
		return netmask6(int(b.bits))
	default:
		return nil
	}
}

// Network 返回网络地址：构造地址与掩码按位与。
// 无效块返回 nil。
func (b Block) Network() xaddr.Addr {
	switch b.addr.(type) {
	case xaddr.Addr4:
		n, _ := b.range4()
		return n
	case xaddr.Addr6:
		n, _ := b.range6()
		return n
	default:
		return nil
	}
}

// Broadcast 返回块内最大地址：网络地址与主机掩码按位或。
// IPv6 没有广播语义，返回值即范围上界。无效块返回 nil。
func (b Block) Broadcast() xaddr.Addr {
	switch b.addr.(type) {
	case xaddr.Addr4:
		_, bc := b.range4()
		return bc
	case xaddr.Addr6:
		_, last := b.range6()
		return last
	default:
		return nil
	}
}

// First 返回块内第一个可用地址。
//
// IPv4 前缀 ≤ /30 时为网络地址的下一个（网络地址不可用）；
// /31（RFC 3021 点对点）和 /32 没有独立的网络地址角色，直接返回
// 范围下界。IPv6 始终返回范围下界。无效块返回 nil。
func (b Block) First() xaddr.Addr {
	switch b.addr.(type) {
	case xaddr.Addr4:
		n, _ := b.range4()
		if b.bits >= 31 {
			return n
		}
		return n.Next()
	case xaddr.Addr6:
		n, _ := b.range6()
		return n
	default:
		return nil
	}
}

// Last 返回块内最后一个可用地址。
//
// IPv4 前缀 ≤ /30 时为广播地址的前一个（广播地址不可用）；
// /31 和 /32 直接返回范围上界。IPv6 始终返回范围上界。
// 无效块返回 nil。
func (b Block) Last() xaddr.Addr {
	switch b.addr.(type) {
	case xaddr.Addr4:
		_, bc := b.range4()
		if b.bits >= 31 {
			return bc
		}
		return bc.Prev()
	case xaddr.Addr6:
		_, last := b.range6()
		return last
	default:
		return nil
	}
}

// Size 返回块内地址总数（2 的主机位数次幂）。
// 每次调用返回新分配的 big.Int。无效块返回 nil。
func (b Block) Size() *big.Int {
	if b.addr == nil {
		return nil
	}
	hostBits := b.addr.Version().Bits() - int(b.bits)
	return new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
}

// Size64 返回块内地址总数的 uint64 表示。
// 主机位数 ≥ 64 时数量超出 uint64 表示范围，返回 (0, false)；
// 无效块同样返回 (0, false)。
func (b Block) Size64() (uint64, bool) {
	if b.addr == nil {
		return 0, false
	}
	hostBits := b.addr.Version().Bits() - int(b.bits)
	if hostBits >= 64 {
		return 0, false
	}
	return 1 << uint(hostBits), true
}
