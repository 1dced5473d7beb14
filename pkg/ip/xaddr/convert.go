package xaddr

import (
	"fmt"
	"math/big"
	"net/netip"

	"github.com/omeyang/ipkit/internal/uint128"
)

// BigInt 返回地址的规范整数值。
// 每次调用返回新分配的 big.Int，修改不影响地址值。
func (a Addr4) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(a.v))
}

// BigInt 返回地址的规范整数值。
// 每次调用返回新分配的 big.Int，修改不影响地址值。
func (a Addr6) BigInt() *big.Int {
	b := a.v.As16()
	return new(big.Int).SetBytes(b[:])
}

// Addr4FromBigInt 从规范整数构造 IPv4 地址。
// n 为 nil、负数或超出 32 位范围时返回 [ErrInvalidAddress]。
func Addr4FromBigInt(n *big.Int) (Addr4, error) {
	if n == nil || n.Sign() < 0 || n.BitLen() > 32 {
		return Addr4{}, fmt.Errorf("%w: big.Int out of IPv4 range", ErrInvalidAddress)
	}
	return Addr4{v: uint32(n.Uint64())}, nil
}

// Addr6FromBigInt 从规范整数构造 IPv6 地址。
// n 为 nil、负数或超出 128 位范围时返回 [ErrInvalidAddress]。
func Addr6FromBigInt(n *big.Int) (Addr6, error) {
	if n == nil || n.Sign() < 0 || n.BitLen() > 128 {
		return Addr6{}, fmt.Errorf("%w: big.Int out of IPv6 range", ErrInvalidAddress)
	}
	var b [16]byte
	n.FillBytes(b[:])
	return Addr6{v: uint128.From16(b)}, nil
}

// NetIP 返回等价的 [netip.Addr]（4 字节形式）。
func (a Addr4) NetIP() netip.Addr {
	return netip.AddrFrom4(a.As4())
}

// NetIP 返回等价的 [netip.Addr]（16 字节形式）。
// IPv4-mapped 地址保持 16 字节表示，不做 Unmap。
func (a Addr6) NetIP() netip.Addr {
	return netip.AddrFrom16(a.As16())
}

// FromNetIP 从 [netip.Addr] 构造地址值：
// 4 字节形式返回 [Addr4]，16 字节形式（含 IPv4-in-IPv6）返回 [Addr6]，
// 表示保持不变。zone 信息被丢弃。
// 零值 netip.Addr 返回 [ErrInvalidAddress]。
func FromNetIP(ip netip.Addr) (Addr, error) {
	switch {
	case ip.Is4():
		return Addr4From4(ip.As4()), nil
	case ip.Is6():
		return Addr6From16(ip.As16()), nil
	default:
		return nil, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
}

// MapTo6 返回 a 的 IPv4-mapped IPv6 形式（::ffff:a.b.c.d）。
// 映射保留原 32 位整数作为低 32 位，可由 [Addr6.To4] 无损取回。
func (a Addr4) MapTo6() Addr6 {
	return Addr6{v: uint128.Uint128{Lo: 0xFFFF<<32 | uint64(a.v)}}
}

// To4 返回 IPv4-mapped 地址中嵌入的 IPv4 地址。
// 非映射地址返回零值和 false；这是正常的查询结果，不是错误。
func (a Addr6) To4() (Addr4, bool) {
	if !a.IsMapped() {
		return Addr4{}, false
	}
	return Addr4{v: uint32(a.v.Lo)}, true
}
