package xaddr

import (
	"fmt"
	"math/big"
	"net/netip"
)

// Addr 是 IP 地址值的公共接口，由 [Addr4] 和 [Addr6] 实现。
//
// 版本多态的入口（如 [Parse]）和派生运算（如 xcidr 的网络地址计算）
// 通过 Addr 传递地址值。需要版本特定操作时，对 Addr 做类型断言
// 取回具体类型。
type Addr interface {
	// Version 返回地址的 IP 版本（V4 或 V6）。
	Version() Version

	// String 返回规范文本表示。
	String() string

	// BigInt 返回地址的规范整数值。
	// 每次调用返回新分配的 big.Int。
	BigInt() *big.Int

	// Bytes 返回大端序字节表示（IPv4 为 4 字节，IPv6 为 16 字节）。
	// 每次调用返回新分配的副本。
	Bytes() []byte

	// ReverseName 返回用于反向 DNS 解析的 ARPA 域名，不带末尾点。
	ReverseName() string

	// NetIP 返回等价的 [netip.Addr]。
	NetIP() netip.Addr

	// sealed 将实现限定在本包内。
	sealed()
}

// Resolve 将操作数解析为地址值。
// 接受 [Addr4]、[Addr6]（或持有两者的 [Addr]）以及文本字面量。
// 其余类型与无法解析的文本返回 [ErrInvalidAddress]。
func Resolve(v any) (Addr, error) {
	switch x := v.(type) {
	case Addr:
		return x, nil
	case string:
		return Parse(x)
	default:
		return nil, fmt.Errorf("%w: cannot resolve %T as an address", ErrInvalidAddress, v)
	}
}

// Resolve4 将操作数解析为 IPv4 地址值。
// 接受 [Addr4] 和 IPv4 文本字面量。IPv6 操作数（包括 IPv4-mapped
// 形式）不做隐式降级，返回 [ErrInvalidAddress]；
// 降级请显式调用 [Addr6.To4]。
func Resolve4(v any) (Addr4, error) {
	switch x := v.(type) {
	case Addr4:
		return x, nil
	case string:
		return Parse4(x)
	default:
		return Addr4{}, fmt.Errorf("%w: expected IPv4, got %T", ErrInvalidAddress, v)
	}
}

// Resolve6 将操作数解析为 IPv6 地址值。
// 接受 [Addr6] 和 IPv6 文本字面量。IPv4 操作数不做隐式映射，
// 返回 [ErrInvalidAddress]；映射请显式调用 [Addr4.MapTo6]。
func Resolve6(v any) (Addr6, error) {
	switch x := v.(type) {
	case Addr6:
		return x, nil
	case string:
		return Parse6(x)
	default:
		return Addr6{}, fmt.Errorf("%w: expected IPv6, got %T", ErrInvalidAddress, v)
	}
}
