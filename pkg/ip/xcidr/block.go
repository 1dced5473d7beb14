package xcidr

import (
	"fmt"
	"strconv"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Block 表示一个 CIDR 块：一个地址加一个前缀位数。
//
// Block 是不可变值类型，只保存构造时的地址（不做掩码归一化，
// 归一化请用 [Block.Masked]）和前缀位数。零值 Block{} 是无效块。
//
//   - 可直接比较（==）和用作 map key；注意 10.0.0.1/24 与
//     10.0.0.0/24 地址不同，比较不相等，需先 Masked
//   - 网络地址、广播地址等派生量每次调用即时计算
//   - 并发安全，无需加锁
type Block struct {
	addr xaddr.Addr
	bits int16
}

// New 从地址值和前缀位数构造 CIDR 块。
// addr 为 nil 或 bits 超出版本位宽（IPv4 0-32，IPv6 0-128）时
// 返回 [xaddr.ErrInvalidAddress]。
func New(addr xaddr.Addr, bits int) (Block, error) {
	if addr == nil {
		return Block{}, fmt.Errorf("%w: nil address for CIDR block", xaddr.ErrInvalidAddress)
	}
	if bits < 0 || bits > addr.Version().Bits() {
		return Block{}, fmt.Errorf("%w: prefix length %d out of range for %s", xaddr.ErrInvalidAddress, bits, addr.Version())
	}
	return Block{addr: addr, bits: int16(bits)}, nil
}

// Addr 返回构造时的地址（未做掩码归一化）。
// 无效块返回 nil。
func (b Block) Addr() xaddr.Addr {
	return b.addr
}

// Bits 返回前缀位数。无效块返回 -1。
func (b Block) Bits() int {
	if b.addr == nil {
		return -1
	}
	return int(b.bits)
}

// Version 返回块的 IP 版本。无效块返回 [xaddr.V0]。
func (b Block) Version() xaddr.Version {
	if b.addr == nil {
		return xaddr.V0
	}
	return b.addr.Version()
}

// IsValid 报告 b 是否为有效块。零值 Block{} 返回 false。
func (b Block) IsValid() bool {
	return b.addr != nil
}

// String 返回 "地址/前缀位数" 形式的规范文本。
// 无效块返回 "invalid Block"。
func (b Block) String() string {
	if b.addr == nil {
		return "invalid Block"
	}
	return b.addr.String() + "/" + strconv.Itoa(int(b.bits))
}

// Masked 返回地址归一化为网络地址的等价块。
// 10.1.2.3/16 归一化为 10.1.0.0/16。无效块返回零值。
func (b Block) Masked() Block {
	if b.addr == nil {
		return Block{}
	}
	return Block{addr: b.Network(), bits: b.bits}
}
