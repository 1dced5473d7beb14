package xaddr

import (
	"fmt"

	"github.com/omeyang/ipkit/internal/uint128"
)

// Addr6 表示一个 IPv6 地址。
//
// Addr6 是不可变值类型，内部只存储一个 128 位规范整数：
// :: 即 0，::1 即 1。IPv4-mapped 地址（::ffff:a.b.c.d）保持
// 128 位表示，不会被自动降级为 [Addr4]。
//
//   - 任何 128 位整数都是合法地址，不存在无效值；零值即 ::
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [Parse6]、[MustParse6] 或 Addr6From* 构造函数创建。
// zone 后缀（"%eth0"）在解析时被剥离，地址值不携带 zone。
type Addr6 struct {
	v uint128.Uint128
}

// Addr6From16 从大端序 16 字节数组构造 IPv6 地址。
func Addr6From16(b [16]byte) Addr6 {
	return Addr6{v: uint128.From16(b)}
}

// Addr6FromBytes 从大端序字节切片构造 IPv6 地址。
// 切片长度必须为 16，否则返回 [ErrInvalidAddress]。
func Addr6FromBytes(b []byte) (Addr6, error) {
	if len(b) != 16 {
		return Addr6{}, fmt.Errorf("%w: need 16 bytes, got %d", ErrInvalidAddress, len(b))
	}
	return Addr6{v: uint128.From16([16]byte(b))}, nil
}

// Version 返回 [V6]。
func (a Addr6) Version() Version {
	return V6
}

// As16 返回大端序 16 字节数组表示。
func (a Addr6) As16() [16]byte {
	return a.v.As16()
}

// Bytes 返回大端序字节切片表示（长度始终为 16）。
// 返回新分配的副本。
func (a Addr6) Bytes() []byte {
	b := a.v.As16()
	return b[:]
}

// Compare 按规范整数值比较两个地址。
// 返回值：-1 (a < b)，0 (a == b)，1 (a > b)。
func (a Addr6) Compare(b Addr6) int {
	return a.v.Cmp(b.v)
}

// Less 报告 a 的规范整数值是否小于 b。
func (a Addr6) Less(b Addr6) bool {
	return a.v.Cmp(b.v) < 0
}

// Next 返回地址空间中的下一个地址。
// 最大地址的下一个地址环绕为 ::。
func (a Addr6) Next() Addr6 {
	return Addr6{v: a.v.Add64(1)}
}

// Prev 返回地址空间中的前一个地址。
// :: 的前一个地址环绕为最大地址。
func (a Addr6) Prev() Addr6 {
	return Addr6{v: a.v.Sub64(1)}
}

// Add 返回 a + n，模 2^128 环绕。
func (a Addr6) Add(n uint64) Addr6 {
	return Addr6{v: a.v.Add64(n)}
}

// Sub 返回 a - n，模 2^128 环绕。
func (a Addr6) Sub(n uint64) Addr6 {
	return Addr6{v: a.v.Sub64(n)}
}

// And 返回两个地址按位与的结果，常用于掩码运算。
func (a Addr6) And(b Addr6) Addr6 {
	return Addr6{v: a.v.And(b.v)}
}

// Or 返回两个地址按位或的结果。
func (a Addr6) Or(b Addr6) Addr6 {
	return Addr6{v: a.v.Or(b.v)}
}

// Not 返回地址按位取反的结果，常用于主机掩码推导。
func (a Addr6) Not() Addr6 {
	return Addr6{v: a.v.Not()}
}

// group 返回第 i 个 16 位组（大端序，i 取 0-7）。
func (a Addr6) group(i int) uint16 {
	if i < 4 {
		return uint16(a.v.Hi >> (48 - 16*uint(i)))
	}
	return uint16(a.v.Lo >> (48 - 16*uint(i-4)))
}

func (Addr6) sealed() {}
