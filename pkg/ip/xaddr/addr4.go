package xaddr

import (
	"encoding/binary"
	"fmt"
)

// Addr4 表示一个 IPv4 地址。
//
// Addr4 是不可变值类型，内部只存储一个 32 位规范整数：
// 0.0.0.0 即 0，255.255.255.255 即 2^32-1。
//
//   - 任何 uint32 都是合法地址，不存在无效值；零值即 0.0.0.0
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [Parse4]、[MustParse4] 或 Addr4From* 构造函数创建。
type Addr4 struct {
	v uint32
}

// Addr4FromUint32 从 32 位规范整数构造 IPv4 地址。
func Addr4FromUint32(v uint32) Addr4 {
	return Addr4{v: v}
}

// Addr4From4 从大端序 4 字节数组构造 IPv4 地址。
func Addr4From4(b [4]byte) Addr4 {
	return Addr4{v: binary.BigEndian.Uint32(b[:])}
}

// Addr4FromBytes 从大端序字节切片构造 IPv4 地址。
// 切片长度必须为 4，否则返回 [ErrInvalidAddress]。
func Addr4FromBytes(b []byte) (Addr4, error) {
	if len(b) != 4 {
		return Addr4{}, fmt.Errorf("%w: need 4 bytes, got %d", ErrInvalidAddress, len(b))
	}
	return Addr4{v: binary.BigEndian.Uint32(b)}, nil
}

// Version 返回 [V4]。
func (a Addr4) Version() Version {
	return V4
}

// Uint32 返回地址的 32 位规范整数值。
func (a Addr4) Uint32() uint32 {
	return a.v
}

// As4 返回大端序 4 字节数组表示。
func (a Addr4) As4() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], a.v)
	return b
}

// Bytes 返回大端序字节切片表示（长度始终为 4）。
// 返回新分配的副本。
func (a Addr4) Bytes() []byte {
	b := a.As4()
	return b[:]
}

// Compare 按规范整数值比较两个地址。
// 返回值：-1 (a < b)，0 (a == b)，1 (a > b)。
func (a Addr4) Compare(b Addr4) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	default:
		return 0
	}
}

// Less 报告 a 的规范整数值是否小于 b。
func (a Addr4) Less(b Addr4) bool {
	return a.v < b.v
}

// Next 返回地址空间中的下一个地址。
// 255.255.255.255 的下一个地址环绕为 0.0.0.0。
func (a Addr4) Next() Addr4 {
	return Addr4{v: a.v + 1}
}

// Prev 返回地址空间中的前一个地址。
// 0.0.0.0 的前一个地址环绕为 255.255.255.255。
func (a Addr4) Prev() Addr4 {
	return Addr4{v: a.v - 1}
}

// Add 返回 a + n，模 2^32 环绕。
func (a Addr4) Add(n uint64) Addr4 {
	return Addr4{v: a.v + uint32(n)}
}

// Sub 返回 a - n，模 2^32 环绕。
func (a Addr4) Sub(n uint64) Addr4 {
	return Addr4{v: a.v - uint32(n)}
}

// And 返回两个地址按位与的结果，常用于掩码运算。
func (a Addr4) And(b Addr4) Addr4 {
	return Addr4{v: a.v & b.v}
}

// Or 返回两个地址按位或的结果。
func (a Addr4) Or(b Addr4) Addr4 {
	return Addr4{v: a.v | b.v}
}

// Not 返回地址按位取反的结果，常用于主机掩码推导。
func (a Addr4) Not() Addr4 {
	return Addr4{v: ^a.v}
}

func (Addr4) sealed() {}
