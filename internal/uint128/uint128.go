package uint128

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 表示一个 128 位无符号整数，按高低两个 64 位字存储。
// 零值即数值 0。
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// From64 从 64 位无符号整数构造 Uint128。
func From64(lo uint64) Uint128 {
	return Uint128{Lo: lo}
}

// From16 从大端序 16 字节数组构造 Uint128。
func From16(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Max 返回最大值 2^128-1。
func Max() Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// As16 返回 u 的大端序 16 字节数组表示。
func (u Uint128) As16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// IsZero 报告 u 是否为 0。
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp 比较 u 与 v，u < v 返回 -1，相等返回 0，u > v 返回 1。
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// And 返回 u & v。
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Or 返回 u | v。
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Xor 返回 u ^ v。
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// Not 返回 u 的按位取反。
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Add 返回 u + v，模 2^128 环绕。
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub 返回 u - v，模 2^128 环绕。
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Add64 返回 u + n，模 2^128 环绕。
func (u Uint128) Add64(n uint64) Uint128 {
	lo, carry := bits.Add64(u.Lo, n, 0)
	return Uint128{Hi: u.Hi + carry, Lo: lo}
}

// Sub64 返回 u - n，模 2^128 环绕。
func (u Uint128) Sub64(n uint64) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, n, 0)
	return Uint128{Hi: u.Hi - borrow, Lo: lo}
}

// Lsh 返回 u << n，n >= 128 时结果为 0。
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh 返回 u >> n，n >= 128 时结果为 0。
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}
