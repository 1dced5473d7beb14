package xaddr

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/omeyang/ipkit/internal/uint128"
)

// Parse6 解析 IPv6 文本字面量。
//
// 支持的语法：
//   - 冒号分隔的 1-4 位十六进制组，大小写均可（"2001:db8:0:0:0:8a2e:370:7334"）
//   - 最多一处 "::" 压缩，且必须至少省略一个全零组
//   - 点分 IPv4 尾部，占据最低 32 位（"::ffff:192.168.1.1"、"64:ff9b::1.2.3.4"）
//   - "%zone" 后缀：第一个 '%' 起全部剥离丢弃，不做校验，地址值不携带 zone
//
// CIDR 文本（含 '/'）不是地址。解析失败返回 [ErrInvalidAddress] 包装错误。
func Parse6(s string) (Addr6, error) {
	v, err := parse6(s)
	if err != nil {
		return Addr6{}, err
	}
	return Addr6{v: v}, nil
}

// MustParse6 与 [Parse6] 相同，解析失败时 panic。
// 仅用于测试和硬编码字面量。
func MustParse6(s string) Addr6 {
	a, err := Parse6(s)
	if err != nil {
		panic(err)
	}
	return a
}

// parse6 是 IPv6 文本到规范整数的核心扫描器。
// [Parse6] 与 [Valid6] 共用同一扫描器，接受集由此保持一致。
func parse6(s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Uint128{}, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}
	full := s

	// zone 后缀从第一个 '%' 起全部丢弃
	if i := strings.IndexByte(s, '%'); i >= 0 {
		s = s[:i]
	}

	var b [16]byte
	ellipsis := -1 // "::" 对应的写入偏移

	if len(s) >= 2 && s[0] == ':' && s[1] == ':' {
		ellipsis = 0
		s = s[2:]
		if len(s) == 0 {
			return uint128.Uint128{}, nil
		}
	}

	i := 0
	for i < 16 {
		// 扫描一个 1-4 位十六进制组
		off := 0
		acc := uint32(0)
		for off < len(s) {
			d := hexDigit(s[off])
			if d < 0 {
				break
			}
			if off == 4 {
				return uint128.Uint128{}, fmt.Errorf("%w: %q has a hex group longer than 4 digits", ErrInvalidAddress, full)
			}
			acc = acc<<4 | uint32(d)
			off++
		}
		if off == 0 {
			return uint128.Uint128{}, fmt.Errorf("%w: %q is missing a hex group", ErrInvalidAddress, full)
		}

		// 组后紧跟 '.'：当前组属于点分 IPv4 尾部，占据最后 4 字节。
		// 无 "::" 时尾部必须从第 12 字节开始（即前面恰好 6 组）。
		if off < len(s) && s[off] == '.' {
			if ellipsis < 0 && i != 12 {
				return uint128.Uint128{}, fmt.Errorf("%w: %q has a misplaced dotted tail", ErrInvalidAddress, full)
			}
			if i+4 > 16 {
				return uint128.Uint128{}, fmt.Errorf("%w: %q has no room for a dotted tail", ErrInvalidAddress, full)
			}
			v4, err := parse4(s)
			if err != nil {
				return uint128.Uint128{}, fmt.Errorf("%w: %q has an invalid dotted tail", ErrInvalidAddress, full)
			}
			binary.BigEndian.PutUint32(b[i:i+4], v4)
			i += 4
			s = ""
			break
		}

		b[i] = byte(acc >> 8)
		b[i+1] = byte(acc)
		i += 2

		s = s[off:]
		if len(s) == 0 {
			break
		}
		if s[0] != ':' {
			return uint128.Uint128{}, fmt.Errorf("%w: %q has an unexpected character %q", ErrInvalidAddress, full, string(s[0]))
		}
		if len(s) == 1 {
			return uint128.Uint128{}, fmt.Errorf("%w: %q ends with a lone colon", ErrInvalidAddress, full)
		}
		s = s[1:]

		if s[0] == ':' {
			if ellipsis >= 0 {
				return uint128.Uint128{}, fmt.Errorf("%w: %q has more than one \"::\"", ErrInvalidAddress, full)
			}
			ellipsis = i
			s = s[1:]
			if len(s) == 0 {
				break
			}
		}
	}

	if len(s) != 0 {
		return uint128.Uint128{}, fmt.Errorf("%w: %q has trailing garbage", ErrInvalidAddress, full)
	}
	if i < 16 {
		if ellipsis < 0 {
			return uint128.Uint128{}, fmt.Errorf("%w: %q has too few groups", ErrInvalidAddress, full)
		}
		// 将 "::" 之后的组右移到尾部，空出的中间补零
		n := 16 - i
		for j := i - 1; j >= ellipsis; j-- {
			b[j+n] = b[j]
		}
		clear(b[ellipsis : ellipsis+n])
	} else if ellipsis >= 0 {
		// 8 组齐全时 "::" 没有省略任何组，RFC 4291 不允许
		return uint128.Uint128{}, fmt.Errorf("%w: %q has \"::\" that expands to nothing", ErrInvalidAddress, full)
	}

	return uint128.From16(b), nil
}

// hexDigit 返回 c 的十六进制数值，非十六进制字符返回 -1。
func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
