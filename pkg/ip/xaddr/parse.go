package xaddr

import (
	"fmt"
	"strings"
)

// Parse 解析 IPv4 或 IPv6 文本字面量，按内容自动选择版本：
// 含 ':' 的按 IPv6 解析，否则含 '.' 的按 IPv4 解析，
// 两者都不含的返回 [ErrInvalidAddress]。
//
// ':' 必须先于 '.' 判断：IPv4-mapped 字面量（"::ffff:192.168.1.1"）
// 同时含有两种分隔符，只有 IPv6 语法能解析它。
//
// 输入不做任何空白修剪，前后多余字符一律导致失败。
func Parse(s string) (Addr, error) {
	switch detectVersion(s) {
	case V6:
		return Parse6(s)
	case V4:
		return Parse4(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
}

// MustParse 与 [Parse] 相同，解析失败时 panic。
// 仅用于测试和硬编码字面量。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// detectVersion 根据字面量包含的分隔符判断版本。
// [Parse]、[Valid] 与 xcidr 的 CIDR 解析共用此探测，保证版本路由一致。
func detectVersion(s string) Version {
	if strings.IndexByte(s, ':') >= 0 {
		return V6
	}
	if strings.IndexByte(s, '.') >= 0 {
		return V4
	}
	return V0
}
