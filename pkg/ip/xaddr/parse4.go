package xaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse4 解析点分十进制 IPv4 字面量（"a.b.c.d"）。
//
// 语法要求：
//   - 恰好 4 个八位段，以 '.' 分隔
//   - 每段为十进制数字，数值 0-255，允许前导零（"010" 即 10）
//   - 不接受正负号、空白和任何其他字符
//
// 解析失败返回 [ErrInvalidAddress] 包装错误。
func Parse4(s string) (Addr4, error) {
	v, err := parse4(s)
	if err != nil {
		return Addr4{}, err
	}
	return Addr4{v: v}, nil
}

// MustParse4 与 [Parse4] 相同，解析失败时 panic。
// 仅用于测试和硬编码字面量。
func MustParse4(s string) Addr4 {
	a, err := Parse4(s)
	if err != nil {
		panic(err)
	}
	return a
}

// parse4 是 IPv4 文本到规范整数的核心扫描器。
// [Parse4] 与 [Valid4] 共用同一扫描器，接受集由此保持一致。
func parse4(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}

	var v uint32
	rest := s
	for i := 0; i < 4; i++ {
		part := rest
		if i < 3 {
			dot := strings.IndexByte(rest, '.')
			if dot < 0 {
				return 0, fmt.Errorf("%w: %q has fewer than 4 octets", ErrInvalidAddress, s)
			}
			part, rest = rest[:dot], rest[dot+1:]
		}
		// 多于 4 段时最后一段会携带残余的 '.'，在此处解析失败
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q has invalid octet %q", ErrInvalidAddress, s, part)
		}
		v = v<<8 | uint32(n)
	}
	return v, nil
}
