package xcidr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Parse 解析 CIDR 文本为块值。
//
// 接受 "地址/前缀位数"（如 "192.168.1.0/24"、"2001:db8::/32"）
// 和裸地址（默认最大前缀：IPv4 /32，IPv6 /128）。地址部分经
// [xaddr.Parse] 自动识别版本；前缀部分必须为非空纯十进制数字且
// 不超过版本位宽。
//
// 所有失败都返回包装 [xaddr.ErrInvalidAddress] 的错误。
func Parse(s string) (Block, error) {
	addrPart, bitsPart, found := strings.Cut(s, "/")
	if !found {
		a, err := xaddr.Parse(s)
		if err != nil {
			return Block{}, err
		}
		return Block{addr: a, bits: int16(a.Version().Bits())}, nil
	}

	if addrPart == "" || bitsPart == "" {
		return Block{}, fmt.Errorf("%w: %q needs both an address and a prefix length", xaddr.ErrInvalidAddress, s)
	}

	a, err := xaddr.Parse(addrPart)
	if err != nil {
		return Block{}, err
	}

	// ParseUint 拒绝符号、空白与十六进制；bitSize 8 先挡住超长数字
	n, err := strconv.ParseUint(bitsPart, 10, 8)
	if err != nil || int(n) > a.Version().Bits() {
		return Block{}, fmt.Errorf("%w: bad prefix length %q in %q", xaddr.ErrInvalidAddress, bitsPart, s)
	}

	return Block{addr: a, bits: int16(n)}, nil
}

// MustParse 与 [Parse] 相同，解析失败时 panic。
// 用于初始化已知合法的常量场景。
func MustParse(s string) Block {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}
