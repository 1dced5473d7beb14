package xaddr

import "strconv"

const hexLower = "0123456789abcdef"

// String 返回点分十进制文本（"a.b.c.d"）。
// 输出即规范文本表示，可由 [Parse4] 原样解析回同一地址。
func (a Addr4) String() string {
	var buf [15]byte // len("255.255.255.255")
	return string(appendAddr4(buf[:0], a.v))
}

// appendAddr4 将 v 的点分十进制文本追加到 dst。
func appendAddr4(dst []byte, v uint32) []byte {
	for shift := 24; shift >= 0; shift -= 8 {
		dst = strconv.AppendUint(dst, uint64(v>>uint(shift)&0xff), 10)
		if shift > 0 {
			dst = append(dst, '.')
		}
	}
	return dst
}

// String 返回 RFC 5952 规范压缩文本：
//   - 小写十六进制，省略组内前导零
//   - 压缩最长的连续全零组段（长度至少 2），并列时取最左
//   - 单个全零组不压缩
//
// IPv4-mapped 地址始终渲染为 "::ffff:a.b.c.d" 形式。
// 输出可由 [Parse6] 原样解析回同一地址。
func (a Addr6) String() string {
	if a.IsMapped() {
		var buf [22]byte // len("::ffff:255.255.255.255")
		return string(appendAddr4(append(buf[:0], "::ffff:"...), uint32(a.v.Lo)))
	}

	zeroStart, zeroEnd := -1, -1
	for i := 0; i < 8; i++ {
		j := i
		for j < 8 && a.group(j) == 0 {
			j++
		}
		if l := j - i; l >= 2 && l > zeroEnd-zeroStart {
			zeroStart, zeroEnd = i, j
		}
	}

	var buf [39]byte // len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	out := buf[:0]
	for i := 0; i < 8; i++ {
		if i == zeroStart {
			out = append(out, ':', ':')
			i = zeroEnd
			if i >= 8 {
				break
			}
		} else if i > 0 {
			out = append(out, ':')
		}
		out = strconv.AppendUint(out, uint64(a.group(i)), 16)
	}
	return string(out)
}

// Expanded 返回不压缩的全长文本：8 组 4 位十六进制，补齐前导零
// （"2001:0db8:0000:0000:0000:0000:0000:0001"）。
// IPv4-mapped 地址与 [Addr6.String] 一致，渲染为 "::ffff:a.b.c.d"。
func (a Addr6) Expanded() string {
	if a.IsMapped() {
		var buf [22]byte
		return string(appendAddr4(append(buf[:0], "::ffff:"...), uint32(a.v.Lo)))
	}

	var buf [39]byte
	out := buf[:0]
	for i := 0; i < 8; i++ {
		if i > 0 {
			out = append(out, ':')
		}
		g := a.group(i)
		out = append(out, hexLower[g>>12&0xf], hexLower[g>>8&0xf], hexLower[g>>4&0xf], hexLower[g&0xf])
	}
	return string(out)
}
