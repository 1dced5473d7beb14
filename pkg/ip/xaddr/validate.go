package xaddr

import "strings"

// Valid 报告 s 是否为合法的 IPv4 或 IPv6 文本字面量。
// 接受集与 [Parse] 完全一致：版本按分隔符自动探测。
func Valid(s string) bool {
	switch detectVersion(s) {
	case V4:
		return Valid4(s)
	case V6:
		return Valid6(s)
	default:
		return false
	}
}

// Valid4 报告 s 是否为合法的 IPv4 文本字面量。
// 接受集与 [Parse4] 完全一致：两者运行同一扫描器。
func Valid4(s string) bool {
	_, err := parse4(s)
	return err == nil
}

// Valid6 报告 s 是否为合法的 IPv6 文本字面量。
// 含 '/' 的 CIDR 文本不是地址，返回 false。
// 其余接受集与 [Parse6] 完全一致：两者运行同一扫描器。
func Valid6(s string) bool {
	if strings.IndexByte(s, '/') >= 0 {
		return false
	}
	_, err := parse6(s)
	return err == nil
}
