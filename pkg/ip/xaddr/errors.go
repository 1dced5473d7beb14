package xaddr

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidAddress 表示文本、字节或整数输入无法构成合法 IP 地址。
	// 本包及 xcidr 包所有解析与构造失败均包装此错误。
	ErrInvalidAddress = errors.New("xaddr: invalid IP address")

	// ErrNilReceiver 表示在 nil 接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xaddr: nil receiver")
)
