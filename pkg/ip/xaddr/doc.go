// Package xaddr 提供不可变的 IP 地址值类型。
//
// xaddr 把 IP 地址建模为定宽无符号整数的薄包装：[Addr4] 内部是一个
// uint32，[Addr6] 内部是一个 128 位整数。地址即整数——文本解析、
// 格式化、分类、位运算、步进和比较全部定义在这一个规范整数之上。
//
// # 核心功能
//
//   - parse.go / parse4.go / parse6.go: 文本到规范整数的解析（[Parse] 自动探测版本）
//   - format.go: 规范文本输出（IPv6 按 RFC 5952 压缩，[Addr6.Expanded] 输出全长形式）
//   - classify4.go / classify6.go / classify.go: 网段分类谓词与 [Classification] 汇总
//   - arpa.go: 反向 DNS 域名（in-addr.arpa / ip6.arpa）
//   - convert.go: big.Int、[netip.Addr] 互转与 IPv4/IPv6 映射转换
//   - validate.go: 纯判定接口 [Valid] / [Valid4] / [Valid6]
//   - encoding.go: Text/JSON/SQL 序列化
//
// # 快速示例
//
// 解析与格式化：
//
//	addr, _ := xaddr.Parse("2001:0DB8:0:0:0:8A2E:0370:7334")
//	fmt.Println(addr)              // 2001:db8::8a2e:370:7334
//	fmt.Println(xaddr.MustParse4("192.168.1.1").BigInt()) // 3232235777
//
// 整数视角的地址运算：
//
//	a := xaddr.MustParse4("10.0.0.255")
//	fmt.Println(a.Next())          // 10.0.1.0
//	fmt.Println(a.Compare(a.Next())) // -1
//
// 跨版本映射：
//
//	v4 := xaddr.MustParse4("192.168.1.1")
//	m := v4.MapTo6()               // ::ffff:192.168.1.1
//	back, ok := m.To4()            // 192.168.1.1, true
//
// JSON 序列化：
//
//	type Host struct {
//	    IP xaddr.Addr4 `json:"ip"`
//	}
//	json.Marshal(Host{IP: v4})     // {"ip":"192.168.1.1"}
//
// # 设计决策
//
//   - [Addr4] 与 [Addr6] 是独立的具体类型，不做 netip 式的统一内存布局；
//     版本多态通过小接口 [Addr] 表达，需要版本特定操作时类型断言取回
//   - 任何定宽整数都是合法地址，类型不存在无效值；"解析失败"只存在于
//     文本边界上，统一返回 [ErrInvalidAddress]
//   - 步进与加减按地址空间宽度环绕（最大地址 Next 回到 0），
//     调用方需要防止环绕时自行比较
//   - [Valid4] / [Valid6] 与 [Parse4] / [Parse6] 运行同一扫描器，
//     判定与解析的接受集不可能漂移（[Valid6] 额外预检拒绝含 '/' 的文本）
//   - IPv4-mapped IPv6 地址保持 128 位表示：版本是表示的属性而非数值的属性，
//     ::ffff:192.168.1.1 与 192.168.1.1 是两个不同的地址值（前者 Version 为 V6）
//
// # 版本自动探测
//
// [Parse] 与 [Valid] 先看 ':' 再看 '.'：IPv4-mapped 字面量
// （"::ffff:192.168.1.1"）同时含有两种分隔符，只有 IPv6 语法能解析它。
// 两者都不含的输入直接拒绝。
//
// # IPv6 文本细节
//
//   - "::" 最多出现一处，且必须至少省略一个全零组：
//     "1:2:3:4:5:6:7::8" 已有 8 组，被拒绝
//   - zone 后缀（"fe80::1%eth0"）从第一个 '%' 起全部剥离丢弃，不做校验；
//     地址值不携带 zone，格式化输出也不含 zone
//   - 输出遵循 RFC 5952：小写、去前导零、压缩最长全零组段（并列取最左，
//     单个零组不压缩）；IPv4-mapped 地址始终渲染为 "::ffff:a.b.c.d"
//
// # 序列化语义
//
// 地址类型没有表示"缺失"的零值（零值即 0.0.0.0 / ::，是合法地址），
// 因此 UnmarshalText("")、UnmarshalJSON(null) 和 Scan(nil) 一律返回
// [ErrInvalidAddress]。需要可缺失字段时使用指针类型。
//
// # 错误处理
//
// 所有解析与构造失败都包装 [ErrInvalidAddress]，支持 errors.Is 判断：
//
//	_, err := xaddr.Parse("300.1.2.3")
//	if errors.Is(err, xaddr.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
//
// [ErrNilReceiver] 仅用于指针反序列化方法的 nil 接收者误用，
// 不属于地址错误分类。
//
// # Go 版本要求
//
// xaddr 要求 Go 1.25+（与项目 go.mod 对齐）。
package xaddr
