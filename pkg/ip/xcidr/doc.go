// Package xcidr 提供不可变的 CIDR 块值类型及其派生量计算。
//
// 核心功能：
//   - CIDR 解析与构造（Parse/MustParse/New/FromPrefix）：自动识别
//     IPv4/IPv6，裸地址默认最大前缀（/32、/128）
//   - 派生量（derive.go）：Netmask、Network、Broadcast、First、Last、
//     Masked、Size、Size64，全部即算即用，不做缓存
//   - 成员判定（contains.go）：Contains 接受地址值或文本字面量，
//     版本不匹配与无法解析的操作数一律返回 false
//   - 范围迭代（iter.go）：Addrs、Hosts 惰性迭代器（iter.Seq）
//   - 标准库互操作（interop.go）：netip.Prefix、netipx.IPRange 互转
//   - 序列化（encoding.go、wire.go）：JSON/Text/SQL 编解码与
//     WireRange 线格式
//
// 快速示例：
//
//	b, err := xcidr.Parse("192.168.1.0/24")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(b.Network())   // 192.168.1.0
//	fmt.Println(b.Broadcast()) // 192.168.1.255
//	fmt.Println(b.First())     // 192.168.1.1
//	fmt.Println(b.Last())      // 192.168.1.254
//	fmt.Println(b.Contains("192.168.1.100")) // true
//
//	for a := range b.Hosts() {
//	    fmt.Println(a) // 192.168.1.1 .. 192.168.1.254
//	}
//
// 设计决策：
//
//   - 零值 Block{} 是无效块：IsValid 返回 false，派生量返回零值
//     （nil 地址、nil Size），String 输出 "invalid Block"。与 xaddr
//     的地址类型不同（任何整数都是合法地址），"不存在的块"是真实
//     状态，需要可表示的零值。序列化循此语义：无效块编码为空文本
//     /空字符串/SQL NULL，反向亦然。
//   - 派生量永远即算即用：Block 只存地址与前缀位数两份数据，
//     Netmask/Network/Broadcast 等每次调用重新计算，值类型保持
//     两个字（无缓存字段，无失效问题）。
//   - IPv4 与 IPv6 的 First/Last 语义不同：IPv4 在前缀 ≤ /30 时
//     跳过网络地址与广播地址（/31、/32 是点对点与单点，无此两角色）；
//     IPv6 没有广播概念，First/Last 即范围两端。
//   - 版本不匹配不是错误：10.0.0.0/8 不包含 ::ffff:10.0.0.1
//     （IPv4-mapped 是 IPv6 值），Contains 返回 false 而非报错。
//   - 错误哨兵与 xaddr 共用：所有解析失败满足
//     errors.Is(err, xaddr.ErrInvalidAddress)，不引入第二个错误种类。
//   - zone 后缀沿用 xaddr 语义：解析时剥离（"fe80::1%eth0/64" 等价
//     于 "fe80::1/64"）。
//
// 子网切分、聚合与多块集合运算不在本包范围内，需要时组合
// go4.org/netipx 的 IPSet（参见 Block.IPRange）。
package xcidr
