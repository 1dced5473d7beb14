package xaddr

// Classify 返回地址的分类信息汇总。
// nil 输入返回零值 Classification（Version 为 V0，String 输出 "invalid"）。
//
// 示例：
//
//	c := xaddr.Classify(xaddr.MustParse("192.168.1.1"))
//	fmt.Println(c.IsPrivate)  // true
//	fmt.Println(c)            // private
func Classify(a Addr) Classification {
	switch x := a.(type) {
	case Addr4:
		return Classification{
			Version:         V4,
			IsUnspecified:   x.IsUnspecified(),
			IsBroadcast:     x.IsBroadcast(),
			IsLoopback:      x.IsLoopback(),
			IsPrivate:       x.IsPrivate(),
			IsLinkLocal:     x.IsLinkLocal(),
			IsMulticast:     x.IsMulticast(),
			IsReserved:      x.IsReserved(),
			IsGlobalUnicast: x.IsGlobalUnicast(),
		}
	case Addr6:
		return Classification{
			Version:         V6,
			IsUnspecified:   x.IsUnspecified(),
			IsLoopback:      x.IsLoopback(),
			IsPrivate:       x.IsUniqueLocal(),
			IsLinkLocal:     x.IsLinkLocal(),
			IsMulticast:     x.IsMulticast(),
			IsMapped:        x.IsMapped(),
			IsReserved:      x.IsReserved(),
			IsGlobalUnicast: x.IsGlobalUnicast(),
		}
	default:
		return Classification{}
	}
}

// Classification 汇总一个地址的分类标志。
//
// 设计决策: 使用扁平的导出字段而非位标志或方法集，因为：
//   - 值类型结构体在 Go 中添加字段是向后兼容的
//   - 调用方可直接访问 c.IsPrivate，比 c.Has(FlagPrivate) 更符合 Go 惯用法
//   - 所有字段在 Classify() 一次调用中填充，避免多次方法调用开销
//
// 分类标志不互斥：私有地址同时满足 IsPrivate 和 IsReserved。
type Classification struct {
	// Version 是地址的 IP 版本，nil 输入为 V0。
	Version Version

	// IsUnspecified 表示是否为未指定地址（0.0.0.0 或 ::）。
	IsUnspecified bool

	// IsBroadcast 表示是否为有限广播地址，仅 IPv4。
	IsBroadcast bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsPrivate 表示是否为私有地址（IPv4: RFC 1918；IPv6: fc00::/7 ULA）。
	IsPrivate bool

	// IsLinkLocal 表示是否为链路本地地址。
	IsLinkLocal bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsMapped 表示是否为 IPv4-mapped 地址，仅 IPv6。
	IsMapped bool

	// IsReserved 表示是否落在保留网段内。
	IsReserved bool

	// IsGlobalUnicast 表示是否为全局单播地址。
	IsGlobalUnicast bool
}

// String 返回分类信息的标签表示。
// 优先级：越特殊的分类越靠前（如 loopback > private > reserved）。
func (c Classification) String() string {
	if c.Version == V0 {
		return "invalid"
	}

	// 按优先级排列，第一个匹配的即为结果
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsUnspecified, "unspecified"},
		{c.IsLoopback, "loopback"},
		{c.IsBroadcast, "broadcast"},
		{c.IsMapped, "ipv4-mapped"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocal, "link-local"},
		{c.IsMulticast, "multicast"},
		{c.IsReserved, "reserved"},
		{c.IsGlobalUnicast, "global-unicast"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	// 不落在任何已命名网段的地址（如 ::2、ff 段之外的 IPv6 空间）
	return "unassigned"
}
