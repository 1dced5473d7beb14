package xcidr

import (
	"iter"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Addrs 返回块内全部地址的迭代器，从网络地址到范围上界（含两端）。
// 无效块返回空迭代器。
//
// 迭代是惰性的，提前 break 不产生额外开销。大块（如 IPv6 /64）
// 的完整遍历在现实时间内不可能结束，调用方自行限制迭代数量。
//
// 示例：
//
//	for a := range xcidr.MustParse("10.0.0.0/30").Addrs() {
//	    fmt.Println(a) // 10.0.0.0, 10.0.0.1, 10.0.0.2, 10.0.0.3
//	}
func (b Block) Addrs() iter.Seq[xaddr.Addr] {
	switch b.addr.(type) {
	case xaddr.Addr4:
		network, broadcast := b.range4()
		return walk4(network, broadcast)
	case xaddr.Addr6:
		first, last := b.range6()
		return walk6(first, last)
	default:
		return func(func(xaddr.Addr) bool) {}
	}
}

// Hosts 返回块内可用地址的迭代器，从 [Block.First] 到 [Block.Last]
// （含两端）。IPv4 前缀 ≤ /30 时跳过网络地址和广播地址；其余情况
// 与 [Block.Addrs] 相同。无效块返回空迭代器。
func (b Block) Hosts() iter.Seq[xaddr.Addr] {
	switch b.addr.(type) {
	case xaddr.Addr4:
		from, to := b.range4()
		if b.bits < 31 {
			from, to = from.Next(), to.Prev()
		}
		return walk4(from, to)
	case xaddr.Addr6:
		first, last := b.range6()
		return walk6(first, last)
	default:
		return func(func(xaddr.Addr) bool) {}
	}
}

// walk4 返回从 from 到 to（含两端）递增的 IPv4 地址迭代器。
// from > to 时返回空迭代器。先产出再判终点，避免 Next 在
// 地址空间尽头环绕引起无限迭代。
func walk4(from, to xaddr.Addr4) iter.Seq[xaddr.Addr] {
	return func(yield func(xaddr.Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}
		cur := from
		for {
			if !yield(cur) {
				return
			}
			if cur == to {
				return
			}
			cur = cur.Next()
		}
	}
}

// walk6 返回从 from 到 to（含两端）递增的 IPv6 地址迭代器。
// 终止逻辑与 walk4 相同。
func walk6(from, to xaddr.Addr6) iter.Seq[xaddr.Addr] {
	return func(yield func(xaddr.Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}
		cur := from
		for {
			if !yield(cur) {
				return
			}
			if cur == to {
				return
			}
			cur = cur.Next()
		}
	}
}
