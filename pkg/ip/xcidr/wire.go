package xcidr

import (
	"fmt"

	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// WireRange 是地址范围的线格式（序列化）表示。
// JSON/BSON/YAML 编码为 {"start":"...","end":"..."}。
type WireRange struct {
	Start string `json:"start" bson:"start" yaml:"start"`
	End   string `json:"end" bson:"end" yaml:"end"`
}

// WireRange 返回块覆盖的完整地址范围的线格式表示，
// 起止为网络地址与范围上界的规范文本。无效块返回零值。
func (b Block) WireRange() WireRange {
	if b.addr == nil {
		return WireRange{}
	}
	return WireRange{
		Start: b.Network().String(),
		End:   b.Broadcast().String(),
	}
}

// IsZero 报告 w 是否为零值（Start 和 End 都为空字符串）。
func (w WireRange) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// String 返回 "start-end" 表示。
// 起止相同时只返回单个地址；零值返回空字符串；部分设置
// （仅 Start 或仅 End）返回有值的一侧，不产生悬空连字符。
func (w WireRange) String() string {
	if w.Start == w.End {
		return w.Start
	}
	if w.Start == "" {
		return w.End
	}
	if w.End == "" {
		return w.Start
	}
	return w.Start + "-" + w.End
}

// ToIPRange 将线格式转换为 [netipx.IPRange]。
//
// 起止文本经 [xaddr.Parse] 解析（zone 后缀剥离）。起止版本不一致
// （纯 IPv4 与 IPv4-mapped 视为不同族）或起点大于终点时返回
// [xaddr.ErrInvalidAddress]。
func (w WireRange) ToIPRange() (netipx.IPRange, error) {
	start, err := xaddr.Parse(w.Start)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: bad range start %q", xaddr.ErrInvalidAddress, w.Start)
	}
	end, err := xaddr.Parse(w.End)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: bad range end %q", xaddr.ErrInvalidAddress, w.End)
	}
	r := netipx.IPRangeFrom(start.NetIP(), end.NetIP())
	if !r.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("%w: bad range %s-%s", xaddr.ErrInvalidAddress, w.Start, w.End)
	}
	return r, nil
}
