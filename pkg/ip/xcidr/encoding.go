package xcidr

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Block 有可表示的无效零值，序列化采用零值语义：
// 无效块编码为空文本/空字符串/SQL NULL，空输入解码为零值。
// 与 xaddr 地址类型的严格语义（空输入报错）刻意不同。

// MarshalText 实现 [encoding.TextMarshaler]，输出 "地址/前缀" 规范文本。
// 无效块输出空字节切片。
func (b Block) MarshalText() ([]byte, error) {
	if b.addr == nil {
		return []byte{}, nil
	}
	return []byte(b.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受集与 [Parse] 一致；空输入设置为零值。
// 对 nil 接收者返回 [xaddr.ErrNilReceiver]。
func (b *Block) UnmarshalText(text []byte) error {
	if b == nil {
		return xaddr.ErrNilReceiver
	}
	if len(text) == 0 {
		*b = Block{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范文本。
// 无效块输出空字符串（""）。
func (b Block) MarshalJSON() ([]byte, error) {
	if b.addr == nil {
		return []byte(`""`), nil
	}
	s := b.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 空字符串和 null 设置为零值。
// 对 nil 接收者返回 [xaddr.ErrNilReceiver]。
func (b *Block) UnmarshalJSON(data []byte) error {
	if b == nil {
		return xaddr.ErrNilReceiver
	}
	if string(data) == "null" {
		*b = Block{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", xaddr.ErrInvalidAddress, err)
	}
	if s == "" {
		*b = Block{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，输出规范文本。
// 无效块返回 nil（SQL NULL）。
func (b Block) Value() (driver.Value, error) {
	if b.addr == nil {
		return nil, nil
	}
	return b.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 接受 string 与 []byte（都按文本解析，CIDR 没有二进制列形式）；
// NULL 和空文本设置为零值。对 nil 接收者返回 [xaddr.ErrNilReceiver]。
func (b *Block) Scan(src any) error {
	if b == nil {
		return xaddr.ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*b = Block{}
		return nil
	case string:
		if v == "" {
			*b = Block{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*b = Block{}
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", xaddr.ErrInvalidAddress, src)
	}
}
