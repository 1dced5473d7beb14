package xaddr

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// 地址类型没有表示"缺失"的零值：任何整数都是合法地址。
// 因此反序列化空文本、JSON null 或 SQL NULL 一律返回 [ErrInvalidAddress]，
// 需要可缺失语义时使用指针类型（*Addr4 / *Addr6）。

// MarshalText 实现 [encoding.TextMarshaler]，输出与 [Addr4.String] 相同的规范文本。
func (a Addr4) MarshalText() ([]byte, error) {
	var buf [15]byte
	return appendAddr4(buf[:0], a.v), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受集与 [Parse4] 一致；空输入返回 [ErrInvalidAddress]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr4) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse4(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范文本。
// 地址文本仅含 [0-9a-f:.] 字符，无需 JSON 转义，
// 直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr4) MarshalJSON() ([]byte, error) {
	return jsonQuote(a.String()), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 和空字符串返回 [ErrInvalidAddress]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr4) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	s, err := jsonUnquote(data)
	if err != nil {
		return err
	}
	parsed, err := Parse4(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，输出规范文本。
func (a Addr4) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 接受 string 与 []byte；4 字节切片视为二进制形式（BINARY(4) 列），
// 其余长度按文本解析（IPv4 文本最短 7 字符，与二进制形式无歧义）。
// NULL 返回 [ErrInvalidAddress]，对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr4) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case string:
		parsed, err := Parse4(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		if len(v) == 4 {
			*a = Addr4From4([4]byte(v))
			return nil
		}
		parsed, err := Parse4(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case nil:
		return fmt.Errorf("%w: NULL is not an address", ErrInvalidAddress)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidAddress, src)
	}
}

// MarshalText 实现 [encoding.TextMarshaler]，输出与 [Addr6.String] 相同的规范文本。
func (a Addr6) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受集与 [Parse6] 一致；空输入返回 [ErrInvalidAddress]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr6) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse6(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范文本。
func (a Addr6) MarshalJSON() ([]byte, error) {
	return jsonQuote(a.String()), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 和空字符串返回 [ErrInvalidAddress]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr6) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	s, err := jsonUnquote(data)
	if err != nil {
		return err
	}
	parsed, err := Parse6(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，输出规范文本。
func (a Addr6) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 接受 string 与 []byte。[]byte 优先按文本解析：MySQL 等驱动对文本列
// 返回 []byte，而 16 字符的合法 IPv6 文本与 BINARY(16) 存在歧义。
// 文本解析失败且长度为 16 时回退为二进制形式。
// NULL 返回 [ErrInvalidAddress]，对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr6) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case string:
		parsed, err := Parse6(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := Parse6(string(v))
		if err == nil {
			*a = parsed
			return nil
		}
		if len(v) == 16 {
			*a = Addr6From16([16]byte(v))
			return nil
		}
		return err
	case nil:
		return fmt.Errorf("%w: NULL is not an address", ErrInvalidAddress)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidAddress, src)
	}
}

// jsonQuote 为地址文本加上 JSON 引号。
func jsonQuote(s string) []byte {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf
}

// jsonUnquote 解出 JSON 字符串值。
// null 不是地址，直接拒绝。
func jsonUnquote(data []byte) (string, error) {
	if string(data) == "null" {
		return "", fmt.Errorf("%w: null is not an address", ErrInvalidAddress)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return s, nil
}
