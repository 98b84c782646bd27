package xeui

import (
	"encoding/json"
	"fmt"
)

// 本文件为全部种类实现 [encoding.TextMarshaler]/[encoding.TextUnmarshaler]
// 与 [json.Marshaler]/[json.Unmarshaler]。家族统一契约：
//
//   - Marshal 输出规范形式（大写冒号分隔）；无效值输出空串，
//     保证编解码往返一致（任何无效值解码后都回到零值）
//   - Unmarshal 使用该种类的严格解析，错误原样上抛；
//     空输入与 JSON null 重置为零值；nil 接收者返回 [ErrNilReceiver]

// textOctets 构造规范文本的字节切片，
// 绕过 String() 的 string→[]byte 二次分配。
func textOctets(b []byte) []byte {
	return appendSep(make([]byte, 0, len(b)*3-1), b, ':', true)
}

// quotedOctets 构造带引号的 JSON 字符串字节切片。
// 渲染结果仅含 [0-9A-F:] 字符，无需 JSON 转义，
// 直接拼接引号避免 [json.Marshal] 的反射开销。
func quotedOctets(b []byte) []byte {
	buf := make([]byte, 0, len(b)*3+1)
	buf = append(buf, '"')
	buf = appendSep(buf, b, ':', true)
	buf = append(buf, '"')
	return buf
}

// unmarshalText 是全部种类共享的文本反序列化核心。
func unmarshalText[T any](dst *T, text []byte, parse func(string) (T, error)) error {
	if dst == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		var zero T
		*dst = zero
		return nil
	}
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// unmarshalJSON 是全部种类共享的 JSON 反序列化核心。
// 直接调用时 null 按精确字节匹配（不去除空白），
// 与 Go 标准库 [time.Time.UnmarshalJSON] 的行为一致。
func unmarshalJSON[T any](dst *T, data []byte, parse func(string) (T, error)) error {
	if dst == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		var zero T
		*dst = zero
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if s == "" {
		var zero T
		*dst = zero
		return nil
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (c CompanyID) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return []byte{}, nil
	}
	return textOctets(c.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (c *CompanyID) UnmarshalText(text []byte) error {
	return unmarshalText(c, text, ParseCompanyID)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (c CompanyID) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(c.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (c *CompanyID) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(c, data, ParseCompanyID)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (o OUI24) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return []byte{}, nil
	}
	return textOctets(o.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (o *OUI24) UnmarshalText(text []byte) error {
	return unmarshalText(o, text, ParseOUI24)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (o OUI24) MarshalJSON() ([]byte, error) {
	if !o.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(o.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (o *OUI24) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data, ParseOUI24)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (o OUI36) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return []byte{}, nil
	}
	return textOctets(o.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (o *OUI36) UnmarshalText(text []byte) error {
	return unmarshalText(o, text, ParseOUI36)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (o OUI36) MarshalJSON() ([]byte, error) {
	if !o.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(o.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (o *OUI36) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data, ParseOUI36)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (m MAL) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return []byte{}, nil
	}
	return textOctets(m.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (m *MAL) UnmarshalText(text []byte) error {
	return unmarshalText(m, text, ParseMAL)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (m MAL) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(m.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (m *MAL) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(m, data, ParseMAL)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (m MAM) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return []byte{}, nil
	}
	return textOctets(m.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (m *MAM) UnmarshalText(text []byte) error {
	return unmarshalText(m, text, ParseMAM)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (m MAM) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(m.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (m *MAM) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(m, data, ParseMAM)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (m MAS) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return []byte{}, nil
	}
	return textOctets(m.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (m *MAS) UnmarshalText(text []byte) error {
	return unmarshalText(m, text, ParseMAS)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (m MAS) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(m.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (m *MAS) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(m, data, ParseMAS)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (e EUI48) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return []byte{}, nil
	}
	return textOctets(e.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (e *EUI48) UnmarshalText(text []byte) error {
	return unmarshalText(e, text, ParseEUI48)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (e EUI48) MarshalJSON() ([]byte, error) {
	if !e.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(e.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (e *EUI48) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(e, data, ParseEUI48)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (e EUI60) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return []byte{}, nil
	}
	return textOctets(e.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (e *EUI60) UnmarshalText(text []byte) error {
	return unmarshalText(e, text, ParseEUI60)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (e EUI60) MarshalJSON() ([]byte, error) {
	if !e.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(e.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (e *EUI60) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(e, data, ParseEUI60)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (e EUI64) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return []byte{}, nil
	}
	return textOctets(e.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (e *EUI64) UnmarshalText(text []byte) error {
	return unmarshalText(e, text, ParseEUI64)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (e EUI64) MarshalJSON() ([]byte, error) {
	if !e.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(e.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (e *EUI64) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(e, data, ParseEUI64)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (e ModEUI64) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return []byte{}, nil
	}
	return textOctets(e.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (e *ModEUI64) UnmarshalText(text []byte) error {
	return unmarshalText(e, text, ParseModEUI64)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (e ModEUI64) MarshalJSON() ([]byte, error) {
	if !e.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(e.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (e *ModEUI64) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(e, data, ParseModEUI64)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (c CDI32) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return []byte{}, nil
	}
	return textOctets(c.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (c *CDI32) UnmarshalText(text []byte) error {
	return unmarshalText(c, text, ParseCDI32)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (c CDI32) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(c.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (c *CDI32) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(c, data, ParseCDI32)
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值输出空字节切片。
func (c CDI40) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return []byte{}, nil
	}
	return textOctets(c.octets[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (c *CDI40) UnmarshalText(text []byte) error {
	return unmarshalText(c, text, ParseCDI40)
}

// MarshalJSON 实现 [json.Marshaler]。无效值输出 ""。
func (c CDI40) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return []byte(`""`), nil
	}
	return quotedOctets(c.octets[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
func (c *CDI40) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(c, data, ParseCDI40)
}
