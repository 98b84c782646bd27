package xeui

import "bytes"

// EUI60 表示 60 位扩展唯一标识符。
//
// 60 个有效位占 7.5 字节，按 8 字节存储，尾部半字节（第 8 字节低 4 位）
// 恒为 0，由每个构造入口强制。EUI-60 是历史遗留宽度，现行注册体系
// 以 EUI-64 为主；唯一的组合构造来源是 OUI-24（[EUI60FromOUI24]）。
type EUI60 struct {
	octets [8]byte
}

// EUI60From8 从 8 字节数组创建 EUI-60，尾部半字节强制 0。
func EUI60From8(b [8]byte) EUI60 {
	b[7] &= 0xF0
	return EUI60{octets: b}
}

// EUI60FromString 解析 EUI-60 文本。
// 失败时静默返回全零值，由 [EUI60.IsValid] 检测。
// 注册位不参与校验也不被强制，尾部半字节强制 0。
func EUI60FromString(s string) EUI60 {
	e, err := ParseEUI60(s)
	if err != nil {
		return EUI60{}
	}
	return e
}

// ParseEUI60 严格解析 EUI-60 文本，尾部半字节强制 0。
func ParseEUI60(s string) (EUI60, error) {
	var e EUI60
	if err := scanExact(s, e.octets[:]); err != nil {
		return EUI60{}, err
	}
	e.octets[7] &= 0xF0
	return e, nil
}

// EUI60FromOUI24 由 OUI-24 前缀加 5 字节扩展构造 EUI-60。
// 扩展末字节的低 4 位强制为 0（60 位上限）。
// OUI-24 是 EUI-60 唯一允许的地址块来源。
func EUI60FromOUI24(o OUI24, ext [5]byte) EUI60 {
	p := o.Bytes3()
	var e EUI60
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	e.octets[7] &= 0xF0
	return e
}

// Kind 返回 [KindEUI60]。
func (e EUI60) Kind() Kind {
	return KindEUI60
}

// Bytes8 返回存储字节（长度恒为 8）。返回副本，修改不影响原值。
func (e EUI60) Bytes8() [8]byte {
	return e.octets
}

// AsSlice 返回存储字节的副本。
func (e EUI60) AsSlice() []byte {
	return e.octets[:]
}

// IsValid 报告 e 是否有效（非单一字节重复填充）。
func (e EUI60) IsValid() bool {
	return validOctets(e.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (e EUI60) IsUnicast() bool {
	return e.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (e EUI60) IsMulticast() bool {
	return e.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。
func (e EUI60) IsGlobal() bool {
	return e.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (e EUI60) IsLocal() bool {
	return e.octets[0]&bitLocal != 0
}

// Compare 比较两个 EUI-60 的字节顺序。
// 返回值：-1 (e < other), 0 (e == other), 1 (e > other)。
func (e EUI60) Compare(other EUI60) int {
	return bytes.Compare(e.octets[:], other.octets[:])
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (e EUI60) String() string {
	return formatOctets(e.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (e EUI60) FormatString(f Format) string {
	return formatOctets(e.octets[:], f)
}
