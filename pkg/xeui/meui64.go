package xeui

import (
	"bytes"
	"net"
)

// ModEUI64 表示 Modified EUI-64（RFC 4291 接口标识符形式）。
//
// 位布局与 [EUI64] 完全一致，但注册位的语义约定取反：SET 表示
// 全局唯一，CLEAR 表示本地管理。取反约定只作用于文本解析的校验
// 方向（[ParseModEUI64] 要求注册位为 SET）和语义解读；
// [ModEUI64.IsGlobal] 等位属性方法仍按位值本身报告，不做语义翻转。
//
// 组合构造（[ModEUI64FromOUI24] 等）与 EUI-64 同构，按地址块位布局
// 原样拼装、不翻转任何位。由既有 EUI-48 派生取反形式用
// [EUI48.ModifiedEUI64]。
type ModEUI64 struct {
	octets [8]byte
}

// ModEUI64From8 从 8 字节数组创建 Modified EUI-64，不做任何位处理。
func ModEUI64From8(b [8]byte) ModEUI64 {
	return ModEUI64{octets: b}
}

// ModEUI64FromString 解析 Modified EUI-64 文本。
// 任何失败（过长、字节数不符、注册位非 SET）都静默返回全零值，
// 由 [ModEUI64.IsValid] 检测。
func ModEUI64FromString(s string) ModEUI64 {
	e, err := ParseModEUI64(s)
	if err != nil {
		return ModEUI64{}
	}
	return e
}

// ParseModEUI64 严格解析 Modified EUI-64 文本。
// 输入的注册位必须为 SET（取反约定下的全局唯一），
// 否则返回 [ErrRegistrationBit]。
func ParseModEUI64(s string) (ModEUI64, error) {
	var e ModEUI64
	if err := scanExact(s, e.octets[:]); err != nil {
		return ModEUI64{}, err
	}
	if err := checkRegistration(e.octets[0], true); err != nil {
		return ModEUI64{}, err
	}
	return e, nil
}

// ModEUI64FromOUI24 由 OUI-24 前缀加 5 字节扩展构造 Modified EUI-64。
func ModEUI64FromOUI24(o OUI24, ext [5]byte) ModEUI64 {
	p := o.Bytes3()
	var e ModEUI64
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// ModEUI64FromOUI36 由 OUI-36 前缀加 28 位扩展（半字节 + 3 字节）构造
// Modified EUI-64。nibble 只取低 4 位，与前缀的尾部半字节合并。
func ModEUI64FromOUI36(o OUI36, nibble byte, tail [3]byte) ModEUI64 {
	p := o.Bytes5()
	var e ModEUI64
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	copy(e.octets[5:], tail[:])
	return e
}

// ModEUI64FromMAL 由 MA-L 前缀加 5 字节扩展构造 Modified EUI-64。
func ModEUI64FromMAL(m MAL, ext [5]byte) ModEUI64 {
	p := m.Bytes3()
	var e ModEUI64
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// ModEUI64FromMAM 由 MA-M 前缀加 36 位扩展（半字节 + 4 字节）构造
// Modified EUI-64。nibble 只取低 4 位，与前缀的尾部半字节合并。
func ModEUI64FromMAM(m MAM, nibble byte, tail [4]byte) ModEUI64 {
	p := m.Bytes4()
	var e ModEUI64
	copy(e.octets[:3], p[:3])
	e.octets[3] = p[3]&0xF0 | nibble&0x0F
	copy(e.octets[4:], tail[:])
	return e
}

// ModEUI64FromMAS 由 MA-S 前缀加 28 位扩展（半字节 + 3 字节）构造
// Modified EUI-64。nibble 只取低 4 位，与前缀的尾部半字节合并。
func ModEUI64FromMAS(m MAS, nibble byte, tail [3]byte) ModEUI64 {
	p := m.Bytes5()
	var e ModEUI64
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	copy(e.octets[5:], tail[:])
	return e
}

// Kind 返回 [KindModEUI64]。
func (e ModEUI64) Kind() Kind {
	return KindModEUI64
}

// Bytes8 返回存储字节（长度恒为 8）。返回副本，修改不影响原值。
func (e ModEUI64) Bytes8() [8]byte {
	return e.octets
}

// AsSlice 返回存储字节的副本。
func (e ModEUI64) AsSlice() []byte {
	return e.octets[:]
}

// IsValid 报告 e 是否有效（非单一字节重复填充）。
func (e ModEUI64) IsValid() bool {
	return validOctets(e.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (e ModEUI64) IsUnicast() bool {
	return e.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (e ModEUI64) IsMulticast() bool {
	return e.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR。
// 注意取反约定：Modified EUI-64 中位值 SET 才表示全局唯一，
// 本方法只报告位值本身。
func (e ModEUI64) IsGlobal() bool {
	return e.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET。见 [ModEUI64.IsGlobal] 的取反约定说明。
func (e ModEUI64) IsLocal() bool {
	return e.octets[0]&bitLocal != 0
}

// Compare 比较两个 Modified EUI-64 的字节顺序。
// 返回值：-1 (e < other), 0 (e == other), 1 (e > other)。
func (e ModEUI64) Compare(other ModEUI64) int {
	return bytes.Compare(e.octets[:], other.octets[:])
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（8 字节）。
// 返回副本，修改不影响原值。无效值返回 nil。
func (e ModEUI64) HardwareAddr() net.HardwareAddr {
	if !e.IsValid() {
		return nil
	}
	hw := make(net.HardwareAddr, 8)
	copy(hw, e.octets[:])
	return hw
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (e ModEUI64) String() string {
	return formatOctets(e.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (e ModEUI64) FormatString(f Format) string {
	return formatOctets(e.octets[:], f)
}
