package xeui

import (
	"bytes"
	"net"
)

// EUI64 表示 64 位扩展唯一标识符。
//
// EUI-64 用于 IEEE 1394、IPv6 接口标识等场景。与 EUI-48 不同，
// 任何构造入口都不做位处理：原始字节、文本、地址块组合全部原样保留
// 输入的控制位。需要注册位校验语义的场合用 [ModEUI64]。
//
// EUI64 是不可变值类型，零值无效，可比较、可作 map key。
type EUI64 struct {
	octets [8]byte
}

// EUI64From8 从 8 字节数组创建 EUI-64，不做任何位处理。
func EUI64From8(b [8]byte) EUI64 {
	return EUI64{octets: b}
}

// EUI64FromString 解析 EUI-64 文本。
// 失败（过长或字节数不符）时静默返回全零值，由 [EUI64.IsValid] 检测。
// 控制位原样保留，不校验也不强制。
func EUI64FromString(s string) EUI64 {
	e, err := ParseEUI64(s)
	if err != nil {
		return EUI64{}
	}
	return e
}

// ParseEUI64 严格解析 EUI-64 文本，控制位原样保留。
func ParseEUI64(s string) (EUI64, error) {
	var e EUI64
	if err := scanExact(s, e.octets[:]); err != nil {
		return EUI64{}, err
	}
	return e, nil
}

// EUI64FromOUI24 由 OUI-24 前缀加 5 字节扩展构造 EUI-64。
func EUI64FromOUI24(o OUI24, ext [5]byte) EUI64 {
	p := o.Bytes3()
	var e EUI64
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// EUI64FromOUI36 由 OUI-36 前缀加 28 位扩展（半字节 + 3 字节）构造 EUI-64。
// nibble 只取低 4 位，与前缀的尾部半字节合并：
// (前缀末字节 & 0xF0) | (nibble & 0x0F)。
func EUI64FromOUI36(o OUI36, nibble byte, tail [3]byte) EUI64 {
	p := o.Bytes5()
	var e EUI64
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	copy(e.octets[5:], tail[:])
	return e
}

// EUI64FromMAL 由 MA-L 前缀加 5 字节扩展构造 EUI-64。
func EUI64FromMAL(m MAL, ext [5]byte) EUI64 {
	p := m.Bytes3()
	var e EUI64
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// EUI64FromMAM 由 MA-M 前缀加 36 位扩展（半字节 + 4 字节）构造 EUI-64。
// nibble 只取低 4 位，与前缀的尾部半字节合并。
func EUI64FromMAM(m MAM, nibble byte, tail [4]byte) EUI64 {
	p := m.Bytes4()
	var e EUI64
	copy(e.octets[:3], p[:3])
	e.octets[3] = p[3]&0xF0 | nibble&0x0F
	copy(e.octets[4:], tail[:])
	return e
}

// EUI64FromMAS 由 MA-S 前缀加 28 位扩展（半字节 + 3 字节）构造 EUI-64。
// nibble 只取低 4 位，与前缀的尾部半字节合并。
func EUI64FromMAS(m MAS, nibble byte, tail [3]byte) EUI64 {
	p := m.Bytes5()
	var e EUI64
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	copy(e.octets[5:], tail[:])
	return e
}

// Kind 返回 [KindEUI64]。
func (e EUI64) Kind() Kind {
	return KindEUI64
}

// Bytes8 返回存储字节（长度恒为 8）。返回副本，修改不影响原值。
func (e EUI64) Bytes8() [8]byte {
	return e.octets
}

// AsSlice 返回存储字节的副本。
func (e EUI64) AsSlice() []byte {
	return e.octets[:]
}

// IsValid 报告 e 是否有效（非单一字节重复填充）。
func (e EUI64) IsValid() bool {
	return validOctets(e.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。纯位读取，与有效性无关。
func (e EUI64) IsUnicast() bool {
	return e.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (e EUI64) IsMulticast() bool {
	return e.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。
func (e EUI64) IsGlobal() bool {
	return e.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (e EUI64) IsLocal() bool {
	return e.octets[0]&bitLocal != 0
}

// Compare 比较两个 EUI-64 的字节顺序。
// 返回值：-1 (e < other), 0 (e == other), 1 (e > other)。
func (e EUI64) Compare(other EUI64) int {
	return bytes.Compare(e.octets[:], other.octets[:])
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（8 字节）。
// 返回副本，修改不影响原值。无效值返回 nil。
func (e EUI64) HardwareAddr() net.HardwareAddr {
	if !e.IsValid() {
		return nil
	}
	hw := make(net.HardwareAddr, 8)
	copy(hw, e.octets[:])
	return hw
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (e EUI64) String() string {
	return formatOctets(e.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (e EUI64) FormatString(f Format) string {
	return formatOctets(e.octets[:], f)
}
