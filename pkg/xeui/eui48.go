package xeui

import (
	"bytes"
	"net"
)

// EUI48 表示 48 位扩展唯一标识符（即俗称的 MAC 地址）。
//
// EUI48 是不可变值类型：
//   - 零值无效，[EUI48.IsValid] 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发只读共享无需加锁
//
// 原始构造不强制任何位（[EUI48From6] 原样保留输入），文本解析则要求
// 注册位为 CLEAR（全局管理）——本地管理地址只能经原始字节或
// 地址块组合构造获得。
type EUI48 struct {
	// 使用固定大小数组而非切片：
	// 1. 值语义，可比较，可作为 map key
	// 2. 栈分配，零堆开销
	// 3. 编译期大小检查
	octets [6]byte
}

// EUI48From6 从 6 字节数组创建 EUI-48，不做任何位处理。
func EUI48From6(b [6]byte) EUI48 {
	return EUI48{octets: b}
}

// EUI48FromString 解析 EUI-48 文本。
// 任何失败（过长、字节数不符、注册位非 CLEAR）都静默返回全零值，
// 由 [EUI48.IsValid] 检测。需要失败原因时用 [ParseEUI48]。
func EUI48FromString(s string) EUI48 {
	e, err := ParseEUI48(s)
	if err != nil {
		return EUI48{}
	}
	return e
}

// ParseEUI48 严格解析 EUI-48 文本。
// 输入的注册位必须为 CLEAR，否则返回 [ErrRegistrationBit]；
// 广播域位不受限，多播地址可正常解析。
func ParseEUI48(s string) (EUI48, error) {
	var e EUI48
	if err := scanExact(s, e.octets[:]); err != nil {
		return EUI48{}, err
	}
	if err := checkRegistration(e.octets[0], false); err != nil {
		return EUI48{}, err
	}
	return e, nil
}

// EUI48FromOUI24 由 OUI-24 前缀加 3 字节扩展构造 EUI-48。
func EUI48FromOUI24(o OUI24, ext [3]byte) EUI48 {
	p := o.Bytes3()
	var e EUI48
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// EUI48FromOUI36 由 OUI-36 前缀加 12 位扩展（半字节 + 1 字节）构造 EUI-48。
// nibble 只取低 4 位，与前缀的尾部半字节合并：
// (前缀末字节 & 0xF0) | (nibble & 0x0F)。
func EUI48FromOUI36(o OUI36, nibble byte, tail byte) EUI48 {
	p := o.Bytes5()
	var e EUI48
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	e.octets[5] = tail
	return e
}

// EUI48FromMAL 由 MA-L 前缀加 3 字节扩展构造 EUI-48。
func EUI48FromMAL(m MAL, ext [3]byte) EUI48 {
	p := m.Bytes3()
	var e EUI48
	copy(e.octets[:3], p[:])
	copy(e.octets[3:], ext[:])
	return e
}

// EUI48FromMAM 由 MA-M 前缀加 20 位扩展（半字节 + 2 字节）构造 EUI-48。
// nibble 只取低 4 位，与前缀的尾部半字节合并。
func EUI48FromMAM(m MAM, nibble byte, tail [2]byte) EUI48 {
	p := m.Bytes4()
	var e EUI48
	copy(e.octets[:3], p[:3])
	e.octets[3] = p[3]&0xF0 | nibble&0x0F
	copy(e.octets[4:], tail[:])
	return e
}

// EUI48FromMAS 由 MA-S 前缀加 12 位扩展（半字节 + 1 字节）构造 EUI-48。
// nibble 只取低 4 位，与前缀的尾部半字节合并。
func EUI48FromMAS(m MAS, nibble byte, tail byte) EUI48 {
	p := m.Bytes5()
	var e EUI48
	copy(e.octets[:4], p[:4])
	e.octets[4] = p[4]&0xF0 | nibble&0x0F
	e.octets[5] = tail
	return e
}

// Kind 返回 [KindEUI48]。
func (e EUI48) Kind() Kind {
	return KindEUI48
}

// Bytes6 返回存储字节（长度恒为 6）。返回副本，修改不影响原值。
func (e EUI48) Bytes6() [6]byte {
	return e.octets
}

// AsSlice 返回存储字节的副本。
func (e EUI48) AsSlice() []byte {
	return e.octets[:]
}

// OUI 返回前 3 字节（厂商前缀）。
// 仅对全局单播地址而言这是注册意义上的 OUI，返回原始字节不附带类型。
func (e EUI48) OUI() [3]byte {
	return [3]byte{e.octets[0], e.octets[1], e.octets[2]}
}

// NIC 返回后 3 字节（厂商内设备标识）。
func (e EUI48) NIC() [3]byte {
	return [3]byte{e.octets[3], e.octets[4], e.octets[5]}
}

// IsValid 报告 e 是否有效（非单一字节重复填充）。
func (e EUI48) IsValid() bool {
	return validOctets(e.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。纯位读取，与有效性无关。
func (e EUI48) IsUnicast() bool {
	return e.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
// 广播地址 FF:FF:FF:FF:FF:FF 也读取为多播（但因全同填充判为无效）。
func (e EUI48) IsMulticast() bool {
	return e.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理，UAA）。
// 物理网卡出厂分配的地址通常为全局管理。
func (e EUI48) IsGlobal() bool {
	return e.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理，LAA）。
// 虚拟机、容器等通常使用本地管理地址。
func (e EUI48) IsLocal() bool {
	return e.octets[0]&bitLocal != 0
}

// Compare 比较两个 EUI-48 的字节顺序。
// 返回值：-1 (e < other), 0 (e == other), 1 (e > other)。
// 按网络字节序（大端）比较。
func (e EUI48) Compare(other EUI48) int {
	return bytes.Compare(e.octets[:], other.octets[:])
}

// EUI64 将 e 单向加宽为 EUI-64：前 3 字节 + 0xFF,0xFF 填充 + 后 3 字节。
// 不存在反向收窄操作。
func (e EUI48) EUI64() EUI64 {
	var out EUI64
	copy(out.octets[:3], e.octets[:3])
	out.octets[3] = 0xFF
	out.octets[4] = 0xFF
	copy(out.octets[5:], e.octets[3:])
	return out
}

// ModifiedEUI64 返回 RFC 4291 定义的接口标识符形式：
// 前 3 字节（注册位取反）+ 0xFF,0xFE 填充 + 后 3 字节。
// 全局管理的 EUI-48 产出注册位为 SET 的值，符合取反约定——
// SET 在 Modified EUI-64 中表示全局唯一。
func (e EUI48) ModifiedEUI64() ModEUI64 {
	var out ModEUI64
	copy(out.octets[:3], e.octets[:3])
	out.octets[0] ^= bitLocal
	out.octets[3] = 0xFF
	out.octets[4] = 0xFE
	copy(out.octets[5:], e.octets[3:])
	return out
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。无效值返回 nil。
func (e EUI48) HardwareAddr() net.HardwareAddr {
	if !e.IsValid() {
		return nil
	}
	hw := make(net.HardwareAddr, 6)
	copy(hw, e.octets[:])
	return hw
}

// String 返回规范渲染（大写冒号分隔）。
// 对无效值同样产出完整渲染，如零值输出 "00:00:00:00:00:00"。
func (e EUI48) String() string {
	return formatOctets(e.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (e EUI48) FormatString(f Format) string {
	return formatOctets(e.octets[:], f)
}
