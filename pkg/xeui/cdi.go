package xeui

import "bytes"

// CDI32 表示 32 位上下文相关标识符。
//
// CDI（Context-Dependent Identifier）的具体含义取决于外围协议上下文，
// 本包只承载其字节布局与控制位约定。原始构造不做位处理，
// 文本解析要求注册位为 CLEAR（OUI 体系派生）。
type CDI32 struct {
	octets [4]byte
}

// CDI32From4 从 4 字节数组创建 CDI-32，不做任何位处理。
func CDI32From4(b [4]byte) CDI32 {
	return CDI32{octets: b}
}

// CDI32FromString 解析 CDI-32 文本。
// 任何失败（过长、字节数不符、注册位非 CLEAR）都静默返回全零值，
// 由 [CDI32.IsValid] 检测。
func CDI32FromString(s string) CDI32 {
	c, err := ParseCDI32(s)
	if err != nil {
		return CDI32{}
	}
	return c
}

// ParseCDI32 严格解析 CDI-32 文本。
// 输入的注册位必须为 CLEAR，否则返回 [ErrRegistrationBit]。
func ParseCDI32(s string) (CDI32, error) {
	var c CDI32
	if err := scanExact(s, c.octets[:]); err != nil {
		return CDI32{}, err
	}
	if err := checkRegistration(c.octets[0], false); err != nil {
		return CDI32{}, err
	}
	return c, nil
}

// CDI32FromOUI24 由 OUI-24 前缀加 1 字节扩展构造 CDI-32。
// OUI-24 是宽度上唯一可行的地址块来源（24 + 8 = 32）。
func CDI32FromOUI24(o OUI24, ext byte) CDI32 {
	p := o.Bytes3()
	var c CDI32
	copy(c.octets[:3], p[:])
	c.octets[3] = ext
	return c
}

// Kind 返回 [KindCDI32]。
func (c CDI32) Kind() Kind {
	return KindCDI32
}

// Bytes4 返回存储字节（长度恒为 4）。返回副本，修改不影响原值。
func (c CDI32) Bytes4() [4]byte {
	return c.octets
}

// AsSlice 返回存储字节的副本。
func (c CDI32) AsSlice() []byte {
	return c.octets[:]
}

// IsValid 报告 c 是否有效（非单一字节重复填充）。
func (c CDI32) IsValid() bool {
	return validOctets(c.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (c CDI32) IsUnicast() bool {
	return c.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (c CDI32) IsMulticast() bool {
	return c.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。
func (c CDI32) IsGlobal() bool {
	return c.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (c CDI32) IsLocal() bool {
	return c.octets[0]&bitLocal != 0
}

// Compare 比较两个 CDI-32 的字节顺序。
// 返回值：-1 (c < other), 0 (c == other), 1 (c > other)。
func (c CDI32) Compare(other CDI32) int {
	return bytes.Compare(c.octets[:], other.octets[:])
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (c CDI32) String() string {
	return formatOctets(c.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (c CDI32) FormatString(f Format) string {
	return formatOctets(c.octets[:], f)
}

// CDI40 表示 40 位上下文相关标识符。
//
// 与 [CDI32] 同族：原始构造不做位处理，文本解析要求注册位为 CLEAR。
type CDI40 struct {
	octets [5]byte
}

// CDI40From5 从 5 字节数组创建 CDI-40，不做任何位处理。
func CDI40From5(b [5]byte) CDI40 {
	return CDI40{octets: b}
}

// CDI40FromString 解析 CDI-40 文本。
// 任何失败（过长、字节数不符、注册位非 CLEAR）都静默返回全零值，
// 由 [CDI40.IsValid] 检测。
func CDI40FromString(s string) CDI40 {
	c, err := ParseCDI40(s)
	if err != nil {
		return CDI40{}
	}
	return c
}

// ParseCDI40 严格解析 CDI-40 文本。
// 输入的注册位必须为 CLEAR，否则返回 [ErrRegistrationBit]。
func ParseCDI40(s string) (CDI40, error) {
	var c CDI40
	if err := scanExact(s, c.octets[:]); err != nil {
		return CDI40{}, err
	}
	if err := checkRegistration(c.octets[0], false); err != nil {
		return CDI40{}, err
	}
	return c, nil
}

// CDI40FromOUI24 由 OUI-24 前缀加 2 字节扩展构造 CDI-40。
func CDI40FromOUI24(o OUI24, ext [2]byte) CDI40 {
	p := o.Bytes3()
	var c CDI40
	copy(c.octets[:3], p[:])
	copy(c.octets[3:], ext[:])
	return c
}

// CDI40FromOUI36 由 OUI-36 前缀加 4 位扩展构造 CDI-40。
// ext 只取低 4 位，与前缀的尾部半字节合并：
// (前缀末字节 & 0xF0) | (ext & 0x0F)。
func CDI40FromOUI36(o OUI36, ext byte) CDI40 {
	p := o.Bytes5()
	var c CDI40
	copy(c.octets[:4], p[:4])
	c.octets[4] = p[4]&0xF0 | ext&0x0F
	return c
}

// Kind 返回 [KindCDI40]。
func (c CDI40) Kind() Kind {
	return KindCDI40
}

// Bytes5 返回存储字节（长度恒为 5）。返回副本，修改不影响原值。
func (c CDI40) Bytes5() [5]byte {
	return c.octets
}

// AsSlice 返回存储字节的副本。
func (c CDI40) AsSlice() []byte {
	return c.octets[:]
}

// IsValid 报告 c 是否有效（非单一字节重复填充）。
func (c CDI40) IsValid() bool {
	return validOctets(c.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (c CDI40) IsUnicast() bool {
	return c.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (c CDI40) IsMulticast() bool {
	return c.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。
func (c CDI40) IsGlobal() bool {
	return c.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (c CDI40) IsLocal() bool {
	return c.octets[0]&bitLocal != 0
}

// Compare 比较两个 CDI-40 的字节顺序。
// 返回值：-1 (c < other), 0 (c == other), 1 (c > other)。
func (c CDI40) Compare(other CDI40) int {
	return bytes.Compare(c.octets[:], other.octets[:])
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (c CDI40) String() string {
	return formatOctets(c.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (c CDI40) FormatString(f Format) string {
	return formatOctets(c.octets[:], f)
}
