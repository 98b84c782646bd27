package xeui

import "bytes"

// OUI24 表示 24 位组织唯一标识符。
//
// OUI-24 由 IEEE 分配给组织，作为 EUI-48/EUI-64 地址的厂商前缀。
// 注册位恒为 CLEAR（全局管理），由每个构造入口强制。
//
// OUI24 是不可变值类型，零值无效，可比较、可作 map key。
type OUI24 struct {
	octets [3]byte
}

// OUI24From3 从 3 字节数组创建 OUI-24，注册位强制 CLEAR。
func OUI24From3(b [3]byte) OUI24 {
	b[0] &^= bitLocal
	return OUI24{octets: b}
}

// OUI24FromString 解析 OUI-24 文本。
// 失败时静默返回全零值，由 [OUI24.IsValid] 检测。
// 与 [CompanyIDFromString] 不同，注册位不参与校验：任何输入位值
// 都被强制为 CLEAR，"12:34:56" 会被归一化为 10:34:56。
func OUI24FromString(s string) OUI24 {
	o, err := ParseOUI24(s)
	if err != nil {
		return OUI24{}
	}
	return o
}

// ParseOUI24 严格解析 OUI-24 文本，注册位强制 CLEAR。
func ParseOUI24(s string) (OUI24, error) {
	var o OUI24
	if err := scanExact(s, o.octets[:]); err != nil {
		return OUI24{}, err
	}
	o.octets[0] &^= bitLocal
	return o, nil
}

// Kind 返回 [KindOUI24]。
func (o OUI24) Kind() Kind {
	return KindOUI24
}

// Bytes3 返回存储字节（长度恒为 3）。返回副本，修改不影响原值。
func (o OUI24) Bytes3() [3]byte {
	return o.octets
}

// AsSlice 返回存储字节的副本。
func (o OUI24) AsSlice() []byte {
	return o.octets[:]
}

// IsValid 报告 o 是否有效（非单一字节重复填充）。
func (o OUI24) IsValid() bool {
	return validOctets(o.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (o OUI24) IsUnicast() bool {
	return o.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (o OUI24) IsMulticast() bool {
	return o.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。构造后的 OUI-24 恒为 true。
func (o OUI24) IsGlobal() bool {
	return o.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (o OUI24) IsLocal() bool {
	return o.octets[0]&bitLocal != 0
}

// Compare 比较两个 OUI-24 的字节顺序。
// 返回值：-1 (o < other), 0 (o == other), 1 (o > other)。
func (o OUI24) Compare(other OUI24) int {
	return bytes.Compare(o.octets[:], other.octets[:])
}

// AsMAL 将 o 重贴标签为 MA-L 块标识。
// 两种类型位布局一致，纯字节复制；目标构造器重新施加自身的位强制，
// 因此转换幂等且可往返。
func (o OUI24) AsMAL() MAL {
	return MALFrom3(o.octets)
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (o OUI24) String() string {
	return formatOctets(o.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (o OUI24) FormatString(f Format) string {
	return formatOctets(o.octets[:], f)
}

// OUI36 表示 36 位组织唯一标识符。
//
// OUI-36 占 4.5 字节，按 5 字节存储，尾部半字节（第 5 字节低 4 位）
// 恒为 0，与注册位一样由每个构造入口强制。持有 OUI-36 的组织通过
// 扩展剩余 12/24/28 位派生 EUI-48/EUI-60/EUI-64。
type OUI36 struct {
	octets [5]byte
}

// OUI36From5 从 5 字节数组创建 OUI-36。
// 注册位强制 CLEAR，尾部半字节强制 0。
func OUI36From5(b [5]byte) OUI36 {
	b[0] &^= bitLocal
	b[4] &= 0xF0
	return OUI36{octets: b}
}

// OUI36FromString 解析 OUI-36 文本。
// 失败时静默返回全零值，由 [OUI36.IsValid] 检测。
// 注册位与尾部半字节被强制归一，不参与校验。
func OUI36FromString(s string) OUI36 {
	o, err := ParseOUI36(s)
	if err != nil {
		return OUI36{}
	}
	return o
}

// ParseOUI36 严格解析 OUI-36 文本，注册位强制 CLEAR、尾部半字节强制 0。
func ParseOUI36(s string) (OUI36, error) {
	var o OUI36
	if err := scanExact(s, o.octets[:]); err != nil {
		return OUI36{}, err
	}
	o.octets[0] &^= bitLocal
	o.octets[4] &= 0xF0
	return o, nil
}

// Kind 返回 [KindOUI36]。
func (o OUI36) Kind() Kind {
	return KindOUI36
}

// Bytes5 返回存储字节（长度恒为 5）。返回副本，修改不影响原值。
func (o OUI36) Bytes5() [5]byte {
	return o.octets
}

// AsSlice 返回存储字节的副本。
func (o OUI36) AsSlice() []byte {
	return o.octets[:]
}

// IsValid 报告 o 是否有效（非单一字节重复填充）。
func (o OUI36) IsValid() bool {
	return validOctets(o.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (o OUI36) IsUnicast() bool {
	return o.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (o OUI36) IsMulticast() bool {
	return o.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。构造后的 OUI-36 恒为 true。
func (o OUI36) IsGlobal() bool {
	return o.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (o OUI36) IsLocal() bool {
	return o.octets[0]&bitLocal != 0
}

// Compare 比较两个 OUI-36 的字节顺序。
// 返回值：-1 (o < other), 0 (o == other), 1 (o > other)。
func (o OUI36) Compare(other OUI36) int {
	return bytes.Compare(o.octets[:], other.octets[:])
}

// AsMAS 将 o 重贴标签为 MA-S 块标识，纯字节复制，幂等。
func (o OUI36) AsMAS() MAS {
	return MASFrom5(o.octets)
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (o OUI36) String() string {
	return formatOctets(o.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (o OUI36) FormatString(f Format) string {
	return formatOctets(o.octets[:], f)
}
