package xeui

import "bytes"

// MAL 表示 MA-L 地址块标识（24 位）。
//
// MA-L（MAC Address Block Large）是 IEEE 注册的大地址块：24 位前缀，
// 剩余 24 位由持有者分配。MA-L 与 OUI-24 位布局完全一致
//（[MAL.AsOUI24] 纯重贴标签），但两者是不同的注册产品，类型上互不混用。
// 注册位恒为 CLEAR，由每个构造入口强制。
type MAL struct {
	octets [3]byte
}

// MALFrom3 从 3 字节数组创建 MA-L，注册位强制 CLEAR。
func MALFrom3(b [3]byte) MAL {
	b[0] &^= bitLocal
	return MAL{octets: b}
}

// MALFromString 解析 MA-L 文本。
// 失败时静默返回全零值，由 [MAL.IsValid] 检测；注册位强制 CLEAR。
func MALFromString(s string) MAL {
	m, err := ParseMAL(s)
	if err != nil {
		return MAL{}
	}
	return m
}

// ParseMAL 严格解析 MA-L 文本，注册位强制 CLEAR。
func ParseMAL(s string) (MAL, error) {
	var m MAL
	if err := scanExact(s, m.octets[:]); err != nil {
		return MAL{}, err
	}
	m.octets[0] &^= bitLocal
	return m, nil
}

// Kind 返回 [KindMAL]。
func (m MAL) Kind() Kind {
	return KindMAL
}

// Bytes3 返回存储字节（长度恒为 3）。返回副本，修改不影响原值。
func (m MAL) Bytes3() [3]byte {
	return m.octets
}

// AsSlice 返回存储字节的副本。
func (m MAL) AsSlice() []byte {
	return m.octets[:]
}

// IsValid 报告 m 是否有效（非单一字节重复填充）。
func (m MAL) IsValid() bool {
	return validOctets(m.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (m MAL) IsUnicast() bool {
	return m.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (m MAL) IsMulticast() bool {
	return m.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。构造后的 MA-L 恒为 true。
func (m MAL) IsGlobal() bool {
	return m.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (m MAL) IsLocal() bool {
	return m.octets[0]&bitLocal != 0
}

// Compare 比较两个 MA-L 的字节顺序。
// 返回值：-1 (m < other), 0 (m == other), 1 (m > other)。
func (m MAL) Compare(other MAL) int {
	return bytes.Compare(m.octets[:], other.octets[:])
}

// AsOUI24 将 m 重贴标签为 OUI-24。
// 位布局一致，纯字节复制；目标构造器重新施加位强制，转换幂等且可往返。
func (m MAL) AsOUI24() OUI24 {
	return OUI24From3(m.octets)
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (m MAL) String() string {
	return formatOctets(m.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (m MAL) FormatString(f Format) string {
	return formatOctets(m.octets[:], f)
}

// MAM 表示 MA-M 地址块标识（28 位）。
//
// 28 位前缀占 3.5 字节，按 4 字节存储，尾部半字节恒为 0；
// 剩余 20 位由持有者分配。注册位恒为 CLEAR。
type MAM struct {
	octets [4]byte
}

// MAMFrom4 从 4 字节数组创建 MA-M。
// 注册位强制 CLEAR，尾部半字节强制 0。
func MAMFrom4(b [4]byte) MAM {
	b[0] &^= bitLocal
	b[3] &= 0xF0
	return MAM{octets: b}
}

// MAMFromString 解析 MA-M 文本。
// 失败时静默返回全零值，由 [MAM.IsValid] 检测；
// 注册位与尾部半字节被强制归一。
func MAMFromString(s string) MAM {
	m, err := ParseMAM(s)
	if err != nil {
		return MAM{}
	}
	return m
}

// ParseMAM 严格解析 MA-M 文本，注册位强制 CLEAR、尾部半字节强制 0。
func ParseMAM(s string) (MAM, error) {
	var m MAM
	if err := scanExact(s, m.octets[:]); err != nil {
		return MAM{}, err
	}
	m.octets[0] &^= bitLocal
	m.octets[3] &= 0xF0
	return m, nil
}

// Kind 返回 [KindMAM]。
func (m MAM) Kind() Kind {
	return KindMAM
}

// Bytes4 返回存储字节（长度恒为 4）。返回副本，修改不影响原值。
func (m MAM) Bytes4() [4]byte {
	return m.octets
}

// AsSlice 返回存储字节的副本。
func (m MAM) AsSlice() []byte {
	return m.octets[:]
}

// IsValid 报告 m 是否有效（非单一字节重复填充）。
func (m MAM) IsValid() bool {
	return validOctets(m.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (m MAM) IsUnicast() bool {
	return m.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (m MAM) IsMulticast() bool {
	return m.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。构造后的 MA-M 恒为 true。
func (m MAM) IsGlobal() bool {
	return m.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (m MAM) IsLocal() bool {
	return m.octets[0]&bitLocal != 0
}

// Compare 比较两个 MA-M 的字节顺序。
// 返回值：-1 (m < other), 0 (m == other), 1 (m > other)。
func (m MAM) Compare(other MAM) int {
	return bytes.Compare(m.octets[:], other.octets[:])
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (m MAM) String() string {
	return formatOctets(m.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (m MAM) FormatString(f Format) string {
	return formatOctets(m.octets[:], f)
}

// MAS 表示 MA-S 地址块标识（36 位）。
//
// 36 位前缀占 4.5 字节，按 5 字节存储，尾部半字节恒为 0；
// 剩余 12 位由持有者分配。与 OUI-36 位布局一致（[MAS.AsOUI36]
// 纯重贴标签）。注册位恒为 CLEAR。
type MAS struct {
	octets [5]byte
}

// MASFrom5 从 5 字节数组创建 MA-S。
// 注册位强制 CLEAR，尾部半字节强制 0。
func MASFrom5(b [5]byte) MAS {
	b[0] &^= bitLocal
	b[4] &= 0xF0
	return MAS{octets: b}
}

// MASFromString 解析 MA-S 文本。
// 失败时静默返回全零值，由 [MAS.IsValid] 检测；
// 注册位与尾部半字节被强制归一。
func MASFromString(s string) MAS {
	m, err := ParseMAS(s)
	if err != nil {
		return MAS{}
	}
	return m
}

// ParseMAS 严格解析 MA-S 文本，注册位强制 CLEAR、尾部半字节强制 0。
func ParseMAS(s string) (MAS, error) {
	var m MAS
	if err := scanExact(s, m.octets[:]); err != nil {
		return MAS{}, err
	}
	m.octets[0] &^= bitLocal
	m.octets[4] &= 0xF0
	return m, nil
}

// Kind 返回 [KindMAS]。
func (m MAS) Kind() Kind {
	return KindMAS
}

// Bytes5 返回存储字节（长度恒为 5）。返回副本，修改不影响原值。
func (m MAS) Bytes5() [5]byte {
	return m.octets
}

// AsSlice 返回存储字节的副本。
func (m MAS) AsSlice() []byte {
	return m.octets[:]
}

// IsValid 报告 m 是否有效（非单一字节重复填充）。
func (m MAS) IsValid() bool {
	return validOctets(m.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。
func (m MAS) IsUnicast() bool {
	return m.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (m MAS) IsMulticast() bool {
	return m.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。构造后的 MA-S 恒为 true。
func (m MAS) IsGlobal() bool {
	return m.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (m MAS) IsLocal() bool {
	return m.octets[0]&bitLocal != 0
}

// Compare 比较两个 MA-S 的字节顺序。
// 返回值：-1 (m < other), 0 (m == other), 1 (m > other)。
func (m MAS) Compare(other MAS) int {
	return bytes.Compare(m.octets[:], other.octets[:])
}

// AsOUI36 将 m 重贴标签为 OUI-36，纯字节复制，幂等。
func (m MAS) AsOUI36() OUI36 {
	return OUI36From5(m.octets)
}

// String 返回规范渲染（大写冒号分隔），对无效值同样产出完整渲染。
func (m MAS) String() string {
	return formatOctets(m.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (m MAS) FormatString(f Format) string {
	return formatOctets(m.octets[:], f)
}
