package xeui

import "bytes"

// CompanyID 表示 24 位公司标识（CID）。
//
// CID 与 OUI-24/MA-L 共享 24 位数值空间，但注册位恒为 SET（本地管理
// 体系），且语义互斥：CID 不标识地址块，本包不提供 CID 与任何其他
// 种类的转换。
//
// CompanyID 是不可变值类型：
//   - 零值无效，[CompanyID.IsValid] 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发只读共享无需加锁
type CompanyID struct {
	octets [3]byte
}

// CompanyIDFrom3 从 3 字节数组创建 CID。
// 注册位强制 SET，调用方提供的位值被忽略。
func CompanyIDFrom3(b [3]byte) CompanyID {
	b[0] |= bitLocal
	return CompanyID{octets: b}
}

// CompanyIDFromString 解析 CID 文本。
// 任何失败（过长、字节数不符、注册位非 SET）都静默返回全零值，
// 由 [CompanyID.IsValid] 检测。需要失败原因时用 [ParseCompanyID]。
func CompanyIDFromString(s string) CompanyID {
	c, err := ParseCompanyID(s)
	if err != nil {
		return CompanyID{}
	}
	return c
}

// ParseCompanyID 严格解析 CID 文本。
// 输入的注册位必须已是 SET，否则返回 [ErrRegistrationBit]——
// 校验而非强制，与 [CompanyIDFromString] 的接受集完全一致。
func ParseCompanyID(s string) (CompanyID, error) {
	var c CompanyID
	if err := scanExact(s, c.octets[:]); err != nil {
		return CompanyID{}, err
	}
	if err := checkRegistration(c.octets[0], true); err != nil {
		return CompanyID{}, err
	}
	return c, nil
}

// Kind 返回 [KindCompanyID]。
func (c CompanyID) Kind() Kind {
	return KindCompanyID
}

// Bytes3 返回存储字节（长度恒为 3）。返回副本，修改不影响原值。
func (c CompanyID) Bytes3() [3]byte {
	return c.octets
}

// AsSlice 返回存储字节的副本。
func (c CompanyID) AsSlice() []byte {
	return c.octets[:]
}

// IsValid 报告 c 是否有效（非单一字节重复填充）。
func (c CompanyID) IsValid() bool {
	return validOctets(c.octets[:])
}

// IsUnicast 报告广播域位是否为 CLEAR。纯位读取，与有效性无关。
func (c CompanyID) IsUnicast() bool {
	return c.octets[0]&bitMulticast == 0
}

// IsMulticast 报告广播域位是否为 SET。
func (c CompanyID) IsMulticast() bool {
	return c.octets[0]&bitMulticast != 0
}

// IsGlobal 报告注册位是否为 CLEAR（全局管理）。
// 成功构造的 CID 恒为 false；全零失败值读取为 true。
func (c CompanyID) IsGlobal() bool {
	return c.octets[0]&bitLocal == 0
}

// IsLocal 报告注册位是否为 SET（本地管理）。
func (c CompanyID) IsLocal() bool {
	return c.octets[0]&bitLocal != 0
}

// Compare 比较两个 CID 的字节顺序。
// 返回值：-1 (c < other), 0 (c == other), 1 (c > other)。
func (c CompanyID) Compare(other CompanyID) int {
	return bytes.Compare(c.octets[:], other.octets[:])
}

// String 返回规范渲染（大写冒号分隔）。
// 对无效值同样产出完整渲染，如零值输出 "00:00:00"。
func (c CompanyID) String() string {
	return formatOctets(c.octets[:], FormatColon)
}

// FormatString 按指定格式渲染。
func (c CompanyID) FormatString(f Format) string {
	return formatOctets(c.octets[:], f)
}
