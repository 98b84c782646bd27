package xeui

// 首字节控制位。所有种类共享同一布局。
const (
	// bitMulticast 广播域位（bit 0）：SET 为多播，CLEAR 为单播。
	bitMulticast = 0x01
	// bitLocal 注册位（bit 1）：SET 为本地管理（CID 体系），
	// CLEAR 为全局管理（OUI 体系）。
	bitLocal = 0x02
)

// Identifier 是所有标识符种类共享的能力集。
//
// 所有方法对任何值（包括零值和无效值）都有定义：
// 位属性判断是纯位读取，IsUnicast/IsMulticast 恒有且仅有一个为 true，
// IsGlobal/IsLocal 同理；String/FormatString 总能产出完整渲染。
//
// Identifier 只用于只读消费（展示、哈希、日志）。构造、解析和转换
// 都是种类专属操作，不经过接口——跨种类混用应当是编译错误。
type Identifier interface {
	// Kind 返回标识符种类。
	Kind() Kind
	// AsSlice 返回存储字节的副本，长度恒等于 Kind().OctetLen()。
	AsSlice() []byte
	// IsValid 报告值是否有效：至少 3 字节且非单一字节重复填充。
	IsValid() bool
	// IsUnicast 报告广播域位是否为 CLEAR。
	IsUnicast() bool
	// IsMulticast 报告广播域位是否为 SET。
	IsMulticast() bool
	// IsGlobal 报告注册位是否为 CLEAR（全局管理，OUI 体系）。
	IsGlobal() bool
	// IsLocal 报告注册位是否为 SET（本地管理，CID 体系）。
	IsLocal() bool
	// String 返回规范渲染：大写十六进制、冒号分隔。
	String() string
	// FormatString 按指定格式渲染。
	FormatString(f Format) string
}

// 编译期确认全部种类实现 [Identifier]。
var (
	_ Identifier = CompanyID{}
	_ Identifier = OUI24{}
	_ Identifier = OUI36{}
	_ Identifier = MAL{}
	_ Identifier = MAM{}
	_ Identifier = MAS{}
	_ Identifier = EUI48{}
	_ Identifier = EUI60{}
	_ Identifier = EUI64{}
	_ Identifier = ModEUI64{}
	_ Identifier = CDI32{}
	_ Identifier = CDI40{}
)

// validOctets 实现共享的有效性启发式：
// 至少 3 字节，且不是单一字节的重复填充（全零、全 FF 及任何
// XX:XX:…:XX 模式均无效）。
func validOctets(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	for _, c := range b[1:] {
		if c != b[0] {
			return true
		}
	}
	return false
}
