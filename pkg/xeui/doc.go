// Package xeui 提供 IEEE 体系的定宽硬件/组织标识符类型族。
//
// xeui 把 IEEE 注册体系中的十二种定宽标识符建模为互不混用的值类型：
//
//   - [CompanyID]：24 位公司标识（CID），注册位恒为本地管理
//   - [OUI24] / [OUI36]：24/36 位组织唯一标识符，注册位恒为全局管理
//   - [MAL] / [MAM] / [MAS]：MA-L/MA-M/MA-S 地址块标识（24/28/36 位）
//   - [EUI48] / [EUI60] / [EUI64]：扩展唯一标识符（EUI-48 即俗称的 MAC 地址）
//   - [ModEUI64]：Modified EUI-64，注册位语义取反（地址自动配置场景）
//   - [CDI32] / [CDI40]：32/40 位上下文相关标识符
//
// 每种类型都实现 [Identifier] 能力集：位属性判断（单播/多播、全局/本地管理）、
// 有效性判断、多格式渲染。跨种类比较是编译错误而非运行时 false，
// 这是类型族设计的核心收益。
//
// # 快速示例
//
// 解析和格式化：
//
//	e := xeui.EUI48FromString("00:11:22:33:44:55")
//	if e.IsValid() {
//	    fmt.Println(e)                                // 00:11:22:33:44:55
//	    fmt.Println(e.FormatString(xeui.FormatDash))  // 00-11-22-33-44-55
//	}
//
// 严格解析（需要错误原因时）：
//
//	e, err := xeui.ParseEUI48("00:11:22:33:44:55")
//	if errors.Is(err, xeui.ErrInvalidLength) {
//	    // 字节数不符
//	}
//
// 从地址块构造完整地址：
//
//	oui := xeui.OUI24From3([3]byte{0x00, 0x11, 0x22})
//	e := xeui.EUI48FromOUI24(oui, [3]byte{0x33, 0x44, 0x55})
//
// JSON 序列化：
//
//	type Asset struct {
//	    MAC xeui.EUI48 `json:"mac"`
//	}
//	json.Marshal(Asset{MAC: e})  // {"mac":"00:11:22:33:44:55"}
//
// # 控制位
//
// 所有种类共享首字节的两个控制位：
//
//   - bit 0（0x01）广播域位：SET 为多播，CLEAR 为单播
//   - bit 1（0x02）注册位：SET 为本地管理（CID 体系），CLEAR 为全局管理（OUI 体系）
//
// 位属性方法（[EUI48.IsUnicast] 等）是纯位读取，对任何值都有定义，
// 与有效性无关：IsUnicast/IsMulticast 恒有且仅有一个为 true，
// IsGlobal/IsLocal 同理。
//
// # 宽容解析与严格解析
//
// 每种类型提供两条文本入口，接受集完全一致：
//
//   - XxxFromString：失败时静默返回全零值，调用方用 [Identifier] 的
//     IsValid 检测。适合批量清洗脏数据的流水线，失败原因不重要时
//     省去错误分支。
//   - ParseXxx：返回 (值, error)，错误支持 errors.Is 判断。
//
// 文本解析对分隔符极度宽容：扫描器从左到右提取相邻十六进制数字对，
// 跳过一切非数字对噪声（冒号、短线、点、空白乃至任意字符），
// 孤立的末尾单数字被丢弃。约束只有两条：原始输入长度不超过 3n-1
//（n 为该种类字节数），且提取出的字节数恰好等于 n。
//
// 解析后的位处理按种类分三类：
//
//   - 强制：OUI/MA 块类型无条件清除注册位（及尾部半字节），输入的位值被忽略
//   - 校验：[CompanyID]（注册位须 SET）、[EUI48]（须 CLEAR）、
//     [ModEUI64]（须 SET，语义取反）、[CDI32]/[CDI40]（须 CLEAR），
//     不符则视为解析失败
//   - 不处理：[EUI64] 原样保留全部位
//
// # 零值与有效性语义
//
// 有效性是启发式判断：至少 3 字节且不是单一字节的重复填充
//（全零、全 FF 以及任何 XX:XX:…:XX 模式都无效）。零值因此天然无效，
// 宽容解析失败返回的全零值会被 IsValid 正确识别。
//
// 设计决策: String 与 FormatString 对任何值（包括无效值）都产出完整渲染，
// 不因无效而返回空串。有效性在本包中只是启发式——AA:AA:AA 这样的字节
// 模式虽被判为无效，但作为诊断输出仍需可读。序列化路径则相反：
// MarshalText/MarshalJSON 对无效值输出空串、SQL Value 输出 NULL，
// 保证编解码往返一致（任何无效值解码后都回到零值）。
//
// # 种类间转换
//
// 只存在位布局完全兼容的转换：
//
//   - [MAL.AsOUI24] / [OUI24.AsMAL]、[MAS.AsOUI36] / [OUI36.AsMAS]：
//     同宽重贴标签，纯字节复制，幂等
//   - [EUI48.EUI64]：单向加宽，前 3 字节 + FF:FF 填充 + 后 3 字节
//   - [EUI48.ModifiedEUI64]：RFC 4291 接口标识符形式，注册位取反 +
//     FF:FE 填充
//
// 不存在 EUI-64 → EUI-48 收窄，也不存在 [CompanyID] 与任何其他种类的
// 转换：CID 与 OUI-24/MA-L 共享数值空间但语义互斥，混用是调用方错误。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xeui.ParseOUI24("12345678")
//	if errors.Is(err, xeui.ErrInvalidLength) {
//	    // 提取到 4 字节，OUI-24 需要 3 字节
//	}
//
// # 平台要求
//
// 最低要求 Go 1.25（与项目 go.mod 一致）。
package xeui
