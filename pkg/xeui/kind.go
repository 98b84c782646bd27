package xeui

import (
	"fmt"
	"strings"
)

// Kind 标识具体的标识符种类。
// 零值 [KindInvalid] 表示未知种类。
type Kind uint8

const (
	// KindInvalid 表示未知/未设置的种类。
	KindInvalid Kind = iota
	// KindCompanyID 表示 24 位公司标识（CID）。
	KindCompanyID
	// KindOUI24 表示 24 位组织唯一标识符。
	KindOUI24
	// KindOUI36 表示 36 位组织唯一标识符。
	KindOUI36
	// KindMAL 表示 MA-L 地址块标识（24 位）。
	KindMAL
	// KindMAM 表示 MA-M 地址块标识（28 位）。
	KindMAM
	// KindMAS 表示 MA-S 地址块标识（36 位）。
	KindMAS
	// KindEUI48 表示 48 位扩展唯一标识符。
	KindEUI48
	// KindEUI60 表示 60 位扩展唯一标识符。
	KindEUI60
	// KindEUI64 表示 64 位扩展唯一标识符。
	KindEUI64
	// KindModEUI64 表示 Modified EUI-64。
	KindModEUI64
	// KindCDI32 表示 32 位上下文相关标识符。
	KindCDI32
	// KindCDI40 表示 40 位上下文相关标识符。
	KindCDI40
)

// String 返回种类的标准显示名称。
func (k Kind) String() string {
	switch k {
	case KindCompanyID:
		return "CID"
	case KindOUI24:
		return "OUI-24"
	case KindOUI36:
		return "OUI-36"
	case KindMAL:
		return "MA-L"
	case KindMAM:
		return "MA-M"
	case KindMAS:
		return "MA-S"
	case KindEUI48:
		return "EUI-48"
	case KindEUI60:
		return "EUI-60"
	case KindEUI64:
		return "EUI-64"
	case KindModEUI64:
		return "Modified EUI-64"
	case KindCDI32:
		return "CDI-32"
	case KindCDI40:
		return "CDI-40"
	default:
		return "invalid"
	}
}

// OctetLen 返回该种类的存储字节数。
// [KindEUI60] 虽只有 60 个有效位，但按 8 字节存储（尾部半字节恒为 0）。
// [KindInvalid] 返回 0。
func (k Kind) OctetLen() int {
	switch k {
	case KindCompanyID, KindOUI24, KindMAL:
		return 3
	case KindMAM, KindCDI32:
		return 4
	case KindOUI36, KindMAS, KindCDI40:
		return 5
	case KindEUI48:
		return 6
	case KindEUI60, KindEUI64, KindModEUI64:
		return 8
	default:
		return 0
	}
}

// KindsForOctetLen 返回存储宽度为 n 字节的所有种类，
// 按常见程度排序（首个元素是该宽度下最可能的种类）。
// 无对应种类的宽度返回 nil。
func KindsForOctetLen(n int) []Kind {
	switch n {
	case 3:
		return []Kind{KindOUI24, KindMAL, KindCompanyID}
	case 4:
		return []Kind{KindMAM, KindCDI32}
	case 5:
		return []Kind{KindOUI36, KindMAS, KindCDI40}
	case 6:
		return []Kind{KindEUI48}
	case 8:
		return []Kind{KindEUI64, KindEUI60, KindModEUI64}
	default:
		return nil
	}
}

// ParseKind 解析种类名称。
// 大小写不敏感，忽略短线、下划线和空格：
// "EUI-48"、"eui48"、"eui_48" 均可识别。
// 无法识别时返回 [KindInvalid] 和 [ErrUnknownKind]。
func ParseKind(s string) (Kind, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))

	switch key {
	case "cid", "companyid":
		return KindCompanyID, nil
	case "oui24":
		return KindOUI24, nil
	case "oui36":
		return KindOUI36, nil
	case "mal":
		return KindMAL, nil
	case "mam":
		return KindMAM, nil
	case "mas":
		return KindMAS, nil
	case "eui48":
		return KindEUI48, nil
	case "eui60":
		return KindEUI60, nil
	case "eui64":
		return KindEUI64, nil
	case "modeui64", "modifiedeui64", "meui64":
		return KindModEUI64, nil
	case "cdi32":
		return KindCDI32, nil
	case "cdi40":
		return KindCDI40, nil
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
