package xeui

import (
	"fmt"
	"strings"

	"github.com/omeyang/euikit/internal/hexscan"
)

// Format 定义标识符的渲染风格。
// 规范形式是大写冒号分隔（[FormatColon]），小写变体用于
// 需要兼容既有系统输出习惯的场合。
type Format uint8

const (
	// FormatColon 冒号分隔，大写（规范形式）：00:11:22:33:44:55
	FormatColon Format = iota
	// FormatDash 短线分隔，大写：00-11-22-33-44-55
	FormatDash
	// FormatDot 点分隔（Cisco 风格，每组 2 字节），大写：0011.2233.4455。
	// 点分组要求偶数字节数，3/5 字节的种类回退为冒号渲染。
	FormatDot
	// FormatBare 无分隔符，大写：001122334455
	FormatBare
	// FormatColonLower 冒号分隔，小写：00:11:22:33:44:55
	FormatColonLower
	// FormatDashLower 短线分隔，小写
	FormatDashLower
	// FormatDotLower 点分隔，小写
	FormatDotLower
	// FormatBareLower 无分隔符，小写
	FormatBareLower
)

// Lower 返回 f 的小写变体。已是小写变体时原样返回。
func (f Format) Lower() Format {
	if f <= FormatBare {
		return f + FormatColonLower
	}
	return f
}

// ParseFormat 解析格式名称（colon、dash、dot、bare，大小写不敏感），
// 返回对应的大写变体，小写用 [Format.Lower] 派生。
// 无法识别时返回 [ErrUnknownFormat]。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "colon":
		return FormatColon, nil
	case "dash":
		return FormatDash, nil
	case "dot":
		return FormatDot, nil
	case "bare":
		return FormatBare, nil
	}
	return FormatColon, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// formatOctets 按指定格式渲染字节序列，未知格式值按规范形式处理。
func formatOctets(b []byte, f Format) string {
	upper := f < FormatColonLower
	switch f {
	case FormatDash, FormatDashLower:
		return string(appendSep(make([]byte, 0, len(b)*3-1), b, '-', upper))
	case FormatDot, FormatDotLower:
		if len(b)%2 != 0 {
			return string(appendSep(make([]byte, 0, len(b)*3-1), b, ':', upper))
		}
		return string(appendDot(make([]byte, 0, len(b)*2+len(b)/2-1), b, upper))
	case FormatBare, FormatBareLower:
		return string(appendBare(make([]byte, 0, len(b)*2), b, upper))
	case FormatColon, FormatColonLower:
		return string(appendSep(make([]byte, 0, len(b)*3-1), b, ':', upper))
	default:
		return string(appendSep(make([]byte, 0, len(b)*3-1), b, ':', true))
	}
}

// appendSep 以单字符分隔符逐字节追加渲染结果。
func appendSep(dst []byte, b []byte, sep byte, upper bool) []byte {
	for i, c := range b {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = hexscan.AppendByteHex(dst, c, upper)
	}
	return dst
}

// appendDot 按每组 2 字节追加点分渲染结果，调用方保证偶数字节数。
func appendDot(dst []byte, b []byte, upper bool) []byte {
	for i, c := range b {
		if i > 0 && i%2 == 0 {
			dst = append(dst, '.')
		}
		dst = hexscan.AppendByteHex(dst, c, upper)
	}
	return dst
}

// appendBare 追加无分隔符渲染结果。
func appendBare(dst []byte, b []byte, upper bool) []byte {
	for _, c := range b {
		dst = hexscan.AppendByteHex(dst, c, upper)
	}
	return dst
}
