package hexscan

import "iter"

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// HexValue 返回十六进制字符的数值，无效字符返回 -1。
// 大小写不敏感。
func HexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// PairByte 将两个十六进制字符组合为一个字节。
// 任一字符无效时返回 ok=false，字节值为 0。
func PairByte(hi, lo byte) (byte, bool) {
	h := HexValue(hi)
	l := HexValue(lo)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// ByteHex 返回字节的两位大写十六进制表示。
// 对全部 256 个字节值都有定义。
func ByteHex(b byte) string {
	return string([]byte{hexUpper[b>>4], hexUpper[b&0x0f]})
}

// AppendByteHex 将字节的两位十六进制追加到 dst 并返回结果。
// upper 控制大小写。追加形式避免格式化器的中间分配。
func AppendByteHex(dst []byte, b byte, upper bool) []byte {
	table := hexLower
	if upper {
		table = hexUpper
	}
	return append(dst, table[b>>4], table[b&0x0f])
}

// Scan 返回对 s 做宽松配对扫描的字节迭代器。
// 扫描语义见包文档：相邻数字对组字节，其余字符（含孤立数字）跳过。
//
// 迭代器可重复消费（纯函数），提前终止安全。
func Scan(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i+1 < len(s); {
			b, ok := PairByte(s[i], s[i+1])
			if !ok {
				// 当前位置无法成对：前移一位继续尝试。
				// 孤立十六进制数字与分隔噪声在此同等对待。
				i++
				continue
			}
			if !yield(b) {
				return
			}
			i += 2
		}
	}
}

// Bytes 对 s 做宽松配对扫描并收集全部字节。
// 等价于消费 [Scan] 的完整迭代。
func Bytes(s string) []byte {
	// 上界预估：每 2 个字符至多 1 字节。
	out := make([]byte, 0, len(s)/2)
	for b := range Scan(s) {
		out = append(out, b)
	}
	return out
}

// Count 返回宽松配对扫描可从 s 提取的字节数，不分配。
func Count(s string) int {
	n := 0
	for range Scan(s) {
		n++
	}
	return n
}
