// Package hexscan 提供标识符文本的十六进制编解码核心。
//
// 本包是 internal 包，仅供 pkg/xeui 的文本构造器与格式化器内部使用。
// 外部用户不应直接导入此包。
//
// 主要功能：
//   - 单字符十六进制求值（HexValue）与成对组字节（PairByte）
//   - 字节到两位十六进制的渲染（ByteHex / AppendByteHex）
//   - 宽松配对扫描（Scan / Bytes / Count）：从含任意分隔噪声的
//     字符串中尽力提取相邻十六进制数字对
//
// # 扫描语义
//
// Scan 从左到右扫描输入：
//   - 两个相邻的十六进制数字组成一个字节并被一次性消费；
//   - 非十六进制字符（冒号、短线、点、空白及其他任意字符）一律跳过；
//   - 无法与后继字符配对的孤立十六进制数字同样跳过，
//     包括行尾残留的单个数字。
//
// 因此 "AA:BB"、"AA-BB"、"AABB"、"xxAAyyBB" 均提取为 [0xAA, 0xBB]，
// "AA:B" 提取为 [0xAA]（孤立的 'B' 被丢弃）。
//
// 扫描是纯函数：同一输入的迭代器可重复消费，结果一致。
// 不产生错误——调用方按提取到的字节数自行判定输入是否合格。
package hexscan
