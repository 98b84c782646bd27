package xeui

import "github.com/cespare/xxhash/v2"

// Sum64 返回标识符的 64 位确定性哈希（xxhash）。
// 哈希输入带种类标签：字节相同但种类不同的标识符（如共享数值空间的
// CID 与 OUI-24）产生不同哈希，与类型族的互不混用语义一致。
// 同一值在所有进程中产生相同哈希，适合跨进程一致的去重与分桶。
func Sum64(id Identifier) uint64 {
	buf := make([]byte, 0, 9)
	buf = append(buf, byte(id.Kind()))
	buf = append(buf, id.AsSlice()...)
	return xxhash.Sum64(buf)
}

// Shard 把标识符确定性地映射到 [0, n) 的分片序号。
// n <= 0 时返回 0。
func Shard(id Identifier, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Sum64(id) % uint64(n))
}
