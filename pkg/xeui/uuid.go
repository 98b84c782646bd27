package xeui

import "github.com/google/uuid"

// NodeFromUUID 提取 RFC 4122 时间型 UUID 的节点字段（第 10..15 字节）
// 为 EUI-48。随机生成的节点字段按 RFC 4122 §4.5 置多播位，
// 可用 [EUI48.IsMulticast] 区分真实硬件地址与随机节点。
func NodeFromUUID(u uuid.UUID) EUI48 {
	var e EUI48
	copy(e.octets[:], u[10:])
	return e
}

// UUIDNodeID 返回节点字段形态，配合 [uuid.SetNodeID] 使用：
//
//	uuid.SetNodeID(e.UUIDNodeID()[:])
func (e EUI48) UUIDNodeID() [6]byte {
	return e.octets
}
