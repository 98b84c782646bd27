package xeui

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNodeFromUUID(t *testing.T) {
	// RFC 4122 的 DNS 命名空间 UUID，节点字段是真实硬件地址
	// 6ba7b810-9dad-11d1-80b4-00c04fd430c8
	e := NodeFromUUID(uuid.NameSpaceDNS)

	assert.Equal(t, "00:C0:4F:D4:30:C8", e.String())
	assert.True(t, e.IsValid())
	assert.True(t, e.IsUnicast(), "硬件地址来源的节点字段广播域位为 CLEAR")
	assert.True(t, e.IsGlobal())
}

func TestNodeFromUUID_RandomNode(t *testing.T) {
	// RFC 4122 §4.5：随机生成的节点字段置多播位，
	// 与真实硬件地址可经 IsMulticast 区分
	u := uuid.MustParse("00000000-0000-1000-8000-01a2b3c4d5e6")
	e := NodeFromUUID(u)

	assert.Equal(t, [6]byte{0x01, 0xA2, 0xB3, 0xC4, 0xD5, 0xE6}, e.Bytes6())
	assert.True(t, e.IsMulticast())
}

func TestNodeFromUUID_Bytes(t *testing.T) {
	u := uuid.MustParse("00000000-0000-1000-8000-aabbccddeeff")
	e := NodeFromUUID(u)

	assert.Equal(t, [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, e.Bytes6())
	assert.True(t, e.IsLocal(), "0xAA 的注册位为 SET")
}

func TestUUIDNodeID(t *testing.T) {
	e := EUI48FromString("00:1B:44:11:3A:B7")
	node := e.UUIDNodeID()

	assert.Equal(t, [6]byte{0x00, 0x1B, 0x44, 0x11, 0x3A, 0xB7}, node)

	// UUID -> 节点 -> UUID 字段往返
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, [6]byte(u[10:16]), NodeFromUUID(u).UUIDNodeID())
}
