package xeui

import (
	"encoding/json"
	"testing"
)

// assertBitExclusivity 验证两对位属性各自恰有一个为 true。
func assertBitExclusivity(t *testing.T, id Identifier) {
	t.Helper()

	if id.IsUnicast() == id.IsMulticast() {
		t.Errorf("%s: IsUnicast=%v IsMulticast=%v，必须互斥", id, id.IsUnicast(), id.IsMulticast())
	}
	if id.IsGlobal() == id.IsLocal() {
		t.Errorf("%s: IsGlobal=%v IsLocal=%v，必须互斥", id, id.IsGlobal(), id.IsLocal())
	}
}

func FuzzParseEUI48(f *testing.F) {
	seeds := []string{
		"00:11:22:33:44:55",
		"00-1B-44-11-3A-B7",
		"001b.4411.3ab7",
		"001122334455",
		"01:00:5E:00:00:01",
		"02:11:22:33:44:55",
		"ff:ff:ff:ff:ff:ff",
		"00:00:00:00:00:00",
		"",
		"invalid",
		"00:11:22",
		"00:11:22:33:44:55:66:77",
		"  00:11:22:33:44:55",
		"1:23:45:67:89:ab",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		strict, err := ParseEUI48(s)
		silent := EUI48FromString(s)

		// 宽容构造与严格解析接受同一集合
		if err != nil {
			if silent != (EUI48{}) {
				t.Errorf("FromString(%q) = %v，Parse 失败时必须返回零值", s, silent)
			}
			return
		}
		if silent != strict {
			t.Errorf("FromString(%q) = %v, Parse = %v", s, silent, strict)
		}

		// 文本入口只产出注册位 CLEAR 的值
		if strict.IsLocal() {
			t.Errorf("ParseEUI48(%q) 产出本地管理值 %v", s, strict)
		}
		assertBitExclusivity(t, strict)

		// 规范渲染往返还原
		again, err := ParseEUI48(strict.String())
		if err != nil {
			t.Errorf("round-trip parse failed: %q -> %v: %v", s, strict, err)
			return
		}
		if again != strict {
			t.Errorf("round-trip mismatch: %q -> %v -> %v", s, strict, again)
		}
	})
}

func FuzzParseForcedKinds(f *testing.F) {
	seeds := []string{
		"12:34:56",
		"10:34:56",
		"00:11:22:33:40",
		"12:34:56:78:9A",
		"10:20:30:40",
		"",
		"noise",
		"ffffffffff",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		// 强制型种类：成功即合规，重新解析自身渲染是恒等操作
		if o, err := ParseOUI24(s); err == nil {
			if o.IsLocal() {
				t.Errorf("ParseOUI24(%q) 注册位未被强制: %v", s, o)
			}
			if again, err := ParseOUI24(o.String()); err != nil || again != o {
				t.Errorf("OUI24 幂等性破坏: %v -> %v (%v)", o, again, err)
			}
		}

		if o, err := ParseOUI36(s); err == nil {
			if o.IsLocal() {
				t.Errorf("ParseOUI36(%q) 注册位未被强制: %v", s, o)
			}
			if b := o.Bytes5(); b[4]&0x0F != 0 {
				t.Errorf("ParseOUI36(%q) 尾部半字节未被强制: %v", s, o)
			}
			if again, err := ParseOUI36(o.String()); err != nil || again != o {
				t.Errorf("OUI36 幂等性破坏: %v -> %v (%v)", o, again, err)
			}
		}

		if m, err := ParseMAM(s); err == nil {
			if b := m.Bytes4(); b[3]&0x0F != 0 || m.IsLocal() {
				t.Errorf("ParseMAM(%q) 位强制不完整: %v", s, m)
			}
		}

		if e, err := ParseEUI60(s); err == nil {
			if b := e.Bytes8(); b[7]&0x0F != 0 {
				t.Errorf("ParseEUI60(%q) 尾部半字节未被强制: %v", s, e)
			}
		}

		// 校验型种类：成功即位已合规
		if c, err := ParseCompanyID(s); err == nil && !c.IsLocal() {
			t.Errorf("ParseCompanyID(%q) 产出注册位 CLEAR 的值: %v", s, c)
		}
		if e, err := ParseModEUI64(s); err == nil && !e.IsLocal() {
			t.Errorf("ParseModEUI64(%q) 产出注册位 CLEAR 的值: %v", s, e)
		}
	})
}

func FuzzEUI48Raw(f *testing.F) {
	f.Add([]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})
	f.Add([]byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) != 6 {
			return
		}
		e := EUI48From6([6]byte(b))

		// 原始构造逐位保真
		if e.Bytes6() != [6]byte(b) {
			t.Errorf("EUI48From6(%v) = %v", b, e.Bytes6())
		}
		assertBitExclusivity(t, e)

		// 加宽保留前后缀并插入定值填充
		wide := e.EUI64().Bytes8()
		if wide[3] != 0xFF || wide[4] != 0xFF {
			t.Errorf("EUI64 填充字节错误: %v", wide)
		}
		mod := e.ModifiedEUI64().Bytes8()
		if mod[3] != 0xFF || mod[4] != 0xFE {
			t.Errorf("ModifiedEUI64 填充字节错误: %v", mod)
		}
		if mod[0] != b[0]^bitLocal {
			t.Errorf("ModifiedEUI64 注册位未取反: %02x -> %02x", b[0], mod[0])
		}
		for i := range 3 {
			if wide[i] != b[i] || wide[5+i] != b[3+i] {
				t.Errorf("EUI64 前后缀不保真: %v -> %v", b, wide)
			}
			if mod[5+i] != b[3+i] || (i > 0 && mod[i] != b[i]) {
				t.Errorf("ModifiedEUI64 前后缀不保真: %v -> %v", b, mod)
			}
		}
	})
}

func FuzzJSONRoundTrip(f *testing.F) {
	seeds := []string{
		"00:11:22:33:44:55",
		"01:00:5E:00:00:01",
		"00:1B:44:11:3A:B7",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		e, err := ParseEUI48(s)
		if err != nil {
			return
		}

		data, err := json.Marshal(e)
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", e, err)
			return
		}

		var back EUI48
		if err := json.Unmarshal(data, &back); err != nil {
			t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
			return
		}

		// 有效值保真；无效值收敛到零值
		if e.IsValid() {
			if back != e {
				t.Errorf("JSON round-trip mismatch: %v -> %s -> %v", e, data, back)
			}
		} else if back != (EUI48{}) {
			t.Errorf("无效值 JSON 往返未收敛到零值: %v -> %s -> %v", e, data, back)
		}
	})
}
