package xeui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCDI32(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [4]byte
		wantErr error
	}{
		// OUI 体系派生：注册位必须为 CLEAR
		{"valid", "00:11:22:33", [4]byte{0x00, 0x11, 0x22, 0x33}, nil},
		{"valid_bare", "00112233", [4]byte{0x00, 0x11, 0x22, 0x33}, nil},

		{"bit_set", "02:11:22:33", [4]byte{}, ErrRegistrationBit},

		{"empty", "", [4]byte{}, ErrEmpty},
		// 4 字节种类文本上限 11 字符
		{"too_long", "00:11:22:33:", [4]byte{}, ErrTooLong},
		{"too_few", "00:11:22", [4]byte{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCDI32(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, CDI32{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bytes4())
		})
	}
}

func TestCDI32From4(t *testing.T) {
	// 原始构造不做位处理
	in := [4]byte{0x02, 0x11, 0x22, 0x33}
	c := CDI32From4(in)
	assert.Equal(t, in, c.Bytes4())
	assert.True(t, c.IsLocal())
}

func TestCDI32FromOUI24(t *testing.T) {
	o := OUI24FromString("00:11:22")
	c := CDI32FromOUI24(o, 0x7F)

	assert.Equal(t, [4]byte{0x00, 0x11, 0x22, 0x7F}, c.Bytes4())
	assert.Equal(t, "00:11:22:7F", c.String())
	assert.Equal(t, KindCDI32, c.Kind())
}

func TestParseCDI40(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [5]byte
		wantErr error
	}{
		{"valid", "00:11:22:33:44", [5]byte{0x00, 0x11, 0x22, 0x33, 0x44}, nil},

		{"bit_set", "02:11:22:33:44", [5]byte{}, ErrRegistrationBit},
		{"empty", "", [5]byte{}, ErrEmpty},
		{"too_long", "00:11:22:33:44:", [5]byte{}, ErrTooLong},
		{"too_few", "00:11:22:33", [5]byte{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCDI40(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, CDI40{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bytes5())
		})
	}
}

func TestCDI40FromOUI24(t *testing.T) {
	o := OUI24FromString("00:11:22")
	c := CDI40FromOUI24(o, [2]byte{0x44, 0x55})

	assert.Equal(t, [5]byte{0x00, 0x11, 0x22, 0x44, 0x55}, c.Bytes5())
	assert.Equal(t, "00:11:22:44:55", c.String())
}

func TestCDI40FromOUI36(t *testing.T) {
	o := OUI36FromString("00:11:22:33:40")

	tests := []struct {
		name string
		ext  byte
		want [5]byte
	}{
		// 4 位扩展与前缀尾部半字节合并
		{"plain", 0x0B, [5]byte{0x00, 0x11, 0x22, 0x33, 0x4B}},
		{"masked", 0xAB, [5]byte{0x00, 0x11, 0x22, 0x33, 0x4B}},
		{"zero", 0x00, [5]byte{0x00, 0x11, 0x22, 0x33, 0x40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CDI40FromOUI36(o, tt.ext).Bytes5())
		})
	}
}

func TestCDIFromString_Silent(t *testing.T) {
	assert.True(t, CDI32FromString("00:11:22:33").IsValid())
	assert.Equal(t, CDI32{}, CDI32FromString("02:11:22:33"))

	assert.True(t, CDI40FromString("00:11:22:33:44").IsValid())
	assert.Equal(t, CDI40{}, CDI40FromString("garbage input!"))
}
