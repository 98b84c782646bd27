package xeui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 长度上限作用在原始输入上且先于提取，分隔符替换不改变结果。
func TestScanExact_LengthBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// 6 字节：恰好 3n-1 = 17 字符
		{"at_limit", "00:11:22:33:44:55", nil},
		{"over_limit", "00:11:22:33:44:55x", ErrTooLong},
		// 空白同样计入长度
		{"padded_over", " 00:11:22:33:44:55", ErrTooLong},
		// 短于上限但带空白仍可解析
		{"padded_bare", " 001122334455 ", nil},
		{"trailing_space", "001122334455 ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst [6]byte
			err := scanExact(tt.input, dst[:])
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, dst)
		})
	}
}

func TestScanExact_SeparatorAgnostic(t *testing.T) {
	// 任何噪声都只是分隔：下划线、斜杠、汉字间隔都无所谓
	inputs := []string{
		"00:11:22",
		"00-11-22",
		"001122",
		"00_11_22",
		"00/11/22",
		"00 11 22",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			var dst [3]byte
			require.NoError(t, scanExact(s, dst[:]))
			assert.Equal(t, [3]byte{0x00, 0x11, 0x22}, dst)
		})
	}
}

func TestScanExact_LoneDigits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [3]byte
		wantErr error
	}{
		// 孤立单数字跳过后继续配对
		{"leading_lone", "1:234567", [3]byte{0x23, 0x45, 0x67}, nil},
		// 末尾孤立数字被丢弃导致缺字节
		{"trailing_lone", "12:34:5", [3]byte{}, ErrInvalidLength},
		{"middle_lone", "12:3:456", [3]byte{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst [3]byte
			err := scanExact(tt.input, dst[:])
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestScanExact_TooManyBytes(t *testing.T) {
	// 字节数超出也报 ErrInvalidLength（长度上限内塞入过多紧凑对）
	var dst [3]byte
	err := scanExact("00112233", dst[:])
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestCheckRegistration(t *testing.T) {
	tests := []struct {
		name      string
		b0        byte
		wantLocal bool
		wantErr   bool
	}{
		{"local_ok", 0x02, true, false},
		{"local_missing", 0x00, true, true},
		{"global_ok", 0x00, false, false},
		{"global_violated", 0x02, false, true},
		// 其余位不参与判断
		{"multicast_ignored", 0x01, false, false},
		{"multicast_local", 0x03, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRegistration(tt.b0, tt.wantLocal)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRegistrationBit)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// 每个种类的宽容构造和严格解析接受完全相同的输入集合。
func TestSilentStrictEquivalence(t *testing.T) {
	inputs := []string{
		"", "x", "00", "junk",
		"12:34:56", "10:34:56", "00:1B:44",
		"10:20:30:40", "00:11:22:33",
		"00:11:22:33:40", "70:11:22:33:44",
		"00:11:22:33:44:55", "02:11:22:33:44:55", "01:00:5E:00:00:01",
		"00:11:22:33:44:55:66:77", "02:11:22:FF:FE:33:44:55",
		"ff:ff:ff:ff:ff:ff:ff:ff",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			{
				strict, err := ParseCompanyID(s)
				silent := CompanyIDFromString(s)
				if err != nil {
					assert.Equal(t, CompanyID{}, silent)
				} else {
					assert.Equal(t, strict, silent)
				}
			}
			{
				strict, err := ParseOUI24(s)
				silent := OUI24FromString(s)
				if err != nil {
					assert.Equal(t, OUI24{}, silent)
				} else {
					assert.Equal(t, strict, silent)
				}
			}
			{
				strict, err := ParseMAM(s)
				silent := MAMFromString(s)
				if err != nil {
					assert.Equal(t, MAM{}, silent)
				} else {
					assert.Equal(t, strict, silent)
				}
			}
			{
				strict, err := ParseEUI48(s)
				silent := EUI48FromString(s)
				if err != nil {
					assert.Equal(t, EUI48{}, silent)
				} else {
					assert.Equal(t, strict, silent)
				}
			}
			{
				strict, err := ParseModEUI64(s)
				silent := ModEUI64FromString(s)
				if err != nil {
					assert.Equal(t, ModEUI64{}, silent)
				} else {
					assert.Equal(t, strict, silent)
				}
			}
		})
	}
}
