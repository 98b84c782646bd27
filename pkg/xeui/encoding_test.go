package xeui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalText(t *testing.T) {
	tests := []struct {
		name string
		id   interface{ MarshalText() ([]byte, error) }
		want string
	}{
		{"eui48", EUI48FromString("00:11:22:33:44:55"), "00:11:22:33:44:55"},
		{"cid", CompanyIDFromString("12:34:56"), "12:34:56"},
		{"oui36", OUI36FromString("00:11:22:33:40"), "00:11:22:33:40"},
		{"modeui64", ModEUI64FromString("02:11:22:FF:FE:33:44:55"), "02:11:22:FF:FE:33:44:55"},

		// 无效值输出空串，保证往返后回到零值
		{"zero_eui48", EUI48{}, ""},
		{"zero_cdi32", CDI32{}, ""},
		{"fill_eui64", EUI64From8([8]byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var e EUI48
		require.NoError(t, e.UnmarshalText([]byte("00:11:22:33:44:55")))
		assert.Equal(t, "00:11:22:33:44:55", e.String())
	})

	t.Run("empty_resets", func(t *testing.T) {
		e := EUI48FromString("00:11:22:33:44:55")
		require.NoError(t, e.UnmarshalText(nil))
		assert.Equal(t, EUI48{}, e)
	})

	t.Run("strict_errors_propagate", func(t *testing.T) {
		var e EUI48
		assert.ErrorIs(t, e.UnmarshalText([]byte("02:11:22:33:44:55")), ErrRegistrationBit)
		assert.ErrorIs(t, e.UnmarshalText([]byte("00:11")), ErrInvalidLength)
	})

	t.Run("forced_kind_normalizes", func(t *testing.T) {
		var o OUI24
		require.NoError(t, o.UnmarshalText([]byte("12:34:56")))
		assert.Equal(t, "10:34:56", o.String())
	})

	t.Run("nil_receiver", func(t *testing.T) {
		var e *EUI48
		assert.ErrorIs(t, e.UnmarshalText([]byte("00:11:22:33:44:55")), ErrNilReceiver)

		var c *CompanyID
		assert.ErrorIs(t, c.UnmarshalText([]byte("12:34:56")), ErrNilReceiver)
	})
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		id   json.Marshaler
		want string
	}{
		{"eui48", EUI48FromString("00:11:22:33:44:55"), `"00:11:22:33:44:55"`},
		{"cid", CompanyIDFromString("12:34:56"), `"12:34:56"`},
		{"zero_eui48", EUI48{}, `""`},
		{"zero_mas", MAS{}, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var e EUI48
		require.NoError(t, json.Unmarshal([]byte(`"00:11:22:33:44:55"`), &e))
		assert.Equal(t, "00:11:22:33:44:55", e.String())
	})

	t.Run("null_resets", func(t *testing.T) {
		e := EUI48FromString("00:11:22:33:44:55")
		require.NoError(t, json.Unmarshal([]byte(`null`), &e))
		assert.Equal(t, EUI48{}, e)
	})

	t.Run("null_direct", func(t *testing.T) {
		e := EUI48FromString("00:11:22:33:44:55")
		require.NoError(t, e.UnmarshalJSON([]byte("null")))
		assert.Equal(t, EUI48{}, e)
	})

	t.Run("empty_string_resets", func(t *testing.T) {
		e := EUI48FromString("00:11:22:33:44:55")
		require.NoError(t, json.Unmarshal([]byte(`""`), &e))
		assert.Equal(t, EUI48{}, e)
	})

	t.Run("non_string_rejected", func(t *testing.T) {
		var e EUI48
		assert.ErrorIs(t, e.UnmarshalJSON([]byte(`123`)), ErrInvalidFormat)
		assert.ErrorIs(t, e.UnmarshalJSON([]byte(`{`)), ErrInvalidFormat)
	})

	t.Run("strict_errors_propagate", func(t *testing.T) {
		var e EUI48
		assert.ErrorIs(t, e.UnmarshalJSON([]byte(`"02:11:22:33:44:55"`)), ErrRegistrationBit)

		var c CompanyID
		assert.ErrorIs(t, c.UnmarshalJSON([]byte(`"10:34:56"`)), ErrRegistrationBit)
	})

	t.Run("nil_receiver", func(t *testing.T) {
		var e *EUI64
		assert.ErrorIs(t, e.UnmarshalJSON([]byte(`"00:11:22:33:44:55:66:77"`)), ErrNilReceiver)
	})
}

func TestJSON_StructRoundTrip(t *testing.T) {
	type record struct {
		MAC    EUI48     `json:"mac"`
		Vendor OUI24     `json:"vendor"`
		CID    CompanyID `json:"cid,omitempty"`
		IfID   ModEUI64  `json:"ifid"`
	}

	in := record{
		MAC:    EUI48FromString("00:1B:44:11:3A:B7"),
		Vendor: OUI24FromString("00:1B:44"),
		CID:    CompanyIDFromString("12:34:56"),
		IfID:   EUI48FromString("00:1B:44:11:3A:B7").ModifiedEUI64(),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mac":    "00:1B:44:11:3A:B7",
		"vendor": "00:1B:44",
		"cid":    "12:34:56",
		"ifid":   "02:1B:44:FF:FE:11:3A:B7"
	}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_InvalidRoundTripsToZero(t *testing.T) {
	// 无效值编码为 ""，解码回到零值：往返收敛而非保真
	in := struct {
		MAC EUI48 `json:"mac"`
	}{MAC: EUI48{}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"mac":""}`, string(data))

	var out struct {
		MAC EUI48 `json:"mac"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, EUI48{}, out.MAC)
}

// encoding/json 对 map key 走 TextMarshaler 路径。
func TestJSON_MapKey(t *testing.T) {
	m := map[EUI48]int{
		EUI48FromString("00:11:22:33:44:55"): 3,
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"00:11:22:33:44:55":3}`, string(data))

	var out map[EUI48]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, m, out)
}

func TestEncoding_AllKindsRoundTrip(t *testing.T) {
	// 每个种类走一次 JSON 往返，注册位合规的值必须精确还原
	t.Run("oui36", func(t *testing.T) {
		in := OUI36FromString("70:11:22:33:40")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out OUI36
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("mal", func(t *testing.T) {
		in := MALFromString("10:34:56")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out MAL
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("mam", func(t *testing.T) {
		in := MAMFromString("10:20:30:40")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out MAM
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("eui60", func(t *testing.T) {
		in := EUI60FromString("00:11:22:33:44:55:66:70")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out EUI60
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("eui64", func(t *testing.T) {
		in := EUI64FromString("02:11:22:33:44:55:66:77")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out EUI64
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("cdi32", func(t *testing.T) {
		in := CDI32FromString("00:11:22:33")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out CDI32
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("cdi40", func(t *testing.T) {
		in := CDI40FromString("00:11:22:33:44")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out CDI40
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}
