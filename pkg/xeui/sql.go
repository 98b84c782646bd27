package xeui

import (
	"database/sql/driver"
	"fmt"
)

// 三种地址形态（EUI-48/EUI-64/Modified EUI-64）可直接入库：
// Value 输出规范文本、无效值输出 NULL；Scan 接受文本、
// 对应定宽的二进制与 NULL。块标识与 CID/CDI 种类不提供 SQL 集成，
// 业务上入库的是地址，不是注册产品。

// Value 实现 [database/sql/driver.Valuer]。
// 输出规范文本，无效值返回 nil（SQL NULL）。
func (e EUI48) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, nil
	}
	return e.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 6 字节二进制）、nil 输入。
// 6 字节 []byte 视为 BINARY(6) 列的原始字节；文本形态最短 12 字符，
// 与二进制宽度不冲突。对 nil 接收者返回 [ErrNilReceiver]。
func (e *EUI48) Scan(src any) error {
	if e == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*e = EUI48{}
		return nil
	case string:
		if v == "" {
			*e = EUI48{}
			return nil
		}
		parsed, err := ParseEUI48(v)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*e = EUI48{}
			return nil
		}
		if len(v) == 6 {
			copy(e.octets[:], v)
			return nil
		}
		parsed, err := ParseEUI48(string(v))
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}

// Value 实现 [database/sql/driver.Valuer]。
// 输出规范文本，无效值返回 nil（SQL NULL）。
func (e EUI64) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, nil
	}
	return e.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 8 字节二进制）、nil 输入。
// 8 字节 []byte 视为 BINARY(8) 列的原始字节；文本形态最短 16 字符。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (e *EUI64) Scan(src any) error {
	if e == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*e = EUI64{}
		return nil
	case string:
		if v == "" {
			*e = EUI64{}
			return nil
		}
		parsed, err := ParseEUI64(v)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*e = EUI64{}
			return nil
		}
		if len(v) == 8 {
			copy(e.octets[:], v)
			return nil
		}
		parsed, err := ParseEUI64(string(v))
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}

// Value 实现 [database/sql/driver.Valuer]。
// 输出规范文本，无效值返回 nil（SQL NULL）。
func (e ModEUI64) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, nil
	}
	return e.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 8 字节二进制）、nil 输入。
// 二进制路径原样复制、不校验注册位，与 [ModEUI64From8] 一致；
// 文本路径经 [ParseModEUI64] 校验。对 nil 接收者返回 [ErrNilReceiver]。
func (e *ModEUI64) Scan(src any) error {
	if e == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*e = ModEUI64{}
		return nil
	case string:
		if v == "" {
			*e = ModEUI64{}
			return nil
		}
		parsed, err := ParseModEUI64(v)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*e = ModEUI64{}
			return nil
		}
		if len(v) == 8 {
			copy(e.octets[:], v)
			return nil
		}
		parsed, err := ParseModEUI64(string(v))
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}
