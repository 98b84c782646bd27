package xeui

import (
	"fmt"

	"github.com/omeyang/euikit/internal/hexscan"
)

// scanExact 从 s 中提取恰好 len(dst) 个字节写入 dst。
//
// 所有种类共享两条限制：原始输入长度不超过 3n-1 个字符（n 字节的
// 规范冒号形式长度），提取出的字节数恰好等于 n。长度检查先于提取、
// 作用在原始输入上，前后空白同样计入长度。
//
// 分隔符不设任何要求：提取器跳过一切非十六进制数字对的噪声，
// 孤立的末尾单数字被丢弃（详见 internal/hexscan）。
func scanExact(s string, dst []byte) error {
	n := len(dst)
	if s == "" {
		return ErrEmpty
	}
	if maxLen := 3*n - 1; len(s) > maxLen {
		return fmt.Errorf("%w: %d-byte kind takes at most %d characters, got %d", ErrTooLong, n, maxLen, len(s))
	}

	count := 0
	for b := range hexscan.Scan(s) {
		if count < n {
			dst[count] = b
		}
		count++
	}
	if count != n {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, n, count)
	}
	return nil
}

// checkRegistration 校验首字节的注册位。
// wantLocal 为 true 要求 SET（本地管理），为 false 要求 CLEAR（全局管理）。
func checkRegistration(b0 byte, wantLocal bool) error {
	if local := b0&bitLocal != 0; local != wantLocal {
		if wantLocal {
			return fmt.Errorf("%w: must be set (locally administered)", ErrRegistrationBit)
		}
		return fmt.Errorf("%w: must be clear (universally administered)", ErrRegistrationBit)
	}
	return nil
}
