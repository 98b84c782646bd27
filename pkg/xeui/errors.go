package xeui

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
// 仅严格解析（Parse* 系列）和编解码接口返回错误；
// 宽容构造（*FromString 系列）永不报错，失败以全零值表达。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xeui: empty input")

	// ErrTooLong 表示输入超出该种类的文本长度上限（n 字节种类为 3n-1 字符）。
	ErrTooLong = errors.New("xeui: input too long")

	// ErrInvalidLength 表示提取出的字节数与该种类的定宽不符。
	ErrInvalidLength = errors.New("xeui: invalid length")

	// ErrRegistrationBit 表示注册位与该种类的约定不符
	//（如 CompanyID 要求 SET、EUI-48 要求 CLEAR）。
	ErrRegistrationBit = errors.New("xeui: registration bit mismatch")

	// ErrInvalidFormat 表示编解码输入的格式无效（非法 JSON、不支持的 SQL 类型等）。
	ErrInvalidFormat = errors.New("xeui: invalid format")

	// ErrUnknownKind 表示种类名称无法识别。
	ErrUnknownKind = errors.New("xeui: unknown kind")

	// ErrUnknownFormat 表示格式名称无法识别。
	ErrUnknownFormat = errors.New("xeui: unknown format")

	// ErrNilReceiver 表示对 nil 接收者调用了反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")
)
