package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/euikit/pkg/xeui"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，run 统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断是否为 CLI 框架产生的参数类错误。
// urfave/cli 对未知命令返回 ExitCoder，flag 解析错误则是
// 标准库 flag 包的原始错误，只能按文案特征识别。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "invalid value") && strings.Contains(msg, "for flag")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInfoCommand(),
		createFmtCommand(),
		createConvertCommand(),
	}
}

// createInfoCommand 创建 info 子命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "解析标识符并显示种类与属性",
		ArgsUsage: "<identifier>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "标识符种类 (cid/oui24/oui36/mal/mam/mas/eui48/eui60/eui64/modeui64/cdi32/cdi40)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			return cmdInfo(cmd.Args().Slice(), stringSetting(cmd, "kind", cfg.Kind))
		},
	}
}

// createFmtCommand 创建 fmt 子命令。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "按指定格式渲染标识符",
		ArgsUsage: "<identifier>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "标识符种类（默认按宽度推断）",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式 (colon/dash/dot/bare)",
				Value:   "colon",
			},
			&cli.BoolFlag{
				Name:    "lower",
				Aliases: []string{"l"},
				Usage:   "小写输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			return cmdFmt(cmd.Args().Slice(),
				stringSetting(cmd, "kind", cfg.Kind),
				stringSetting(cmd, "format", cfg.Format),
				boolSetting(cmd, "lower", cfg.Lower))
		},
	}
}

// createConvertCommand 创建 convert 子命令。
func createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"conv"},
		Usage:     "在相关种类间转换标识符",
		ArgsUsage: "<identifier>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "源标识符种类（默认按宽度推断）",
			},
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "目标种类 (eui64/modeui64/mal/oui24/mas/oui36)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			return cmdConvert(cmd.Args().Slice(),
				stringSetting(cmd, "kind", cfg.Kind),
				cmd.String("to"))
		},
	}
}

// stringSetting 返回 flag 值；flag 未显式指定且配置文件提供了值时取配置值。
func stringSetting(cmd *cli.Command, name, cfgValue string) string {
	if !cmd.IsSet(name) && cfgValue != "" {
		return cfgValue
	}
	return cmd.String(name)
}

// boolSetting 返回 flag 值；flag 未显式指定时取配置值。
func boolSetting(cmd *cli.Command, name string, cfgValue bool) bool {
	if cmd.IsSet(name) {
		return cmd.Bool(name)
	}
	return cfgValue
}

// cmdInfo 解析标识符并打印种类、位属性与各渲染形式。
// 设计决策: 标识符可解析但无效（如全零）时仍打印信息，
// 但返回非零退出码（通过 exitError），使脚本能据此过滤无效值。
func cmdInfo(args []string, kindName string) error {
	if len(args) != 1 {
		return &usageError{msg: "info 命令需要且仅需要一个标识符参数"}
	}

	id, err := parseIdentifier(args[0], kindName)
	if err != nil {
		return err
	}

	printInfo(id)

	if !id.IsValid() {
		return &exitError{code: 1}
	}
	return nil
}

// printInfo 打印标识符的详细信息。
func printInfo(id xeui.Identifier) {
	fmt.Printf("种类: %v\n", id.Kind())
	fmt.Printf("规范: %s\n", id)
	fmt.Printf("短线: %s\n", id.FormatString(xeui.FormatDash))
	// 点分组要求偶数字节数，奇数宽度的种类不打印
	if id.Kind().OctetLen()%2 == 0 {
		fmt.Printf("点分: %s\n", id.FormatString(xeui.FormatDot))
	}
	fmt.Printf("无分隔: %s\n", id.FormatString(xeui.FormatBare))

	transport := "单播"
	if id.IsMulticast() {
		transport = "组播"
	}
	admin := "全局管理"
	if id.IsLocal() {
		admin = "本地管理"
	}
	valid := "是"
	if !id.IsValid() {
		valid = "否"
	}
	fmt.Printf("传输: %s\n", transport)
	fmt.Printf("管理: %s\n", admin)
	fmt.Printf("有效: %s\n", valid)
}

// cmdFmt 按指定格式渲染标识符。
func cmdFmt(args []string, kindName, formatName string, lower bool) error {
	if len(args) != 1 {
		return &usageError{msg: "fmt 命令需要且仅需要一个标识符参数"}
	}

	format, err := xeui.ParseFormat(formatName)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("未知格式 %q（可选: colon/dash/dot/bare）", formatName)}
	}
	if lower {
		format = format.Lower()
	}

	id, err := parseIdentifier(args[0], kindName)
	if err != nil {
		return err
	}

	fmt.Println(id.FormatString(format))
	return nil
}

// cmdConvert 在相关种类间转换标识符。
func cmdConvert(args []string, kindName, target string) error {
	if len(args) != 1 {
		return &usageError{msg: "convert 命令需要且仅需要一个标识符参数"}
	}
	if target == "" {
		return &usageError{msg: "convert 命令需要 --to 参数指定目标种类"}
	}

	targetKind, err := xeui.ParseKind(target)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("未知目标种类 %q", target)}
	}

	id, err := parseIdentifier(args[0], kindName)
	if err != nil {
		return err
	}

	out, err := convert(id, targetKind)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

// parseIdentifier 解析标识符文本。
// kindName 非空时按指定种类严格解析，否则按宽度推断。
func parseIdentifier(s, kindName string) (xeui.Identifier, error) {
	if kindName != "" {
		kind, err := xeui.ParseKind(kindName)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("未知种类 %q", kindName)}
		}
		return parseAs(kind, s)
	}
	return guessParse(s)
}

// guessParse 在未指定种类时按宽度推断：逐一尝试各存储宽度，
// 宽度内按常见程度取首个解析成功的种类。
// 文本长度上限使各宽度互斥，推断结果是确定的。
func guessParse(s string) (xeui.Identifier, error) {
	var firstErr error
	for _, n := range []int{3, 4, 5, 6, 8} {
		for _, kind := range xeui.KindsForOctetLen(n) {
			id, err := parseAs(kind, s)
			if err == nil {
				return id, nil
			}
			// 长度不匹配是宽度试探的正常失败，只保留实质性错误
			if firstErr == nil && !errors.Is(err, xeui.ErrTooLong) && !errors.Is(err, xeui.ErrInvalidLength) {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fmt.Errorf("无法识别标识符 %q", s)
}

// parseAs 按指定种类严格解析。
func parseAs(kind xeui.Kind, s string) (xeui.Identifier, error) {
	switch kind {
	case xeui.KindCompanyID:
		return xeui.ParseCompanyID(s)
	case xeui.KindOUI24:
		return xeui.ParseOUI24(s)
	case xeui.KindOUI36:
		return xeui.ParseOUI36(s)
	case xeui.KindMAL:
		return xeui.ParseMAL(s)
	case xeui.KindMAM:
		return xeui.ParseMAM(s)
	case xeui.KindMAS:
		return xeui.ParseMAS(s)
	case xeui.KindEUI48:
		return xeui.ParseEUI48(s)
	case xeui.KindEUI60:
		return xeui.ParseEUI60(s)
	case xeui.KindEUI64:
		return xeui.ParseEUI64(s)
	case xeui.KindModEUI64:
		return xeui.ParseModEUI64(s)
	case xeui.KindCDI32:
		return xeui.ParseCDI32(s)
	case xeui.KindCDI40:
		return xeui.ParseCDI40(s)
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的种类: %v", kind)}
	}
}

// convert 执行种类间转换。仅支持语义明确的转换对：
// EUI-48 加宽，以及 MA-L/OUI-24、MA-S/OUI-36 的登记视角互换。
func convert(id xeui.Identifier, target xeui.Kind) (xeui.Identifier, error) {
	if id.Kind() == target {
		return id, nil
	}

	switch src := id.(type) {
	case xeui.EUI48:
		switch target {
		case xeui.KindEUI64:
			return src.EUI64(), nil
		case xeui.KindModEUI64:
			return src.ModifiedEUI64(), nil
		}
	case xeui.OUI24:
		if target == xeui.KindMAL {
			return src.AsMAL(), nil
		}
	case xeui.MAL:
		if target == xeui.KindOUI24 {
			return src.AsOUI24(), nil
		}
	case xeui.OUI36:
		if target == xeui.KindMAS {
			return src.AsMAS(), nil
		}
	case xeui.MAS:
		if target == xeui.KindOUI36 {
			return src.AsOUI36(), nil
		}
	}

	return nil, fmt.Errorf("不支持的转换: %v -> %v", id.Kind(), target)
}
