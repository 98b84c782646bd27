// euictl 是 IEEE 标识符类型族（EUI/OUI/MA 块/CID/CDI）的命令行工具。
//
// 用法:
//
//	euictl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (.yaml/.yml/.json)，
//	               未指定时读取 EUICTL_CONFIG 环境变量
//
// 命令:
//
//	info <标识符>     解析标识符并显示种类、位属性与各渲染形式
//	fmt <标识符>      按指定格式重新渲染标识符
//	convert <标识符>  在相关种类间转换
//	help              显示帮助信息
//
// 种类推断:
//
//	未指定 --kind 时按提取出的字节宽度推断种类，同宽度内取最常见者
//	（3 字节 -> OUI-24，4 字节 -> MA-M，5 字节 -> OUI-36，
//	6 字节 -> EUI-48，8 字节 -> EUI-64）。需要其他种类时用 --kind
//	明确指定，例如 --kind cid 或 --kind modeui64。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（解析失败、标识符无效、不支持的转换）
//	2: 参数错误（未知种类/格式名、缺少参数、未知命令等）
//
// 示例:
//
//	euictl info 00:1B:44:11:3A:B7             # 按宽度推断为 EUI-48
//	euictl info --kind cid 12:34:56           # 明确指定 CID 种类
//	euictl fmt --format dot 00-1B-44-11-3A-B7 # 输出 001B.4411.3AB7
//	euictl fmt --format bare --lower 00:1B:44:11:3A:B7
//	euictl convert --to modeui64 00:1B:44:11:3A:B7
//	euictl -c euictl.yaml fmt 001B44113AB7    # 从配置文件读取默认格式
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "euictl",
		Usage:   "IEEE 标识符解析、格式化与转换工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"EUIKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `euictl 操作 IEEE 标识符类型族：EUI-48/60/64、Modified EUI-64、
OUI-24/36、MA-L/M/S 地址块、CID 以及 CDI-32/40。

主要命令:
  info                解析标识符，显示种类、单播/组播、全局/本地与各渲染形式
    --kind, -k        明确指定种类（跳过宽度推断）
  fmt                 按指定格式渲染
    --format, -f      colon / dash / dot / bare（默认 colon）
    --lower, -l       小写输出
  convert             种类间转换
    --to, -t          目标种类（eui64 / modeui64 / mal / oui24 / mas / oui36）

支持的转换:
  EUI-48  -> EUI-64、Modified EUI-64（加宽，插入填充字节）
  OUI-24 <-> MA-L（同数值的登记视角互换）
  OUI-36 <-> MA-S（同数值的登记视角互换）`,
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
