
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2019 Go Ethereum作者
//此文件是Go以太坊的一部分。
//
//Go以太坊是免费软件：您可以重新发布和/或修改它
//根据GNU通用公共许可证的条款
//自由软件基金会，或者许可证的第3版，或者
//（由您选择）任何更高版本。
//
//Go以太坊的分布希望它会有用，
//但没有任何保证；甚至没有
//适销性或特定用途的适用性。见
//GNU通用公共许可证了解更多详细信息。
//
//你应该已经收到一份GNU通用公共许可证的副本
//一起去以太坊吧。如果没有，请参见<http://www.gnu.org/licenses/>。

//enrtool是一个解码、检查和创建以太坊节点记录的命令行工具。
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/yinchengtsinghua/go-enr/log"
	"gopkg.in/urfave/cli.v1"
)

var (
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (trace, debug, info, warn, error, crit)",
		Value: "info",
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "enrtool"
	app.Usage = "Ethereum Node Record utility"
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []cli.Command{
		commandDump,
		commandID,
		commandNew,
		commandKeygen,
	}
	app.Before = func(ctx *cli.Context) error {
		lvl, err := log.LvlFromString(ctx.GlobalString(verbosityFlag.Name))
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//fatalf格式化消息到标准错误并退出程序。
//如果标准输出也重定向到同一个文件，则只打印一次。
func fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
//下面的samefile检查在Windows上不起作用。
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
