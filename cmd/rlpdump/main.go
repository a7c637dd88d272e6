
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2015 Go Ethereum作者
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

//rlpdump是一个很好的rlp数据打印机。
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/yinchengtsinghua/go-enr/rlp"
)

var (
	hexMode = flag.String("hex", "", "dump given hex data")
	noASCII = flag.Bool("noascii", false, "don't print ASCII strings readably")
	single  = flag.Bool("single", false, "print only the first element, discard the rest")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[-noascii] [-hex <data>] [filename]")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Dumps RLP data from the given file in readable form.
If the filename is omitted, data is read from stdin.`)
	}
}

func main() {
	flag.Parse()

	var data []byte
	switch {
	case *hexMode != "":
		b, err := hex.DecodeString(strings.TrimPrefix(*hexMode, "0x"))
		if err != nil {
			die(err)
		}
		data = b

	case flag.NArg() == 0:
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}
		data = b

	case flag.NArg() == 1:
		b, err := ioutil.ReadFile(flag.Arg(0))
		if err != nil {
			die(err)
		}
		data = b

	default:
		fmt.Fprintln(os.Stderr, "Error: too many arguments")
		flag.Usage()
		os.Exit(2)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := dumpAll(out, data, *single, *noASCII); err != nil {
		out.Flush()
		die(err)
	}
}

//dumpAll打印data中的每个顶层值，每个值后换行。
func dumpAll(w io.Writer, data []byte, single, noASCII bool) error {
	for len(data) > 0 {
		rest, err := dump(w, data, 0, noASCII)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		if single {
			break
		}
		data = rest
	}
	return nil
}

func dump(w io.Writer, b []byte, depth int, noASCII bool) (rest []byte, err error) {
	kind, content, rest, err := rlp.Split(b)
	if err != nil {
		return b, err
	}
	switch kind {
	case rlp.Byte, rlp.String:
		if len(content) == 0 || !noASCII && isASCII(content) {
			fmt.Fprintf(w, "%s%q", ws(depth), content)
		} else {
			fmt.Fprintf(w, "%s%x", ws(depth), content)
		}
	case rlp.List:
		if len(content) == 0 {
			fmt.Fprint(w, ws(depth)+"[]")
			break
		}
		fmt.Fprintln(w, ws(depth)+"[")
		for i := 0; len(content) > 0; i++ {
			if i > 0 {
				fmt.Fprint(w, ",\n")
			}
			if content, err = dump(w, content, depth+1, noASCII); err != nil {
				return b, err
			}
		}
		fmt.Fprint(w, "\n"+ws(depth)+"]")
	}
	return rest, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}

func ws(n int) string {
	return strings.Repeat("  ", n)
}

func die(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}
