
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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/olekukonko/tablewriter"
	"github.com/yinchengtsinghua/go-enr/p2p/enode"
	"github.com/yinchengtsinghua/go-enr/p2p/enr"
	"github.com/yinchengtsinghua/go-enr/rlp"
	"gopkg.in/urfave/cli.v1"
)

var (
	hexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "input is hex-encoded binary record",
	}
)

var commandDump = cli.Command{
	Name:      "dump",
	Usage:     "decode, verify and print a node record",
	ArgsUsage: "<enr:... | file>",
	Description: `
Dumps the content of a node record. The argument can be the text form
of the record or the name of a file containing the text form. With --hex,
the argument or file content is the hex-encoded binary form.`,
	Flags: []cli.Flag{hexFlag},
	Action: func(ctx *cli.Context) error {
		n, err := loadNode(ctx.Args().First(), ctx.Bool(hexFlag.Name))
		if err != nil {
			fatalf("Can't load record: %v", err)
		}
		dumpRecord(os.Stdout, n)
		return nil
	},
}

var commandID = cli.Command{
	Name:      "id",
	Usage:     "print the node ID of a record",
	ArgsUsage: "<enr:... | file>",
	Flags:     []cli.Flag{hexFlag},
	Action: func(ctx *cli.Context) error {
		n, err := loadNode(ctx.Args().First(), ctx.Bool(hexFlag.Name))
		if err != nil {
			fatalf("Can't load record: %v", err)
		}
		fmt.Println(n.ID())
		return nil
	},
}

//loadNode解码参数给出的记录。参数不是文本形式时先尝试作为文件名读取。
func loadNode(arg string, isHex bool) (*enode.Node, error) {
	if arg == "" {
		return nil, fmt.Errorf("need record or file name as argument")
	}
	input := arg
	if !strings.HasPrefix(arg, enr.TextPrefix) {
		if data, err := ioutil.ReadFile(arg); err == nil {
			input = strings.TrimSpace(string(data))
		} else if !isHex {
			return nil, err
		}
	}
	if isHex {
		b, err := hex.DecodeString(strings.TrimPrefix(input, "0x"))
		if err != nil {
			return nil, err
		}
		return enode.DecodeBytes(b)
	}
	return enode.Parse(input)
}

//dumpRecord以表格形式打印记录。
func dumpRecord(w io.Writer, n *enode.Node) {
	r := n.Record()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.Append([]string{"node ID", n.ID().String()})
	table.Append([]string{"seq", fmt.Sprint(n.Seq())})
	table.Append([]string{"signature", hex.EncodeToString(r.Signature())})
	for _, ep := range []struct {
		name string
		addr ma.Multiaddr
	}{
		{"ip4/udp", r.IP4UDP()},
		{"ip4/tcp", r.IP4TCP()},
		{"ip6/udp", r.IP6UDP()},
		{"ip6/tcp", r.IP6TCP()},
	} {
		if ep.addr != nil {
			table.Append([]string{ep.name, ep.addr.String()})
		}
	}
	for _, k := range r.Keys() {
		raw, _ := r.RawEntry(k)
		table.Append([]string{"[" + k + "]", formatValue(raw)})
	}
	table.Render()
}

//formatValue打印条目值。可打印的字符串原样输出，
//列表输出其rlp编码，其他值输出十六进制。
func formatValue(raw rlp.RawValue) string {
	kind, content, _, err := rlp.Split(raw)
	switch {
	case err != nil:
		return "invalid: " + hex.EncodeToString(raw)
	case kind == rlp.List:
		return "list " + hex.EncodeToString(raw)
	case len(content) > 0 && isPrintable(content):
		return fmt.Sprintf("%q", content)
	default:
		return hex.EncodeToString(content)
	}
}

func isPrintable(b []byte) bool {
	for _, c := range string(b) {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) {
			return false
		}
	}
	return true
}
