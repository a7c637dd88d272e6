
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
	"fmt"
	"os"

	"github.com/yinchengtsinghua/go-enr/crypto"
	"github.com/yinchengtsinghua/go-enr/log"
	"github.com/yinchengtsinghua/go-enr/p2p/enode"
	"gopkg.in/urfave/cli.v1"
)

var (
	keyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "file containing the hex-encoded secp256k1 private key",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file describing the record entries",
	}
	ipFlag = cli.StringFlag{
		Name:  "ip",
		Usage: "IPv4 address (overrides config)",
	}
	udpFlag = cli.IntFlag{
		Name:  "udp",
		Usage: "UDP port (overrides config)",
	}
	tcpFlag = cli.IntFlag{
		Name:  "tcp",
		Usage: "TCP port (overrides config)",
	}
)

var commandNew = cli.Command{
	Name:  "new",
	Usage: "create and sign a node record",
	Description: `
Creates a v4 node record signed by the given key and prints its text form.
Entries come from the TOML file given by --config and from the endpoint flags.`,
	Flags: []cli.Flag{keyFlag, configFlag, ipFlag, udpFlag, tcpFlag},
	Action: func(ctx *cli.Context) error {
		keyfile := ctx.String(keyFlag.Name)
		if keyfile == "" {
			fatalf("--%s is required", keyFlag.Name)
		}
		key, err := crypto.LoadECDSA(keyfile)
		if err != nil {
			fatalf("Can't load key: %v", err)
		}

		var cfg recordConfig
		if file := ctx.String(configFlag.Name); file != "" {
			if err := loadConfig(file, &cfg); err != nil {
				fatalf("%v", err)
			}
		}
		if ctx.IsSet(ipFlag.Name) {
			cfg.IP = ctx.String(ipFlag.Name)
		}
		if ctx.IsSet(udpFlag.Name) {
			cfg.UDP = ctx.Int(udpFlag.Name)
		}
		if ctx.IsSet(tcpFlag.Name) {
			cfg.TCP = ctx.Int(tcpFlag.Name)
		}

		r, err := buildRecord(&cfg, key)
		if err != nil {
			fatalf("Can't create record: %v", err)
		}
		log.Debug("Created node record", "id", enode.PubkeyToIDV4(&key.PublicKey), "seq", r.Seq())
		fmt.Println(r.String())
		return nil
	},
}

var commandKeygen = cli.Command{
	Name:      "keygen",
	Usage:     "generate a new node key",
	ArgsUsage: "<keyfile>",
	Action: func(ctx *cli.Context) error {
		keyfile := ctx.Args().First()
		if keyfile == "" {
			fatalf("need key file name as argument")
		}
		if _, err := os.Stat(keyfile); err == nil {
			fatalf("Key file already exists at %s", keyfile)
		}
		key, err := crypto.GenerateKey()
		if err != nil {
			fatalf("Can't generate key: %v", err)
		}
		if err := crypto.SaveECDSA(keyfile, key); err != nil {
			fatalf("Can't save key: %v", err)
		}
		fmt.Println(enode.PubkeyToIDV4(&key.PublicKey))
		return nil
	},
}
