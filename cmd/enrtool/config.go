
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
	"bufio"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"github.com/yinchengtsinghua/go-enr/crypto"
	"github.com/yinchengtsinghua/go-enr/p2p/enode"
	"github.com/yinchengtsinghua/go-enr/p2p/enr"
)

//这些设置确保toml键使用与go结构字段相同的名称。
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

//recordConfig描述要创建的记录。
type recordConfig struct {
	Seq  uint64 `toml:",omitempty"`
	IP   string `toml:",omitempty"`
	UDP  int    `toml:",omitempty"`
	TCP  int    `toml:",omitempty"`
	IP6  string `toml:",omitempty"`
	UDP6 int    `toml:",omitempty"`
	TCP6 int    `toml:",omitempty"`

	//Entries保存附加条目，值为十六进制字符串。
	Entries map[string]string `toml:",omitempty"`
}

func loadConfig(file string, cfg *recordConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
//将文件名添加到具有行号的错误中。
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

//buildRecord用配置创建记录并签名。
func buildRecord(cfg *recordConfig, key *ecdsa.PrivateKey) (*enr.Record, error) {
	extra := make(map[string][]byte, len(cfg.Entries))
	for k, v := range cfg.Entries {
		b, err := hex.DecodeString(strings.TrimPrefix(v, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", k)
		}
		extra[k] = b
	}
	r, err := enr.New(string(enr.IDv4), crypto.CompressPubkey(&key.PublicKey), extra)
	if err != nil {
		return nil, err
	}
	if cfg.IP != "" {
		ip := net.ParseIP(cfg.IP).To4()
		if ip == nil {
			return nil, fmt.Errorf("invalid IPv4 address %q", cfg.IP)
		}
		r.Set(enr.IP(ip))
	}
	if cfg.IP6 != "" {
		ip := net.ParseIP(cfg.IP6)
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("invalid IPv6 address %q", cfg.IP6)
		}
		r.Set(enr.IPv6(ip))
	}
	for _, p := range []struct {
		port int
		e    func(uint16) enr.Entry
	}{
		{cfg.UDP, func(p uint16) enr.Entry { return enr.UDP(p) }},
		{cfg.TCP, func(p uint16) enr.Entry { return enr.TCP(p) }},
		{cfg.UDP6, func(p uint16) enr.Entry { return enr.UDP6(p) }},
		{cfg.TCP6, func(p uint16) enr.Entry { return enr.TCP6(p) }},
	} {
		if p.port < 0 || p.port > 65535 {
			return nil, fmt.Errorf("invalid port %d", p.port)
		}
		if p.port != 0 {
			r.Set(p.e(uint16(p.port)))
		}
	}
	if cfg.Seq != 0 {
		r.SetSeq(cfg.Seq)
	}
	if err := enode.SignV4(r, key); err != nil {
		return nil, err
	}
	return r, nil
}
