
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2019 Go Ethereum作者
//此文件是Go以太坊库的一部分。
//
//Go-Ethereum库是免费软件：您可以重新分发它和/或修改
//根据GNU发布的较低通用公共许可证的条款
//自由软件基金会，或者许可证的第3版，或者
//（由您选择）任何更高版本。
//
//Go以太坊图书馆的发行目的是希望它会有用，
//但没有任何保证；甚至没有
//适销性或特定用途的适用性。见
//GNU较低的通用公共许可证，了解更多详细信息。
//
//你应该收到一份GNU较低级别的公共许可证副本
//以及Go以太坊图书馆。如果没有，请参见<http://www.gnu.org/licenses/>。

package enr

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"
	ma "github.com/multiformats/go-multiaddr"
)

//IP4UDP返回记录的IPv4 UDP端点，记录中没有“ip”或“udp”条目时返回nil。
func (r *Record) IP4UDP() ma.Multiaddr {
	return r.endpoint(ma.P_IP4, ma.P_UDP)
}

//IP4TCP返回记录的IPv4 TCP端点。
func (r *Record) IP4TCP() ma.Multiaddr {
	return r.endpoint(ma.P_IP4, ma.P_TCP)
}

//IP6UDP返回记录的IPv6 UDP端点。
func (r *Record) IP6UDP() ma.Multiaddr {
	return r.endpoint(ma.P_IP6, ma.P_UDP)
}

//IP6TCP返回记录的IPv6 TCP端点。
func (r *Record) IP6TCP() ma.Multiaddr {
	return r.endpoint(ma.P_IP6, ma.P_TCP)
}

//SetUDP把“/ip4/<addr>/udp/<port>”或“/ip6/<addr>/udp/<port>”形式的端点
//写入记录。地址族决定写入ip/udp还是ip6/udp6条目。
func (r *Record) SetUDP(addr ma.Multiaddr) error {
	return r.setEndpoint(addr, ma.P_UDP)
}

//SetTCP把TCP端点写入记录，规则与SetUDP相同。
func (r *Record) SetTCP(addr ma.Multiaddr) error {
	return r.setEndpoint(addr, ma.P_TCP)
}

//endpointKeys返回地址族和传输协议对应的地址键与端口键。
func endpointKeys(family, transport int) (ipkey, portkey string) {
	switch {
	case family == ma.P_IP4 && transport == ma.P_UDP:
		return "ip", "udp"
	case family == ma.P_IP4 && transport == ma.P_TCP:
		return "ip", "tcp"
	case family == ma.P_IP6 && transport == ma.P_UDP:
		return "ip6", "udp6"
	case family == ma.P_IP6 && transport == ma.P_TCP:
		return "ip6", "tcp6"
	}
	panic(fmt.Sprintf("enr: no endpoint keys for protocols %d/%d", family, transport))
}

func (r *Record) endpoint(family, transport int) ma.Multiaddr {
	ipkey, portkey := endpointKeys(family, transport)
	var ip, rawport []byte
	if r.Load(WithEntry(ipkey, &ip)) != nil || r.Load(WithEntry(portkey, &rawport)) != nil {
		return nil
	}
	if (family == ma.P_IP4 && len(ip) != net.IPv4len) || (family == ma.P_IP6 && len(ip) != net.IPv6len) {
		return nil
	}
	port, err := decodePort(rawport)
	if err != nil {
		return nil
	}
	s := fmt.Sprintf("/%s/%s/%s/%d", ma.ProtocolWithCode(family).Name, net.IP(ip), ma.ProtocolWithCode(transport).Name, port)
	addr, err := ma.NewMultiaddr(s)
	if err != nil {
		return nil
	}
	return addr
}

func (r *Record) setEndpoint(addr ma.Multiaddr, transport int) error {
	if addr == nil {
		return errors.Wrap(ErrInvalidEndpoint, "nil address")
	}
	protos := addr.Protocols()
	if len(protos) != 2 {
		return errors.Wrapf(ErrInvalidEndpoint, "%v: want address and %s segments", addr, ma.ProtocolWithCode(transport).Name)
	}
	family := protos[0].Code
	if family != ma.P_IP4 && family != ma.P_IP6 {
		return errors.Wrapf(ErrInvalidEndpoint, "%v: first segment is not an IP address", addr)
	}
	if protos[1].Code != transport {
		return errors.Wrapf(ErrInvalidEndpoint, "%v: want %s transport", addr, ma.ProtocolWithCode(transport).Name)
	}
	ipstr, err := addr.ValueForProtocol(family)
	if err != nil {
		return errors.Wrap(ErrInvalidEndpoint, err.Error())
	}
	portstr, err := addr.ValueForProtocol(transport)
	if err != nil {
		return errors.Wrap(ErrInvalidEndpoint, err.Error())
	}
	ip := net.ParseIP(ipstr)
	port, err := strconv.ParseUint(portstr, 10, 16)
	if ip == nil || err != nil {
		return errors.Wrapf(ErrInvalidEndpoint, "%v", addr)
	}
	if family == ma.P_IP4 {
		ip = ip.To4()
	} else {
		//映射的IPv4地址应写入ip条目。
		if ip.To4() != nil {
			return errors.Wrapf(ErrInvalidEndpoint, "%v: IPv4-mapped address in ip6", addr)
		}
		ip = ip.To16()
	}
	ipkey, portkey := endpointKeys(family, transport)
	r.SetEntry(ipkey, ip)
	r.SetEntry(portkey, encodePort(uint16(port)))
	return nil
}
