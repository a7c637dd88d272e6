
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
	"encoding/binary"
	"fmt"
	"net"

	"github.com/pkg/errors"
)

//条目由已知的节点记录条目类型实现。
//
//要定义要包含在节点记录中的新条目，
//创建满足此接口的Go类型。MarshalBinary返回的字节作为
//rlp字符串存入记录。
type Entry interface {
	ENRKey() string
	MarshalBinary() ([]byte, error)
}

//EntryDecoder由可以从记录中加载的条目指针实现。
type EntryDecoder interface {
	ENRKey() string
	UnmarshalBinary(data []byte) error
}

type generic struct {
	key   string
	value *[]byte
}

func (g generic) ENRKey() string { return g.key }

func (g generic) MarshalBinary() ([]byte, error) {
	return *g.value, nil
}

func (g generic) UnmarshalBinary(data []byte) error {
	*g.value = append([]byte{}, data...)
	return nil
}

//WithEntry用键名包装字节值。它可用于设置和加载任意值。
func WithEntry(k string, v *[]byte) interface {
	Entry
	EntryDecoder
} {
	return generic{key: k, value: v}
}

//ID是“ID”键，它保存标识方案的名称。
type ID string

const IDv4 = ID("v4") //默认标识方案

func (v ID) ENRKey() string { return "id" }

func (v ID) MarshalBinary() ([]byte, error) { return []byte(v), nil }

func (v *ID) UnmarshalBinary(data []byte) error {
	*v = ID(data)
	return nil
}

//IP是“IP”键，它保存节点的IPv4地址。
type IP net.IP

func (v IP) ENRKey() string { return "ip" }

//MarshalBinary返回4字节的地址。
func (v IP) MarshalBinary() ([]byte, error) {
	ip4 := net.IP(v).To4()
	if ip4 == nil {
		return nil, fmt.Errorf("invalid IPv4 address %v", net.IP(v))
	}
	return []byte(ip4), nil
}

func (v *IP) UnmarshalBinary(data []byte) error {
	if len(data) != net.IPv4len {
		return fmt.Errorf("invalid IPv4 address, want 4 bytes: %x", data)
	}
	*v = append(IP{}, data...)
	return nil
}

//IPv6是“ip6”键，它保存节点的IPv6地址。
type IPv6 net.IP

func (v IPv6) ENRKey() string { return "ip6" }

//MarshalBinary返回16字节的地址。IPv4地址应使用IP条目。
func (v IPv6) MarshalBinary() ([]byte, error) {
	ip := net.IP(v)
	if len(ip) != net.IPv6len || ip.To4() != nil {
		return nil, fmt.Errorf("invalid IPv6 address %v", ip)
	}
	return []byte(ip), nil
}

func (v *IPv6) UnmarshalBinary(data []byte) error {
	if len(data) != net.IPv6len {
		return fmt.Errorf("invalid IPv6 address, want 16 bytes: %x", data)
	}
	*v = append(IPv6{}, data...)
	return nil
}

//tcp是“tcp”键，它保存节点的IPv4 tcp端口。
type TCP uint16

func (v TCP) ENRKey() string                     { return "tcp" }
func (v TCP) MarshalBinary() ([]byte, error)     { return encodePort(uint16(v)), nil }
func (v *TCP) UnmarshalBinary(data []byte) error { return decodePortInto((*uint16)(v), data) }

//udp是“udp”键，它保存节点的IPv4 udp端口。
type UDP uint16

func (v UDP) ENRKey() string                     { return "udp" }
func (v UDP) MarshalBinary() ([]byte, error)     { return encodePort(uint16(v)), nil }
func (v *UDP) UnmarshalBinary(data []byte) error { return decodePortInto((*uint16)(v), data) }

//TCP6是“tcp6”键，它保存节点的IPv6 tcp端口。
type TCP6 uint16

func (v TCP6) ENRKey() string                     { return "tcp6" }
func (v TCP6) MarshalBinary() ([]byte, error)     { return encodePort(uint16(v)), nil }
func (v *TCP6) UnmarshalBinary(data []byte) error { return decodePortInto((*uint16)(v), data) }

//UDP6是“udp6”键，它保存节点的IPv6 udp端口。
type UDP6 uint16

func (v UDP6) ENRKey() string                     { return "udp6" }
func (v UDP6) MarshalBinary() ([]byte, error)     { return encodePort(uint16(v)), nil }
func (v *UDP6) UnmarshalBinary(data []byte) error { return decodePortInto((*uint16)(v), data) }

//端口总是写成2字节大端。
func encodePort(port uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, port)
	return b
}

//decodePort也接受按最小整数编码写入的1字节端口。空值和超过2字节的值都被拒绝。
func decodePort(data []byte) (uint16, error) {
	switch len(data) {
	case 1:
		return uint16(data[0]), nil
	case 2:
		return binary.BigEndian.Uint16(data), nil
	default:
		return 0, fmt.Errorf("invalid port, want 2 bytes: %x", data)
	}
}

func decodePortInto(p *uint16, data []byte) error {
	port, err := decodePort(data)
	if err != nil {
		return err
	}
	*p = port
	return nil
}

var errNotFound = errors.New("no such key in record")

//keyError是一个与键相关的错误。
type KeyError struct {
	Key string
	Err error
}

//错误实现错误。
func (err *KeyError) Error() string {
	if err.Err == errNotFound {
		return fmt.Sprintf("missing ENR key %q", err.Key)
	}
	return fmt.Sprintf("ENR key %q: %v", err.Key, err.Err)
}

func (err *KeyError) Unwrap() error { return err.Err }

//IsNotFound报告给定的错误是否意味着键/值对
//记录中缺少。
func IsNotFound(err error) bool {
	kerr, ok := err.(*KeyError)
	return ok && kerr.Err == errNotFound
}
