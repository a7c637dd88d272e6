
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
	"testing"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointRoundtrip(t *testing.T) {
	tests := []struct {
		addr    string
		set     func(*Record, ma.Multiaddr) error
		get     func(*Record) ma.Multiaddr
		ipkey   string
		portkey string
	}{
		{"/ip4/192.0.2.1/udp/30303", (*Record).SetUDP, (*Record).IP4UDP, "ip", "udp"},
		{"/ip4/192.0.2.1/tcp/30303", (*Record).SetTCP, (*Record).IP4TCP, "ip", "tcp"},
		{"/ip6/2001:db8::1/udp/9000", (*Record).SetUDP, (*Record).IP6UDP, "ip6", "udp6"},
		{"/ip6/2001:db8::1/tcp/9000", (*Record).SetTCP, (*Record).IP6TCP, "ip6", "tcp6"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			r := newV4(t, nil)
			require.NoError(t, r.Sign(privkey))
			seq := r.Seq()

			require.NoError(t, tt.set(r, ma.StringCast(tt.addr)))
			assert.Nil(t, r.Signature())
			assert.Equal(t, seq+2, r.Seq())
			assert.True(t, r.Has(tt.ipkey))
			port, _ := r.Entry(tt.portkey)
			assert.Len(t, port, 2)

			got := tt.get(r)
			require.NotNil(t, got)
			assert.Equal(t, tt.addr, got.String())

			blob, err := r.Encode(privkey)
			require.NoError(t, err)
			r2, err := Decode(blob)
			require.NoError(t, err)
			assert.Equal(t, tt.addr, tt.get(r2).String())
		})
	}
}

func TestEndpointMissing(t *testing.T) {
	r := newV4(t, nil)
	assert.Nil(t, r.IP4UDP())
	assert.Nil(t, r.IP6TCP())

	r.Set(IP{10, 0, 0, 1})
	assert.Nil(t, r.IP4UDP(), "address without port")

	r.Set(TCP(30303))
	assert.Nil(t, r.IP4UDP())
	assert.Equal(t, "/ip4/10.0.0.1/tcp/30303", r.IP4TCP().String())
	assert.Nil(t, r.IP6TCP(), "ipv4 entries must not show up as ipv6")

	r.SetEntry("ip", []byte{10, 0, 0})
	assert.Nil(t, r.IP4TCP(), "invalid address length")
}

func TestSetEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		addr ma.Multiaddr
		set  func(*Record, ma.Multiaddr) error
	}{
		{"nil", nil, (*Record).SetUDP},
		{"missing address", ma.StringCast("/udp/30303"), (*Record).SetUDP},
		{"missing port", ma.StringCast("/ip4/192.0.2.1"), (*Record).SetUDP},
		{"wrong transport", ma.StringCast("/ip4/192.0.2.1/tcp/30303"), (*Record).SetUDP},
		{"wrong transport tcp", ma.StringCast("/ip6/::1/udp/30303"), (*Record).SetTCP},
		{"dns address", ma.StringCast("/dns4/example.org/udp/30303"), (*Record).SetUDP},
		{"extra segment", ma.StringCast("/ip4/192.0.2.1/udp/30303/quic"), (*Record).SetUDP},
		{"ipv4-mapped ipv6", ma.StringCast("/ip6/::ffff:192.0.2.1/udp/30303"), (*Record).SetUDP},
		{"ipv4-mapped ipv6 tcp", ma.StringCast("/ip6/::ffff:192.0.2.1/tcp/30303"), (*Record).SetTCP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newV4(t, nil)
			seq := r.Seq()
			err := tt.set(r, tt.addr)
			assert.True(t, errors.Is(err, ErrInvalidEndpoint), "got %v", err)
			assert.Equal(t, seq, r.Seq(), "failed setter must not modify the record")
			assert.Equal(t, []string{"id", "secp256k1"}, r.Keys())
		})
	}
}
