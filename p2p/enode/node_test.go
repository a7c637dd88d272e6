
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2018 Go Ethereum作者
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

package enode

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinchengtsinghua/go-enr/crypto"
	"github.com/yinchengtsinghua/go-enr/p2p/enr"
)

var pyRecord, _ = hex.DecodeString("f884b8407098ad865b00a582051940cb9cf36836572411a47278783077011599ed5cd16b76f2635f4e234738f30813a89eb9137e3e3df5266e3a1f11df72ecf1145ccb9c01826964827634826970847f00000189736563703235366b31a103ca634cae0d49acb401d8a4c6b6fe8c55b70d115bf400769cc1400f3258cd31388375647082765f")

const pyText = "enr:-IS4QHCYrYZbAKWCBRlAy5zzaDZXJBGkcnh4MHcBFZntXNFrdvJjX04jRzjzCBOonrkTfj499SZuOh8R33Ls8RRcy5wBgmlkgnY0gmlwhH8AAAGJc2VjcDI1NmsxoQPKY0yuDUmstAHYpMa2_oxVtw0RW_QAdpzBQA8yWM0xOIN1ZHCCdl8"

//testpythorintrop检查是否可以解码和验证由python生成的记录
//实施。
func TestPythonInterop(t *testing.T) {
	n, err := DecodeBytes(pyRecord)
	require.NoError(t, err, "can't verify record")

	var (
		wantID  = HexID("a448f24c6d18e575453db13171562b71999873db5b286df957af199ec94617f7")
		wantSeq = uint64(1)
		wantIP  = enr.IP{127, 0, 0, 1}
		wantUDP = enr.UDP(30303)
	)
	assert.Equal(t, wantSeq, n.Seq(), "wrong seq")
	assert.Equal(t, wantID, n.ID(), "wrong id")

	want := map[enr.EntryDecoder]interface{}{new(enr.IP): &wantIP, new(enr.UDP): &wantUDP}
	for k, v := range want {
		desc := fmt.Sprintf("loading key %q", k.ENRKey())
		if assert.NoError(t, n.Load(k), desc) {
			assert.Equal(t, k, v, desc)
		}
	}
	assert.Equal(t, net.IP{127, 0, 0, 1}, n.IP())
	assert.Equal(t, 30303, n.UDP())
	assert.Equal(t, 0, n.TCP())
	assert.Equal(t, pyText, n.String())
	assert.NoError(t, n.ValidateComplete())
}

func TestParse(t *testing.T) {
	n, err := Parse(pyText)
	require.NoError(t, err)
	assert.Equal(t, "a448f24c6d18e575", n.ID().TerminalString())

	key, _ := crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	require.NotNil(t, n.Pubkey())
	assert.Equal(t, crypto.FromECDSAPub(&key.PublicKey), crypto.FromECDSAPub(n.Pubkey()))
	assert.Equal(t, PubkeyToIDV4(&key.PublicKey), n.ID())

	_, err = Parse("enr:")
	assert.True(t, errors.Is(err, enr.ErrMalformedRecord), "got %v", err)
	assert.Panics(t, func() { MustParse("enode://foo") })
}

func TestNewRequiresSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	r, err := enr.New("v4", crypto.CompressPubkey(&key.PublicKey), nil)
	require.NoError(t, err)

	_, err = New(r)
	assert.Equal(t, enr.ErrNoSignature, err)

	require.NoError(t, SignV4(r, key))
	n, err := New(r)
	require.NoError(t, err)
	assert.Equal(t, PubkeyToIDV4(&key.PublicKey), n.ID())
}

//TestRecordCopy检查修改Record()的返回值不会影响节点。
func TestRecordCopy(t *testing.T) {
	n := MustParse(pyText)
	r := n.Record()
	r.Set(enr.UDP(1))

	assert.Equal(t, 30303, n.UDP())
	assert.Equal(t, uint64(1), n.Seq())
	assert.Equal(t, pyText, n.String())
}

func TestSignV4(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	var r enr.Record
	r.Set(enr.IP{10, 0, 0, 1})
	r.Set(enr.UDP(30303))
	require.NoError(t, SignV4(&r, key))
	seq := r.Seq()
	assert.Equal(t, uint64(4), seq)

	//条目已经正确，再次签名不改变序列号。
	require.NoError(t, SignV4(&r, key))
	assert.Equal(t, seq, r.Seq())

	n, err := New(&r)
	require.NoError(t, err)
	assert.Equal(t, PubkeyToIDV4(&key.PublicKey), n.ID())
	assert.NoError(t, n.ValidateComplete())
}

func TestValidateComplete(t *testing.T) {
	key, _ := crypto.GenerateKey()
	tests := []struct {
		name    string
		entries []enr.Entry
		err     string
	}{
		{"no ip", []enr.Entry{enr.UDP(30303)}, "incomplete node"},
		{"no udp", []enr.Entry{enr.IP{10, 0, 0, 1}}, "missing UDP port"},
		{"multicast", []enr.Entry{enr.IP{224, 0, 0, 1}, enr.UDP(1)}, "invalid IP (multicast/unspecified)"},
		{"ipv6", []enr.Entry{enr.IPv6(net.ParseIP("2001:db8::1")), enr.UDP6(9000)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r enr.Record
			for _, e := range tt.entries {
				r.Set(e)
			}
			require.NoError(t, SignV4(&r, key))
			n, err := New(&r)
			require.NoError(t, err)
			err = n.ValidateComplete()
			if tt.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.err)
			}
		})
	}
}

func TestNodeTextMarshaling(t *testing.T) {
	n := MustParse(pyText)
	blob, err := json.Marshal(struct{ Node *Node }{n})
	require.NoError(t, err)
	assert.Equal(t, `{"Node":"`+pyText+`"}`, string(blob))

	var dec struct{ Node *Node }
	require.NoError(t, json.Unmarshal(blob, &dec))
	assert.Equal(t, n.ID(), dec.Node.ID())
	assert.Equal(t, n.Seq(), dec.Node.Seq())
}

func TestIDTextMarshaling(t *testing.T) {
	id := HexID("0x00000000000000000000000000000000000000000000000000000000000000ff")
	assert.Equal(t, `enode.HexID("00000000000000000000000000000000000000000000000000000000000000ff")`, id.GoString())
	assert.Equal(t, "0000000000000000", id.TerminalString())

	text, err := id.MarshalText()
	require.NoError(t, err)
	var id2 ID
	require.NoError(t, id2.UnmarshalText(text))
	assert.Equal(t, id, id2)

	_, err = ParseID("ff")
	assert.Error(t, err)
	assert.Error(t, id2.UnmarshalText([]byte("zz")))
}

func TestDistCmp(t *testing.T) {
	target := HexID("0000000000000000000000000000000000000000000000000000000000000000")
	a := HexID("0000000000000000000000000000000000000000000000000000000000000001")
	b := HexID("0000000000000000000000000000000000000000000000000000000000000002")
	assert.Equal(t, -1, DistCmp(target, a, b))
	assert.Equal(t, 1, DistCmp(target, b, a))
	assert.Equal(t, 0, DistCmp(target, a, a))
}

func TestLogDist(t *testing.T) {
	a := ID{}
	assert.Equal(t, 0, LogDist(a, a))

	b := ID{}
	b[31] = 0x01
	assert.Equal(t, 1, LogDist(a, b))

	b[0] = 0x80
	assert.Equal(t, 256, LogDist(a, b))
}
