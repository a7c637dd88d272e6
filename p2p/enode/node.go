
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
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/bits"
	"net"
	"strings"

	"github.com/pkg/errors"
	"github.com/yinchengtsinghua/go-enr/crypto"
	"github.com/yinchengtsinghua/go-enr/p2p/enr"
)

//节点表示网络上的主机。节点总是包装一个已验证签名的记录，
//创建后不可修改，可以在goroutine之间共享。
type Node struct {
	r  enr.Record
	id ID
}

//New包装节点记录。记录必须带有根据其身份方案有效的签名。
func New(r *enr.Record) (*Node, error) {
	if err := r.Verify(); err != nil {
		return nil, err
	}
	addr, err := r.NodeID()
	if err != nil {
		return nil, err
	}
	if len(addr) != len(ID{}) {
		return nil, fmt.Errorf("invalid node ID length %d, need %d", len(addr), len(ID{}))
	}
	node := &Node{r: *r.Copy()}
	copy(node.id[:], addr)
	return node, nil
}

//Parse解码“enr:”文本形式的节点记录。
func Parse(text string) (*Node, error) {
	r, err := enr.DecodeText(text)
	if err != nil {
		return nil, err
	}
	return New(r)
}

//DecodeBytes解码二进制形式的节点记录。
func DecodeBytes(b []byte) (*Node, error) {
	r, err := enr.Decode(b)
	if err != nil {
		return nil, err
	}
	return New(r)
}

//MustParse解析节点记录，出错时恐慌。用于测试和固定的引导节点。
func MustParse(text string) *Node {
	n, err := Parse(text)
	if err != nil {
		panic("invalid node record: " + err.Error())
	}
	return n
}

//ID返回节点标识符。
func (n *Node) ID() ID {
	return n.id
}

//seq返回基础记录的序列号。
func (n *Node) Seq() uint64 {
	return n.r.Seq()
}

//对于没有IP地址的节点，不完整返回true。
func (n *Node) Incomplete() bool {
	return n.IP() == nil
}

//LOAD从基础记录中检索一个条目。
func (n *Node) Load(k enr.EntryDecoder) error {
	return n.r.Load(k)
}

//IP返回节点的IP地址。记录同时有IPv4和IPv6地址时优先返回IPv4。
func (n *Node) IP() net.IP {
	var ip4 enr.IP
	if n.Load(&ip4) == nil {
		return net.IP(ip4)
	}
	var ip6 enr.IPv6
	if n.Load(&ip6) == nil {
		return net.IP(ip6)
	}
	return nil
}

//udp返回与IP()同一地址族的udp端口。
func (n *Node) UDP() int {
	if n.onlyIPv6() {
		var port enr.UDP6
		n.Load(&port)
		return int(port)
	}
	var port enr.UDP
	n.Load(&port)
	return int(port)
}

//TCP返回与IP()同一地址族的TCP端口。
func (n *Node) TCP() int {
	if n.onlyIPv6() {
		var port enr.TCP6
		n.Load(&port)
		return int(port)
	}
	var port enr.TCP
	n.Load(&port)
	return int(port)
}

func (n *Node) onlyIPv6() bool {
	return !n.r.Has(enr.IP{}.ENRKey()) && n.r.Has(enr.IPv6{}.ENRKey())
}

//pubkey返回节点的secp256k1公钥（如果存在）。
func (n *Node) Pubkey() *ecdsa.PublicKey {
	var key ecdsa.PublicKey
	if n.Load((*Secp256k1)(&key)) != nil {
		return nil
	}
	return &key
}

//record返回节点的记录。返回值是一个副本，可以
//由调用者修改。
func (n *Node) Record() *enr.Record {
	return n.r.Copy()
}

//检查n是否为有效的完整节点。
func (n *Node) ValidateComplete() error {
	if n.Incomplete() {
		return errors.New("incomplete node")
	}
	if n.UDP() == 0 {
		return errors.New("missing UDP port")
	}
	ip := n.IP()
	if ip.IsMulticast() || ip.IsUnspecified() {
		return errors.New("invalid IP (multicast/unspecified)")
	}
//验证节点键（在曲线上等）。
	var key Secp256k1
	return n.Load(&key)
}

//节点的字符串表示形式是记录的文本形式。
func (n *Node) String() string {
	return n.r.String()
}

//MarshalText实现Encoding.TextMarshaler。
func (n *Node) MarshalText() ([]byte, error) {
	text, err := n.r.EncodeText(nil)
	return []byte(text), err
}

//UnmarshalText实现encoding.textUnmarshaller。
func (n *Node) UnmarshalText(text []byte) error {
	dec, err := Parse(string(text))
	if err == nil {
		*n = *dec
	}
	return err
}

//ID是每个节点的唯一标识符。
type ID [32]byte

//bytes返回ID的字节片表示形式
func (n ID) Bytes() []byte {
	return n[:]
}

//ID以十六进制长数字打印。
func (n ID) String() string {
	return fmt.Sprintf("%x", n[:])
}

//ID的go语法表示是对hexid的调用。
func (n ID) GoString() string {
	return fmt.Sprintf("enode.HexID(\"%x\")", n[:])
}

//TerminalString返回用于终端日志记录的缩短的十六进制字符串。
func (n ID) TerminalString() string {
	return hex.EncodeToString(n[:8])
}

//MarshalText实现Encoding.TextMarshaler接口。
func (n ID) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(n[:])), nil
}

//UnmarshalText实现encoding.textUnmarshaller接口。
func (n *ID) UnmarshalText(text []byte) error {
	id, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*n = id
	return nil
}

//hex id将十六进制字符串转换为ID。
//字符串的前缀可以是0x。
//如果字符串不是有效的ID，则会恐慌。
func HexID(in string) ID {
	id, err := ParseID(in)
	if err != nil {
		panic(err)
	}
	return id
}

//ParseID解析十六进制形式的节点ID，可以带0x前缀。
func ParseID(in string) (ID, error) {
	var id ID
	b, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
	if err != nil {
		return id, err
	} else if len(b) != len(id) {
		return id, fmt.Errorf("wrong length, want %d hex chars", len(id)*2)
	}
	copy(id[:], b)
	return id, nil
}

//PubkeyToIDV4派生v4节点地址。
func PubkeyToIDV4(key *ecdsa.PublicKey) ID {
	var id ID
	copy(id[:], crypto.Keccak256(crypto.FromECDSAPub(key)[1:]))
	return id
}

//distcmp比较距离a->target和b->target。
//如果a接近目标返回-1，如果b接近目标返回1
//如果相等，则为0。
func DistCmp(target, a, b ID) int {
	for i := range target {
		da := a[i] ^ target[i]
		db := b[i] ^ target[i]
		if da > db {
			return 1
		} else if da < db {
			return -1
		}
	}
	return 0
}

//logdist返回a和b之间的对数距离，log2（a^b）。
func LogDist(a, b ID) int {
	lz := 0
	for i := range a {
		x := a[i] ^ b[i]
		if x == 0 {
			lz += 8
		} else {
			lz += bits.LeadingZeros8(x)
			break
		}
	}
	return len(a)*8 - lz
}

//Secp256k1是“secp256k1”键，它保存一个压缩的公钥。
type Secp256k1 ecdsa.PublicKey

func (v Secp256k1) ENRKey() string { return "secp256k1" }

//MarshalBinary返回33字节的压缩公钥。
func (v Secp256k1) MarshalBinary() ([]byte, error) {
	if v.X == nil || v.Y == nil {
		return nil, errors.New("empty public key")
	}
	return crypto.CompressPubkey((*ecdsa.PublicKey)(&v)), nil
}

func (v *Secp256k1) UnmarshalBinary(data []byte) error {
	pk, err := crypto.DecompressPubkey(data)
	if err != nil {
		return err
	}
	*v = (Secp256k1)(*pk)
	return nil
}

//SignV4用v4身份方案对记录签名。记录的“id”和“secp256k1”条目
//只在与密钥不一致时更新，已有正确条目的记录签名后序列号不变。
func SignV4(r *enr.Record, key *ecdsa.PrivateKey) error {
	pub := crypto.CompressPubkey(&key.PublicKey)
	if id, _ := r.Entry("id"); enr.ID(id) != enr.IDv4 {
		r.Set(enr.IDv4)
	}
	if cur, _ := r.Entry("secp256k1"); !bytes.Equal(cur, pub) {
		r.SetEntry("secp256k1", pub)
	}
	return r.Sign(key)
}
