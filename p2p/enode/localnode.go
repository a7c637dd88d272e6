
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
	"crypto/ecdsa"
	"fmt"
	"net"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yinchengtsinghua/go-enr/crypto"
	"github.com/yinchengtsinghua/go-enr/log"
	"github.com/yinchengtsinghua/go-enr/p2p/enr"
)

//local node生成本地节点的签名节点记录，即在
//当前进程。通过set方法设置enr条目将更新记录。新版本
//当调用node方法时，将根据需要对记录进行签名。
//
//LocalNode是本地记录的唯一所有者，所有方法都可以并发调用。
type LocalNode struct {
cur atomic.Value //当记录是最新的时，保存一个非零节点指针。
	id  ID
	key *ecdsa.PrivateKey
	log log.Logger

//下面的一切都有锁保护
	mu          sync.Mutex
	seq         uint64
	entries     map[string]enr.Entry
	staticIP    net.IP
	fallbackIP  net.IP
	fallbackUDP int
}

//newlocalnode创建本地节点。序列号从当前的毫秒时间戳开始，
//因此进程重启后发布的记录仍然比之前的新。
func NewLocalNode(key *ecdsa.PrivateKey) *LocalNode {
	ln := &LocalNode{
		id:      PubkeyToIDV4(&key.PublicKey),
		key:     key,
		entries: make(map[string]enr.Entry),
		seq:     nowMilliseconds(),
	}
	ln.log = log.New("id", ln.id)
	ln.invalidate()
	return ln
}

func nowMilliseconds() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

//node返回本地节点记录的当前版本。
func (ln *LocalNode) Node() *Node {
	n := ln.cur.Load().(*Node)
	if n != nil {
		return n
	}
//记录无效，请重新签名。
	ln.mu.Lock()
	defer ln.mu.Unlock()
	ln.sign()
	return ln.cur.Load().(*Node)
}

//Seq返回最近签名的记录的序列号。
func (ln *LocalNode) Seq() uint64 {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	return ln.seq
}

//id返回本地节点id。
func (ln *LocalNode) ID() ID {
	return ln.id
}

//set将给定条目放入本地记录中，覆盖
//任何现有值。
func (ln *LocalNode) Set(e enr.Entry) {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.set(e)
}

func (ln *LocalNode) set(e enr.Entry) {
	val, exists := ln.entries[e.ENRKey()]
	if !exists || !reflect.DeepEqual(val, e) {
		ln.entries[e.ENRKey()] = e
		ln.invalidate()
	}
}

//删除从本地记录中删除给定条目。
func (ln *LocalNode) Delete(e enr.Entry) {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.delete(e)
}

func (ln *LocalNode) delete(e enr.Entry) {
	_, exists := ln.entries[e.ENRKey()]
	if exists {
		delete(ln.entries, e.ENRKey())
		ln.invalidate()
	}
}

//setstaticip无条件地将本地IP设置为给定IP。
func (ln *LocalNode) SetStaticIP(ip net.IP) {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.staticIP = ip
	ln.updateEndpoints()
}

//setfallbackip设置最后的IP地址。未设置静态IP时使用这个地址。
func (ln *LocalNode) SetFallbackIP(ip net.IP) {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.fallbackIP = ip
	ln.updateEndpoints()
}

//setfallbackudp设置UDP端口。
func (ln *LocalNode) SetFallbackUDP(port int) {
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.fallbackUDP = port
	ln.updateEndpoints()
}

func (ln *LocalNode) updateEndpoints() {
//确定端点。
	newIP := ln.fallbackIP
	if ln.staticIP != nil {
		newIP = ln.staticIP
	}

//更新记录。IPv4地址写入ip/udp，IPv6地址写入ip6/udp6。
	switch {
	case newIP == nil || newIP.IsUnspecified():
		ln.delete(enr.IP{})
		ln.delete(enr.IPv6{})
	case newIP.To4() != nil:
		ln.delete(enr.IPv6{})
		ln.delete(enr.UDP6(0))
		ln.set(enr.IP(newIP.To4()))
		if ln.fallbackUDP != 0 {
			ln.set(enr.UDP(ln.fallbackUDP))
		} else {
			ln.delete(enr.UDP(0))
		}
	default:
		ln.delete(enr.IP{})
		ln.delete(enr.UDP(0))
		ln.set(enr.IPv6(newIP.To16()))
		if ln.fallbackUDP != 0 {
			ln.set(enr.UDP6(ln.fallbackUDP))
		} else {
			ln.delete(enr.UDP6(0))
		}
	}
}

func (ln *LocalNode) invalidate() {
	ln.cur.Store((*Node)(nil))
}

func (ln *LocalNode) sign() {
	if n := ln.cur.Load().(*Node); n != nil {
return //没有变化
	}

	r, err := enr.New(string(enr.IDv4), crypto.CompressPubkey(&ln.key.PublicKey), nil)
	if err != nil {
		panic(fmt.Errorf("enode: can't create local record: %v", err))
	}
	for _, e := range ln.entries {
		r.Set(e)
	}
	ln.seq++
	r.SetSeq(ln.seq)
	if err := r.Sign(ln.key); err != nil {
		panic(fmt.Errorf("enode: can't sign record: %v", err))
	}
	n, err := New(r)
	if err != nil {
		panic(fmt.Errorf("enode: can't verify local record: %v", err))
	}
	ln.cur.Store(n)
	ln.log.Info("New local node record", "seq", ln.seq, "ip", n.IP(), "udp", n.UDP(), "tcp", n.TCP())
}
