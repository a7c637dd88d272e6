
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

package enode

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yinchengtsinghua/go-enr/crypto"
)

var (
	cacheHitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "enode",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Records served from the cache without signature verification",
	})
	cacheMissesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "enode",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Records decoded and verified",
	})
	cacheInvalidCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "enode",
		Subsystem: "cache",
		Name:      "invalid_total",
		Help:      "Records rejected during decoding",
	})
)

//Cache记住已验证的节点记录。同一份记录被多个对等点转发时，
//只需验证一次签名。Cache可以并发使用。
type Cache struct {
	records *lru.Cache //keccak256(记录字节) -> *Node
	nodes   *lru.Cache //ID -> 序列号最大的*Node
	mu      sync.Mutex //保护nodes的比较和替换
}

//NewCache创建最多保存size条记录的缓存。
func NewCache(size int) (*Cache, error) {
	records, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	nodes, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{records: records, nodes: nodes}, nil
}

//Decode解码并验证二进制形式的记录。相同的字节再次出现时直接返回缓存的节点。
func (c *Cache) Decode(raw []byte) (*Node, error) {
	key := crypto.Keccak256Hash(raw)
	if v, ok := c.records.Get(key); ok {
		cacheHitsCounter.Inc()
		return v.(*Node), nil
	}
	cacheMissesCounter.Inc()
	n, err := DecodeBytes(raw)
	if err != nil {
		cacheInvalidCounter.Inc()
		return nil, err
	}
	c.records.Add(key, n)
	c.update(n)
	return n, nil
}

//update在n比已知记录更新时替换它。
func (c *Cache) update(n *Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.nodes.Peek(n.ID()); ok && v.(*Node).Seq() >= n.Seq() {
		return
	}
	c.nodes.Add(n.ID(), n)
}

//Node返回缓存中id序列号最大的记录，未知时返回nil。
func (c *Cache) Node(id ID) *Node {
	if v, ok := c.nodes.Get(id); ok {
		return v.(*Node)
	}
	return nil
}

//Len返回缓存的记录数。
func (c *Cache) Len() int {
	return c.records.Len()
}
