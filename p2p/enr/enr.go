
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

//包ENR实现EIP-778中定义的以太坊节点记录。节点记录保留
//有关对等网络上节点的任意信息。节点信息是
//存储在键/值对中。要在记录中存储和检索键/值，请使用条目
//接口，或者直接使用SetEntry和Entry读写原始字节。
//
//签名处理
//
//在将记录传输到另一个节点之前，必须对它们进行签名。
//
//解码总是在返回记录之前根据记录声明的身份方案验证签名，
//因此Decode返回的记录一定是有效的。修改记录的任何条目都会
//清除签名并增加序列号，之后必须重新签名才能编码。
//
//ENR包支持“secp256k1 keccak”身份方案（“v4”）。其他方案可以在
//包初始化期间通过Register注册。
package enr

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yinchengtsinghua/go-enr/rlp"
)

const (
	SizeLimit  = 300    //节点记录的最大编码大小（字节）
	TextPrefix = "enr:" //文本形式的前缀
)

//记录表示节点记录。零值是一个空的未签名记录。
//
//记录不是并发安全的，共享记录的调用方必须自行加锁。
type Record struct {
	seq       uint64 //序列号
	signature []byte //签名，未签名时为nil
	pairs     []pair //所有键/值对的排序列表
}

//对是记录中的键/值对。值保存为完整的rlp编码。
type pair struct {
	k string
	v rlp.RawValue
}

//New用给定身份方案的公钥创建未签名的记录，序列号为1。
//extra中的条目先写入，“id”和公钥条目总是覆盖同名的附加条目。
func New(scheme string, pubkey []byte, extra map[string][]byte) (*Record, error) {
	s, err := ValidSchemes.Lookup(scheme)
	if err != nil {
		return nil, err
	}
	if _, err := s.NodeAddr(pubkey); err != nil {
		return nil, err
	}
	r := &Record{seq: 1}
	for k, v := range extra {
		r.put(k, rlp.AppendString(nil, v))
	}
	r.put("id", rlp.AppendString(nil, []byte(scheme)))
	r.put(s.KeyEntry(), rlp.AppendString(nil, pubkey))
	return r, nil
}

//Copy返回记录的副本，修改副本不影响r。
func (r *Record) Copy() *Record {
	cpy := *r
	cpy.pairs = append([]pair(nil), r.pairs...)
	return &cpy
}

//seq返回序列号。
func (r *Record) Seq() uint64 {
	return r.seq
}

//setseq更新记录序列号。这将使记录上的任何签名失效。
//通常不需要调用setseq，因为设置任何键都会增加序列号。
func (r *Record) SetSeq(s uint64) {
	r.signature = nil
	r.seq = s
}

//Signature返回记录的签名，未签名时返回nil。
func (r *Record) Signature() []byte {
	if r.signature == nil {
		return nil
	}
	return append([]byte{}, r.signature...)
}

//SetEntry把键设置为给定的字节值。签名被清除，序列号加一，
//即使值没有变化也是如此。
func (r *Record) SetEntry(key string, value []byte) {
	r.invalidate()
	r.put(key, rlp.AppendString(nil, value))
}

//SetRawEntry把键设置为一个已编码的rlp值，用于列表类型的值。
//value必须恰好是一个rlp值。
func (r *Record) SetRawEntry(key string, value rlp.RawValue) error {
	if _, _, rest, err := rlp.Split(value); err != nil {
		return err
	} else if len(rest) > 0 {
		return rlp.ErrMoreThanOneValue
	}
	r.invalidate()
	r.put(key, append(rlp.RawValue{}, value...))
	return nil
}

//Entry返回键的值。字符串值返回其内容，列表值返回完整的rlp编码。
func (r *Record) Entry(key string) ([]byte, bool) {
	v, ok := r.RawEntry(key)
	if !ok {
		return nil, false
	}
	k, content, _, err := rlp.Split(v)
	if err != nil || k == rlp.List {
		return v, true
	}
	return append([]byte{}, content...), true
}

//RawEntry返回键的值的rlp编码。
func (r *Record) RawEntry(key string) (rlp.RawValue, bool) {
	if i, ok := r.find(key); ok {
		return append(rlp.RawValue{}, r.pairs[i].v...), true
	}
	return nil, false
}

//has报告记录是否包含键。
func (r *Record) Has(key string) bool {
	_, ok := r.find(key)
	return ok
}

//Keys按编码顺序返回所有键。
func (r *Record) Keys() []string {
	keys := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		keys[i] = p.k
	}
	return keys
}

//set添加或更新记录中的给定项。如果值不能编码则会恐慌。
//与SetEntry一样，set使签名失效并增加序列号。
func (r *Record) Set(e Entry) {
	blob, err := e.MarshalBinary()
	if err != nil {
		panic(fmt.Errorf("enr: can't encode %s: %v", e.ENRKey(), err))
	}
	r.SetEntry(e.ENRKey(), blob)
}

//LOAD检索键/值对的值。给定的项必须是指针，并且将
//设置为记录中条目的值。
//
//加载返回的错误被包装在keyError中。您可以区分解码错误
//使用isNotFound函数来消除丢失的键。
func (r *Record) Load(e EntryDecoder) error {
	i, ok := r.find(e.ENRKey())
	if !ok {
		return &KeyError{Key: e.ENRKey(), Err: errNotFound}
	}
	content, err := rlp.DecodeBytes(r.pairs[i].v)
	if err == nil {
		err = e.UnmarshalBinary(content)
	}
	if err != nil {
		return &KeyError{Key: e.ENRKey(), Err: err}
	}
	return nil
}

func (r *Record) find(key string) (int, bool) {
	i := sort.Search(len(r.pairs), func(i int) bool { return r.pairs[i].k >= key })
	return i, i < len(r.pairs) && r.pairs[i].k == key
}

//put插入或替换键，保持r.pairs按键排序。
func (r *Record) put(key string, v rlp.RawValue) {
	i, ok := r.find(key)
	switch {
	case ok:
		r.pairs[i].v = v
	case i < len(r.pairs):
//在第i个元素之前插入对
		r.pairs = append(r.pairs, pair{})
		copy(r.pairs[i+1:], r.pairs[i:])
		r.pairs[i] = pair{key, v}
	default:
		r.pairs = append(r.pairs, pair{key, v})
	}
}

func (r *Record) invalidate() {
	r.signature = nil
	r.seq++
}

//IdentityScheme返回记录中标识方案的名称。
//缺少id条目或id条目格式错误时返回空字符串，需要区分时使用Scheme。
func (r *Record) IdentityScheme() string {
	var id ID
	r.Load(&id)
	return string(id)
}

//Scheme在ValidSchemes中查找记录的身份方案。
func (r *Record) Scheme() (IdentityScheme, error) {
	var id ID
	if err := r.Load(&id); err != nil {
		return nil, errors.Wrap(ErrUnsupportedIdentityScheme, err.Error())
	}
	return ValidSchemes.Lookup(string(id))
}

//PublicKey返回身份方案的公钥条目。
func (r *Record) PublicKey() ([]byte, error) {
	s, err := r.Scheme()
	if err != nil {
		return nil, err
	}
	var pub []byte
	if err := r.Load(WithEntry(s.KeyEntry(), &pub)); err != nil {
		return nil, err
	}
	return pub, nil
}

//NodeID返回由身份方案从公钥派生的节点标识符。
func (r *Record) NodeID() ([]byte, error) {
	s, err := r.Scheme()
	if err != nil {
		return nil, err
	}
	pub, err := r.PublicKey()
	if err != nil {
		return nil, err
	}
	return s.NodeAddr(pub)
}

//Sign用私钥对记录签名。签名在记录可以编码时才会保存。
func (r *Record) Sign(key PrivateKey) error {
	_, err := r.Encode(key)
	return err
}

//Verify检查记录当前的签名。
func (r *Record) Verify() error {
	if r.signature == nil {
		return ErrNoSignature
	}
	return r.VerifySignature(r.signature)
}

//VerifySignature检查sig是否是记录当前内容的有效签名。
func (r *Record) VerifySignature(sig []byte) error {
	s, err := r.Scheme()
	if err != nil {
		return err
	}
	pub, err := r.PublicKey()
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}
	msg, err := r.signingPayload()
	if err != nil {
		return err
	}
	if !s.Verify(pub, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}

//AppendElements将序列号和条目追加到给定切片。
func (r *Record) AppendElements(list []interface{}) []interface{} {
	list = append(list, r.seq)
	for _, p := range r.pairs {
		list = append(list, p.k, p.v)
	}
	return list
}

//signingPayload返回签名覆盖的内容：[seq, k0, v0, ...]的编码。
func (r *Record) signingPayload() ([]byte, error) {
	return rlp.EncodeToBytes(r.AppendElements(make([]interface{}, 0, 2*len(r.pairs)+1)))
}

//Encode返回记录的二进制形式。
//
//key不为nil时，先用记录的身份方案签名，签名必须能用记录中的
//公钥验证，否则返回ErrInvalidSignature。key为nil时使用已有的签名，
//未签名的记录返回ErrNoSignature。
func (r *Record) Encode(key PrivateKey) ([]byte, error) {
	if key == nil {
		if r.signature == nil {
			return nil, ErrNoSignature
		}
		return r.encode(r.signature)
	}
	s, err := r.Scheme()
	if err != nil {
		return nil, err
	}
	msg, err := r.signingPayload()
	if err != nil {
		return nil, err
	}
	sig, err := s.Sign(key, msg)
	if err != nil {
		return nil, err
	}
	if err := r.VerifySignature(sig); err != nil {
		return nil, errors.Wrap(err, "key does not match record")
	}
	raw, err := r.encode(sig)
	if err != nil {
		return nil, err
	}
	r.signature = sig
	return raw, nil
}

//EncodeText返回记录的文本形式“enr:<base64url>”。
func (r *Record) EncodeText(key PrivateKey) (string, error) {
	raw, err := r.Encode(key)
	if err != nil {
		return "", err
	}
	return TextPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}

func (r *Record) encode(sig []byte) ([]byte, error) {
	list := make([]interface{}, 1, 2*len(r.pairs)+2)
	list[0] = sig
	raw, err := rlp.EncodeToBytes(r.AppendElements(list))
	if err != nil {
		return nil, err
	}
	if len(raw) >= SizeLimit {
		return nil, errors.Wrapf(ErrRecordTooLarge, "%d bytes", len(raw))
	}
	return raw, nil
}

//String返回签名记录的文本形式。
func (r *Record) String() string {
	if text, err := r.EncodeText(nil); err == nil {
		return text
	}
	return fmt.Sprintf("ENR(unsigned seq=%d keys=%v)", r.seq, r.Keys())
}

//Decode解码二进制形式的记录并验证签名。
//输入被复制，调用方可以复用b。
func Decode(b []byte) (*Record, error) {
	if len(b) > SizeLimit {
		return nil, errors.Wrapf(ErrRecordTooLarge, "%d bytes", len(b))
	}
	elems, err := rlp.SplitListValues(append([]byte{}, b...))
	if err != nil {
		return nil, malformed("%v", err)
	}
	if len(elems) < 2 {
		return nil, malformed("missing signature or sequence number")
	}
	if len(elems)%2 != 0 {
		return nil, malformed("record contains incomplete k/v pair")
	}
	var r Record
	if r.signature, err = rlp.DecodeBytes(elems[0]); err != nil {
		return nil, malformed("signature: %v", err)
	}
	if r.seq, err = rlp.DecodeUint64(elems[1]); err != nil {
		return nil, malformed("sequence number: %v", err)
	}
//记录的其余部分包含已排序的k/v对。
	for i := 2; i < len(elems); i += 2 {
		k, err := rlp.DecodeBytes(elems[i])
		if err != nil {
			return nil, malformed("key %d: %v", i/2-1, err)
		}
		kv := pair{k: string(k), v: elems[i+1]}
		if n := len(r.pairs); n > 0 {
			if kv.k == r.pairs[n-1].k {
				return nil, malformed("record contains duplicate key %q", kv.k)
			}
			if kv.k < r.pairs[n-1].k {
				return nil, malformed("record key/value pairs are not sorted by key")
			}
		}
		r.pairs = append(r.pairs, kv)
	}
	if err := r.VerifySignature(r.signature); err != nil {
		return nil, err
	}
	return &r, nil
}

//DecodeText解码“enr:”开头的文本形式记录。
func DecodeText(text string) (*Record, error) {
	if !strings.HasPrefix(text, TextPrefix) {
		return nil, malformed("missing %q prefix", TextPrefix)
	}
	b, err := base64.RawURLEncoding.DecodeString(text[len(TextPrefix):])
	if err != nil {
		return nil, malformed("invalid base64: %v", err)
	}
	return Decode(b)
}
