
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
	"crypto/ecdsa"
	"fmt"

	"github.com/pkg/errors"
	"github.com/yinchengtsinghua/go-enr/crypto"
)

//PrivateKey是身份方案使用的签名密钥，具体类型由方案决定。
//v4方案需要*ecdsa.PrivateKey。
type PrivateKey interface{}

//标识方案能够签名和验证记录，并从公钥派生节点地址。
//所有方法都必须是无副作用的纯函数。
type IdentityScheme interface {
	//KeyEntry返回存放公钥的记录键名。
	KeyEntry() string
	//NodeAddr从公钥派生节点地址。
	NodeAddr(pubkey []byte) ([]byte, error)
	//PublicKey返回私钥对应的公钥，编码与KeyEntry中的值相同。
	PublicKey(key PrivateKey) ([]byte, error)
	//Sign对任意消息签名。
	Sign(key PrivateKey, msg []byte) ([]byte, error)
	//Verify检查签名。输入格式错误时返回false。
	Verify(pubkey, msg, sig []byte) bool
}

//schememap是命名标识方案的注册表。
type SchemeMap map[string]IdentityScheme

//Lookup返回给定名称的方案。
func (m SchemeMap) Lookup(name string) (IdentityScheme, error) {
	if s := m[name]; s != nil {
		return s, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedIdentityScheme, "%q", name)
}

//ValidSchemes是记录解码和签名时使用的方案注册表。
var ValidSchemes = SchemeMap{
	string(IDv4): V4ID{},
}

//Register把方案加入ValidSchemes。注册表没有锁保护，
//只能在包初始化期间调用。
func Register(name string, s IdentityScheme) {
	if _, exists := ValidSchemes[name]; exists {
		panic(fmt.Sprintf("enr: identity scheme %q registered twice", name))
	}
	ValidSchemes[name] = s
}

//v4id是“secp256k1 keccak”身份方案。
type V4ID struct{}

func (V4ID) KeyEntry() string { return "secp256k1" }

//NodeAddr返回未压缩公钥（不含前缀字节）的keccak256哈希。
func (V4ID) NodeAddr(pubkey []byte) ([]byte, error) {
	key, err := crypto.DecompressPubkey(pubkey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 public key")
	}
	return crypto.Keccak256(crypto.FromECDSAPub(key)[1:]), nil
}

func (V4ID) PublicKey(key PrivateKey) ([]byte, error) {
	k, err := v4Key(key)
	if err != nil {
		return nil, err
	}
	return crypto.CompressPubkey(&k.PublicKey), nil
}

//Sign返回消息keccak256哈希的64字节[R || S]签名。
func (V4ID) Sign(key PrivateKey, msg []byte) ([]byte, error) {
	k, err := v4Key(key)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(crypto.Keccak256(msg), k)
	if err != nil {
		return nil, err
	}
	return sig[:len(sig)-1], nil // 去掉v
}

func (V4ID) Verify(pubkey, msg, sig []byte) bool {
	if len(pubkey) != 33 {
		return false
	}
	return crypto.VerifySignature(pubkey, crypto.Keccak256(msg), sig)
}

func v4Key(key PrivateKey) (*ecdsa.PrivateKey, error) {
	k, ok := key.(*ecdsa.PrivateKey)
	if !ok || k == nil {
		return nil, errors.Errorf("v4 identity scheme needs *ecdsa.PrivateKey, got %T", key)
	}
	return k, nil
}
