
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2017 Go Ethereum作者
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

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btc_ecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
)

//ecrecover返回创建给定签名的未压缩公钥。
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub, err := sigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

//sigtopub返回创建给定签名的公钥。
func SigToPub(hash, sig []byte) (*ecdsa.PublicKey, error) {
	pub, err := sigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub.ToECDSA(), nil
}

func sigToPub(hash, sig []byte) (*btcec.PublicKey, error) {
	if len(sig) != SignatureLength {
		return nil, errors.New("invalid signature")
	}
	//转换为btcec输入格式，开始时使用“recovery id”v。
	btcsig := make([]byte, SignatureLength)
	btcsig[0] = sig[RecoveryIDOffset] + 27
	copy(btcsig[1:], sig)

	pub, _, err := btc_ecdsa.RecoverCompact(btcsig, hash)
	return pub, err
}

//sign计算ECDSA签名。
//
//此函数容易受到选择明文攻击，可能泄漏用于签名的私钥信息。
//调用方必须注意给定的哈希不能由对手选择。常见的
//解决方案是在计算签名之前散列任何输入。
//
//生成的签名采用[R || S || V]格式，其中V为0或1。
func Sign(hash []byte, prv *ecdsa.PrivateKey) ([]byte, error) {
	if len(hash) != DigestLength {
		return nil, fmt.Errorf("hash is required to be exactly %d bytes (%d)", DigestLength, len(hash))
	}
	if prv.Curve != S256() {
		return nil, errors.New("private key curve is not secp256k1")
	}
	seckey := paddedBigBytes(prv.D, 32)
	defer zeroBytes(seckey)
	priv, _ := btcec.PrivKeyFromBytes(seckey)
	defer priv.Zero()

	sig, err := btc_ecdsa.SignCompact(priv, hash, false)
	if err != nil {
		return nil, err
	}
	//转换为末尾带有'recovery id'v的以太坊签名格式。
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[RecoveryIDOffset] = v
	return sig, nil
}

//VerifySignature检查给定的公钥是否对哈希创建了签名。
//公钥应为压缩（33字节）或未压缩（65字节）格式。
//签名应采用64字节[R || S]格式。
func VerifySignature(pubkey, hash, signature []byte) bool {
	if len(signature) != 64 {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetByteSlice(signature[:32]) {
		return false
	}
	if s.SetByteSlice(signature[32:]) {
		return false
	}
	//拒绝可延展签名。libsecp256k1执行此检查，但btcec不执行。
	if s.IsOverHalfOrder() {
		return false
	}
	key, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return false
	}
	return btc_ecdsa.NewSignature(&r, &s).Verify(hash, key)
}

//DecompressPubkey解析33字节压缩格式的公钥。
func DecompressPubkey(pubkey []byte) (*ecdsa.PublicKey, error) {
	if len(pubkey) != 33 {
		return nil, errors.New("invalid compressed public key length")
	}
	key, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return nil, err
	}
	return key.ToECDSA(), nil
}

//compresspubkey将公钥编码为33字节的压缩格式。
func CompressPubkey(pubkey *ecdsa.PublicKey) []byte {
	key, err := btcec.ParsePubKey(FromECDSAPub(pubkey))
	if err != nil {
		panic(fmt.Errorf("crypto: invalid public key: %v", err))
	}
	return key.SerializeCompressed()
}

//s256返回secp256k1曲线的一个实例。
func S256() elliptic.Curve {
	return btcec.S256()
}
