
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

package crypto

import (
	"bufio"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"math/big"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

const (
	//SignatureLength表示携带恢复ID的签名所需的字节长度。
	SignatureLength = 64 + 1 // 64 bytes ECDSA signature + 1 byte recovery id

	//RecoveryIDOffset指向签名中恢复ID的字节偏移量。
	RecoveryIDOffset = 64

	//DigestLength设置签名摘要的精确长度
	DigestLength = 32
)

var errInvalidPubkey = errors.New("invalid secp256k1 public key")

//keccak256计算并返回输入数据的keccak256哈希。
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

//keccak256hash计算输入数据的keccak256哈希，返回定长数组，
//可以直接用作映射键。
func Keccak256Hash(data ...[]byte) (h [DigestLength]byte) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

//GenerateKey生成一个新的secp256k1私钥。
func GenerateKey() (*ecdsa.PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return key.ToECDSA(), nil
}

//ToECDSA使用给定的D值创建私钥。
func ToECDSA(d []byte) (*ecdsa.PrivateKey, error) {
	if len(d) != 32 {
		return nil, fmt.Errorf("invalid length, need 256 bits")
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(d); overflow || scalar.IsZero() {
		return nil, errors.New("invalid private key, >=N or zero")
	}
	key, _ := btcec.PrivKeyFromBytes(d)
	return key.ToECDSA(), nil
}

//FromECDSA将私钥导出为32字节的二进制转储。
func FromECDSA(priv *ecdsa.PrivateKey) []byte {
	if priv == nil {
		return nil
	}
	return paddedBigBytes(priv.D, priv.Params().BitSize/8)
}

//UnmarshalPubkey将65字节未压缩格式的字节转换为secp256k1公钥。
func UnmarshalPubkey(pub []byte) (*ecdsa.PublicKey, error) {
	if len(pub) != 65 || pub[0] != 0x04 {
		return nil, errInvalidPubkey
	}
	key, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, errInvalidPubkey
	}
	return key.ToECDSA(), nil
}

//FromECDSAPub返回65字节未压缩格式的公钥。
func FromECDSAPub(pub *ecdsa.PublicKey) []byte {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil
	}
	buf := make([]byte, 65)
	buf[0] = 0x04
	readBits(pub.X, buf[1:33])
	readBits(pub.Y, buf[33:])
	return buf
}

//hextoecdsa解析secp256k1私钥。
func HexToECDSA(hexkey string) (*ecdsa.PrivateKey, error) {
	b, err := hex.DecodeString(hexkey)
	if byteErr, ok := err.(hex.InvalidByteError); ok {
		return nil, fmt.Errorf("invalid hex character %q in private key", byte(byteErr))
	} else if err != nil {
		return nil, errors.New("invalid hex data for private key")
	}
	return ToECDSA(b)
}

//LoadECDSA从给定文件加载secp256k1私钥。
//文件内容必须是64个十六进制字符，可以带结尾的换行。
func LoadECDSA(file string) (*ecdsa.PrivateKey, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r := bufio.NewReader(fd)
	buf := make([]byte, 64)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "can't read key file")
	}
	if err := checkKeyFileEnd(r); err != nil {
		return nil, err
	}
	return HexToECDSA(string(buf))
}

//checkKeyFileEnd跳过密钥后的换行，并确保没有其他内容。
func checkKeyFileEnd(r *bufio.Reader) error {
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		case b != '\n' && b != '\r':
			return fmt.Errorf("invalid character %q at end of key file", b)
		case i >= 2:
			return errors.New("key file too long, want 64 hex characters")
		}
	}
}

//SaveECDSA将私钥以十六进制形式保存到给定文件，权限为0600。
func SaveECDSA(file string, key *ecdsa.PrivateKey) error {
	k := hex.EncodeToString(FromECDSA(key))
	return ioutil.WriteFile(file, []byte(k), 0600)
}

//paddedBigBytes将大整数编码为大端字节片，长度至少为n。
func paddedBigBytes(bigint *big.Int, n int) []byte {
	if bigint.BitLen()/8 >= n {
		return bigint.Bytes()
	}
	ret := make([]byte, n)
	readBits(bigint, ret)
	return ret
}

//readBits将bigint的绝对值编码为大端字节，填满buf。
func readBits(bigint *big.Int, buf []byte) {
	b := bigint.Bytes()
	for i := range buf {
		buf[i] = 0
	}
	copy(buf[len(buf)-len(b):], b)
}

func zeroBytes(bytes []byte) {
	for i := range bytes {
		bytes[i] = 0
	}
}
