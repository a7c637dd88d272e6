
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
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//EIP-778示例记录使用的密钥。
var (
	testKeyHex    = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testPubCompat = "03ca634cae0d49acb401d8a4c6b6fe8c55b70d115bf400769cc1400f3258cd3138"
)

func TestKeccak256(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	assert.Equal(t, exp, Keccak256(msg))
	assert.Equal(t, Keccak256([]byte("abc")), Keccak256([]byte("a"), []byte("bc")))
	h := Keccak256Hash(msg)
	assert.Equal(t, exp, h[:])
}

func TestToECDSAErrors(t *testing.T) {
	if _, err := HexToECDSA("0000000000000000000000000000000000000000000000000000000000000000"); err == nil {
		t.Fatal("HexToECDSA should've returned error")
	}
	if _, err := HexToECDSA("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"); err == nil {
		t.Fatal("HexToECDSA should've returned error")
	}
	if _, err := HexToECDSA("b71c"); err == nil {
		t.Fatal("HexToECDSA should've returned error for short key")
	}
	if _, err := HexToECDSA("zz1c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"); err == nil {
		t.Fatal("HexToECDSA should've returned error for invalid hex")
	}
}

func TestCompressPubkey(t *testing.T) {
	key, err := HexToECDSA(testKeyHex)
	require.NoError(t, err)

	compressed := CompressPubkey(&key.PublicKey)
	assert.Equal(t, testPubCompat, hex.EncodeToString(compressed))

	pub, err := DecompressPubkey(compressed)
	require.NoError(t, err)
	assert.Equal(t, 0, pub.X.Cmp(key.X))
	assert.Equal(t, 0, pub.Y.Cmp(key.Y))

	if _, err := DecompressPubkey(compressed[1:]); err == nil {
		t.Error("no error for short compressed key")
	}
	bad := append([]byte{}, compressed...)
	bad[0] = 0x05
	if _, err := DecompressPubkey(bad); err == nil {
		t.Error("no error for invalid compressed key prefix")
	}
}

func TestUnmarshalPubkey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	enc := FromECDSAPub(&key.PublicKey)
	require.Len(t, enc, 65)
	pub, err := UnmarshalPubkey(enc)
	require.NoError(t, err)
	assert.Equal(t, enc, FromECDSAPub(pub))

	if _, err := UnmarshalPubkey(enc[:64]); err != errInvalidPubkey {
		t.Errorf("expected errInvalidPubkey, got %v", err)
	}
	if _, err := UnmarshalPubkey(nil); err != errInvalidPubkey {
		t.Errorf("expected errInvalidPubkey, got %v", err)
	}
}

func TestSignAndVerify(t *testing.T) {
	key, err := HexToECDSA(testKeyHex)
	require.NoError(t, err)
	msg := Keccak256([]byte("foo"))

	sig, err := Sign(msg, key)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	//签名是确定的。
	sig2, err := Sign(msg, key)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)

	compressed := CompressPubkey(&key.PublicKey)
	uncompressed := FromECDSAPub(&key.PublicKey)
	assert.True(t, VerifySignature(compressed, msg, sig[:64]))
	assert.True(t, VerifySignature(uncompressed, msg, sig[:64]))

	//错误的消息、错误的长度、错误的密钥。
	assert.False(t, VerifySignature(compressed, Keccak256([]byte("bar")), sig[:64]))
	assert.False(t, VerifySignature(compressed, msg, sig))
	assert.False(t, VerifySignature(compressed, msg, sig[:63]))
	assert.False(t, VerifySignature(compressed[1:], msg, sig[:64]))
	other, _ := GenerateKey()
	assert.False(t, VerifySignature(CompressPubkey(&other.PublicKey), msg, sig[:64]))

	//签名的恢复。
	recovered, err := Ecrecover(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, uncompressed, recovered)
	pub, err := SigToPub(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, uncompressed, FromECDSAPub(pub))
	if _, err := SigToPub(msg, sig[:64]); err == nil {
		t.Error("no error for signature without recovery id")
	}
}

func TestSignErrors(t *testing.T) {
	key, _ := GenerateKey()
	if _, err := Sign(make([]byte, 31), key); err == nil {
		t.Error("no error for short hash")
	}
}

func TestVerifyRejectsMalleable(t *testing.T) {
	key, _ := GenerateKey()
	msg := Keccak256([]byte("malleable"))
	sig, err := Sign(msg, key)
	require.NoError(t, err)

	//s' = N - s 对同一个消息也是有效的ECDSA签名，但必须被拒绝。
	n := S256().Params().N
	s := new(big.Int).SetBytes(sig[32:64])
	highS := new(big.Int).Sub(n, s)
	malleable := make([]byte, 64)
	copy(malleable, sig[:32])
	readBits(highS, malleable[32:])

	assert.False(t, VerifySignature(CompressPubkey(&key.PublicKey), msg, malleable))

	//r和s不能超过曲线阶。
	overflow := bytes.Repeat([]byte{0xff}, 64)
	assert.False(t, VerifySignature(CompressPubkey(&key.PublicKey), msg, overflow))
}

func TestLoadECDSA(t *testing.T) {
	dir, err := ioutil.TempDir("", "enr-crypto-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	tests := []struct {
		input string
		err   string
	}{
		{input: testKeyHex},
		{input: testKeyHex + "\n"},
		{input: testKeyHex + "\r\n"},
		{input: "0x" + testKeyHex[2:], err: "invalid hex character 'x' in private key"},
		{input: testKeyHex[:30], err: "can't read key file: unexpected EOF"},
		{input: testKeyHex + "a", err: "invalid character 'a' at end of key file"},
		{input: testKeyHex + "\n\n\n", err: "key file too long, want 64 hex characters"},
	}
	for i, test := range tests {
		file := filepath.Join(dir, "key")
		require.NoError(t, ioutil.WriteFile(file, []byte(test.input), 0600))
		key, err := LoadECDSA(file)
		switch {
		case err != nil && test.err == "":
			t.Errorf("test %d: unexpected error: %v", i, err)
		case err != nil && err.Error() != test.err:
			t.Errorf("test %d: wrong error %q, want %q", i, err, test.err)
		case err == nil && test.err != "":
			t.Errorf("test %d: LoadECDSA did not return error", i)
		case err == nil:
			assert.Equal(t, testKeyHex, hex.EncodeToString(FromECDSA(key)), "test %d", i)
		}
	}
}

func TestSaveECDSA(t *testing.T) {
	dir, err := ioutil.TempDir("", "enr-crypto-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "key")
	key, _ := GenerateKey()
	require.NoError(t, SaveECDSA(file, key))
	loaded, err := LoadECDSA(file)
	require.NoError(t, err)
	assert.Equal(t, FromECDSA(key), FromECDSA(loaded))
}
