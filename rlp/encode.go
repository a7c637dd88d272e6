
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

package rlp

import (
	"fmt"
	"io"
)

var (
	//常见的编码值。
	EmptyString = []byte{0x80}
	EmptyList   = []byte{0xC0}
)

//encode将val的rlp编码写入w。
func Encode(w io.Writer, val interface{}) error {
	b, err := EncodeToBytes(val)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

//EncodeToBytes返回val的rlp编码。
//
//支持的类型：
//
//[]byte和string编码为rlp字符串。
//无符号整数（以及非负的int）编码为最小长度的大端字符串，零编码为空字符串。
//rawvalue原样输出，调用方负责其内容是有效的rlp。
//[]interface{}和[]rawvalue编码为列表，列表头覆盖所有元素编码的总长度。
func EncodeToBytes(val interface{}) ([]byte, error) {
	return appendValue(nil, val)
}

func appendValue(buf []byte, val interface{}) ([]byte, error) {
	switch v := val.(type) {
	case RawValue:
		return append(buf, v...), nil
	case []byte:
		return AppendString(buf, v), nil
	case string:
		return AppendString(buf, []byte(v)), nil
	case uint64:
		return AppendUint64(buf, v), nil
	case uint32:
		return AppendUint64(buf, uint64(v)), nil
	case uint16:
		return AppendUint64(buf, uint64(v)), nil
	case uint8:
		return AppendUint64(buf, uint64(v)), nil
	case uint:
		return AppendUint64(buf, uint64(v)), nil
	case int:
		if v < 0 {
			return nil, fmt.Errorf("rlp: cannot encode negative integer %d", v)
		}
		return AppendUint64(buf, uint64(v)), nil
	case []RawValue:
		var content []byte
		for _, elem := range v {
			content = append(content, elem...)
		}
		return appendList(buf, content), nil
	case []interface{}:
		var (
			content []byte
			err     error
		)
		for _, elem := range v {
			if content, err = appendValue(content, elem); err != nil {
				return nil, err
			}
		}
		return appendList(buf, content), nil
	default:
		return nil, fmt.Errorf("rlp: type %T is not RLP-serializable", val)
	}
}

//AppendString将b编码为rlp字符串并追加到buf。
func AppendString(buf, b []byte) []byte {
	if len(b) == 1 && b[0] <= 0x7F {
		//适合单字节，无字符串头
		return append(buf, b[0])
	}
	buf = appendHead(buf, 0x80, 0xB7, uint64(len(b)))
	return append(buf, b...)
}

//AppendUint64将i编码为rlp整数并追加到buf。
func AppendUint64(buf []byte, i uint64) []byte {
	switch {
	case i == 0:
		return append(buf, 0x80)
	case i < 128:
		return append(buf, byte(i))
	default:
		var tmp [8]byte
		n := putint(tmp[:], i)
		buf = append(buf, 0x80+byte(n))
		return append(buf, tmp[:n]...)
	}
}

//AppendListHeader追加内容大小为size的列表头。
func AppendListHeader(buf []byte, size int) []byte {
	return appendHead(buf, 0xC0, 0xF7, uint64(size))
}

func appendList(buf, content []byte) []byte {
	buf = AppendListHeader(buf, len(content))
	return append(buf, content...)
}

//appendHead追加列表或字符串头。
func appendHead(buf []byte, smalltag, largetag byte, size uint64) []byte {
	if size < 56 {
		return append(buf, smalltag+byte(size))
	}
	var tmp [8]byte
	n := putint(tmp[:], size)
	buf = append(buf, largetag+byte(n))
	return append(buf, tmp[:n]...)
}

//headsize返回给定大小的值的列表或字符串头大小。
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

//putint用大端字节序将i写入b的开头，使用表示i所需的最小字节数。
func putint(b []byte, i uint64) (size int) {
	size = intsize(i)
	for j := size - 1; j >= 0; j-- {
		b[j] = byte(i)
		i >>= 8
	}
	return size
}

//IntSize计算存储i所需的最小字节数。
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
