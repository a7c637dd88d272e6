
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
	"github.com/pkg/errors"
)

//解码错误。所有解码函数都严格检查规范编码，
//同一个逻辑值只有一种可接受的字节表示。
var (
	ErrExpectedString   = errors.New("rlp: expected String or Byte")
	ErrExpectedList     = errors.New("rlp: expected List")
	ErrCanonInt         = errors.New("rlp: non-canonical integer format")
	ErrCanonSize        = errors.New("rlp: non-canonical size information")
	ErrValueTooLarge    = errors.New("rlp: value size exceeds available input length")
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")
	ErrUint64Range      = errors.New("rlp: uint64 overflow")
)

//SplitListValues解码一个完整的rlp列表，返回其中每个元素的原始编码。
//输入必须恰好是一个列表，列表后不能有多余的字节。
func SplitListValues(b []byte) ([]RawValue, error) {
	content, rest, err := SplitList(b)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, ErrMoreThanOneValue
	}
	var values []RawValue
	for len(content) > 0 {
		_, tagsize, size, err := readKind(content)
		if err != nil {
			return nil, err
		}
		end := tagsize + size
		values = append(values, RawValue(content[:end:end]))
		content = content[end:]
	}
	return values, nil
}

//DecodeBytes解码恰好包含一个rlp字符串的输入并返回其内容。
func DecodeBytes(b []byte) ([]byte, error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, ErrMoreThanOneValue
	}
	return content, nil
}

//DecodeUint64解码恰好包含一个规范编码整数的输入。
func DecodeUint64(b []byte) (uint64, error) {
	x, rest, err := SplitUint64(b)
	if err != nil {
		return 0, err
	}
	if len(rest) > 0 {
		return 0, ErrMoreThanOneValue
	}
	return x, nil
}
