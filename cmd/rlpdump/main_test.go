
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有2015 Go Ethereum作者
//此文件是Go以太坊的一部分。
//
//Go以太坊是免费软件：您可以重新发布和/或修改它
//根据GNU通用公共许可证的条款
//自由软件基金会，或者许可证的第3版，或者
//（由您选择）任何更高版本。
//
//Go以太坊的分布希望它会有用，
//但没有任何保证；甚至没有
//适销性或特定用途的适用性。见
//GNU通用公共许可证了解更多详细信息。
//
//你应该已经收到一份GNU通用公共许可证的副本
//一起去以太坊吧。如果没有，请参见<http://www.gnu.org/licenses/>。

package main

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinchengtsinghua/go-enr/rlp"
)

func TestDump(t *testing.T) {
	tests := []struct {
		input   string
		noASCII bool
		single  bool
		want    string
	}{
		{input: "83646f67", want: "\"dog\"\n"},
		{input: "83646f67", noASCII: true, want: "646f67\n"},
		{input: "80", want: "\"\"\n"},
		{input: "c0", want: "[]\n"},
		{input: "c50183646f67", want: "[\n  01,\n  \"dog\"\n]\n"},
		{input: "c3c101c0", want: "[\n  [\n    01\n  ],\n  []\n]\n"},
		{input: "0102", want: "01\n02\n"},
		{input: "0102", single: true, want: "01\n"},
	}
	for _, tt := range tests {
		input, _ := hex.DecodeString(tt.input)
		var buf bytes.Buffer
		require.NoError(t, dumpAll(&buf, input, tt.single, tt.noASCII), tt.input)
		assert.Equal(t, tt.want, buf.String(), tt.input)
	}
}

func TestDumpErrors(t *testing.T) {
	for _, input := range []string{"83646f", "8100", "c3c1"} {
		b, _ := hex.DecodeString(input)
		var buf bytes.Buffer
		assert.Error(t, dumpAll(&buf, b, false, false), input)
	}
	var buf bytes.Buffer
	assert.Equal(t, rlp.ErrCanonSize, dumpAll(&buf, []byte{0x81, 0x00}, false, false))
}
