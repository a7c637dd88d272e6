
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
package log

import (
	"fmt"
	"os"

	"github.com/go-stack/stack"
	"github.com/sirupsen/logrus"
)

const errorKey = "LOG_ERROR"
const callerKey = "caller"
const skipLevel = 2

type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

//字符串返回LVL的名称。
func (l Lvl) String() string {
	switch l {
	case LvlTrace:
		return "trce"
	case LvlDebug:
		return "dbug"
	case LvlInfo:
		return "info"
	case LvlWarn:
		return "warn"
	case LvlError:
		return "eror"
	case LvlCrit:
		return "crit"
	default:
		return fmt.Sprintf("lvl(%d)", int(l))
	}
}

//lvl from string从字符串名称返回适当的lvl。
//用于分析命令行参数和配置文件。
func LvlFromString(lvlString string) (Lvl, error) {
	switch lvlString {
	case "trace", "trce":
		return LvlTrace, nil
	case "debug", "dbug":
		return LvlDebug, nil
	case "info":
		return LvlInfo, nil
	case "warn":
		return LvlWarn, nil
	case "error", "eror":
		return LvlError, nil
	case "crit":
		return LvlCrit, nil
	default:
		return LvlDebug, fmt.Errorf("Unknown level: %v", lvlString)
	}
}

//logrusLevel将级别映射到logrus的级别。crit记录为fatal，
//但退出由本包自己完成。
func (l Lvl) logrusLevel() logrus.Level {
	switch {
	case l <= LvlCrit:
		return logrus.FatalLevel
	case l == LvlError:
		return logrus.ErrorLevel
	case l == LvlWarn:
		return logrus.WarnLevel
	case l == LvlInfo:
		return logrus.InfoLevel
	case l == LvlDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

//记录器将键/值对写入后端
type Logger interface {
	//new返回一个新的记录器，该记录器的上下文加上给定的上下文
	New(ctx ...interface{}) Logger

	//使用上下文键/值对在给定级别记录消息
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
	b   *backend
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, skip int) {
	out := l.b.get()
	level := lvl.logrusLevel()
	if !out.IsLevelEnabled(level) {
		return
	}
	fields := fieldsOf(newContext(l.ctx, ctx))
	fields[callerKey] = fmt.Sprintf("%v", stack.Caller(skip))
	out.WithFields(fields).Log(level, msg)
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{newContext(l.ctx, ctx), l.b}
}

func newContext(prefix []interface{}, suffix []interface{}) []interface{} {
	normalizedSuffix := normalize(suffix)
	newCtx := make([]interface{}, len(prefix)+len(normalizedSuffix))
	n := copy(newCtx, prefix)
	copy(newCtx[n:], normalizedSuffix)
	return newCtx
}

func (l *logger) Trace(msg string, ctx ...interface{}) {
	l.write(msg, LvlTrace, ctx, skipLevel)
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.write(msg, LvlDebug, ctx, skipLevel)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.write(msg, LvlInfo, ctx, skipLevel)
}

func (l *logger) Warn(msg string, ctx ...interface{}) {
	l.write(msg, LvlWarn, ctx, skipLevel)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.write(msg, LvlError, ctx, skipLevel)
}

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

func normalize(ctx []interface{}) []interface{} {
	//如果调用方传递了CTX对象，则展开它
	if len(ctx) == 1 {
		if ctxMap, ok := ctx[0].(Ctx); ok {
			ctx = ctxMap.toArray()
		}
	}

	//CTX是一系列键/值对，长度必须是偶数。
	//日志调用不返回错误，所以这里只补齐长度，
	//用户看到输出不对时自己修正调用。
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}

	return ctx
}

//fieldsOf把键/值对转换为logrus字段。
func fieldsOf(ctx []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(ctx)/2+1)
	for i := 0; i < len(ctx); i += 2 {
		k, ok := ctx[i].(string)
		if !ok {
			fields[errorKey] = fmt.Sprintf("%+v is not a string key", ctx[i])
			continue
		}
		fields[k] = formatValue(ctx[i+1])
	}
	return fields
}

//TerminalStringer由需要在终端输出中缩短显示的类型实现，例如节点ID。
type TerminalStringer interface {
	TerminalString() string
}

func formatValue(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case error:
		return v.Error()
	case TerminalStringer:
		return v.TerminalString()
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}

//CTX是作为上下文传递给日志函数的键/值对的映射
//只有当你真的需要在你传递的参数周围更大的安全性时才使用这个
//到日志功能。
type Ctx map[string]interface{}

func (c Ctx) toArray() []interface{} {
	arr := make([]interface{}, len(c)*2)

	i := 0
	for k, v := range c {
		arr[i] = k
		arr[i+1] = v
		i += 2
	}

	return arr
}
