
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
package log

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var root = &logger{[]interface{}{}, newBackend(os.Stderr)}

//backend保存当前的logrus实例，可以在运行时替换。
type backend struct {
	mu  sync.RWMutex
	out *logrus.Logger
}

func newBackend(w io.Writer) *backend {
	b := new(backend)
	b.set(newLogrus(w, logrus.InfoLevel))
	return b
}

func (b *backend) get() *logrus.Logger {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.out
}

func (b *backend) set(l *logrus.Logger) {
	b.mu.Lock()
	b.out = l
	b.mu.Unlock()
}

//newLogrus创建写入w的logrus实例。写终端时启用颜色，
//其他情况输出logfmt格式。
func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02|15:04:05.000",
		DisableColors:   true,
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		w = colorable.NewColorable(f)
		formatter.DisableColors = false
		formatter.ForceColors = true
	}
	l.SetOutput(w)
	l.SetFormatter(formatter)
	l.SetLevel(level)
	return l
}

//SetOutput将根记录器的输出重定向到w，级别保持不变。
func SetOutput(w io.Writer) {
	root.b.set(newLogrus(w, root.b.get().GetLevel()))
}

//SetLevel设置根记录器输出的最高级别。
func SetLevel(lvl Lvl) {
	root.b.get().SetLevel(lvl.logrusLevel())
}

//new返回具有给定上下文的新记录器。
//new是根（）的方便别名。new
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

//根返回根记录器
func Root() Logger {
	return root
}

//以下函数绕过导出的记录器方法（logger.debug，
//等）保持所有日志记录器路径的调用深度相同。
//stack.Caller(2)总是指向客户端代码中的调用位置。

//trace是根（）的方便别名。
func Trace(msg string, ctx ...interface{}) {
	root.write(msg, LvlTrace, ctx, skipLevel)
}

//debug是根（）的方便别名。debug
func Debug(msg string, ctx ...interface{}) {
	root.write(msg, LvlDebug, ctx, skipLevel)
}

//info是根（）的方便别名。info
func Info(msg string, ctx ...interface{}) {
	root.write(msg, LvlInfo, ctx, skipLevel)
}

//warn是根（）的方便别名。warn
func Warn(msg string, ctx ...interface{}) {
	root.write(msg, LvlWarn, ctx, skipLevel)
}

//错误是根（）的方便别名。错误
func Error(msg string, ctx ...interface{}) {
	root.write(msg, LvlError, ctx, skipLevel)
}

//crit是root（）的方便别名。
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}
