package comm

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/aaronwong1989/godis/comm/logging"
)

var log = logging.GetDefaultLogger()

// TrimStr 截断首个 0 字节之后的内容
func TrimStr(bts []byte) string {
	var i = 0
	for ; i < len(bts); i++ {
		if bts[i] == 0 {
			break
		}
	}
	return string(bts[:i])
}

// Latin1Encode 以 ISO 8859-1 编码，字符集之外的字符替换为 '?'
func Latin1Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// Latin1Decode 解码 ISO 8859-1 文本，截断首个 0 字节之后的内容
func Latin1Decode(bts []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().String(TrimStr(bts))
	if err != nil {
		return ""
	}
	return s
}

// LogHex 以16进制打印报文
func LogHex(level logging.Level, model string, bts []byte) {
	if !log.Enabled(level) {
		return
	}
	msg := fmt.Sprintf("[OnTraffic] Hex %s: %x", model, bts)
	switch level {
	case logging.DebugLevel:
		log.Debugf("%s", msg)
	case logging.ErrorLevel:
		log.Errorf("%s", msg)
	case logging.WarnLevel:
		log.Warnf("%s", msg)
	default:
		log.Infof("%s", msg)
	}
}

// SavePid 在程序执行的当前目录生成pid文件
func SavePid(f string) string {
	pid := fmt.Sprintf("%d", os.Getpid())
	file, err := os.OpenFile(f, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Errorf("%v", err)
		return pid
	}

	writer := bufio.NewWriter(file)
	_, _ = writer.WriteString(pid)
	defer func(file *os.File, writer *bufio.Writer) {
		_ = writer.Flush()
		_ = file.Close()
	}(file, writer)

	return pid
}

// StartMonitor 开启pprof，监听请求
func StartMonitor(port int) {
	go func() {
		addr := strconv.Itoa(port)
		log.Infof("[Pprof    ] http://localhost:%s/debug/pprof/", addr)
		if err := http.ListenAndServe(":"+addr, nil); err != nil {
			log.Infof("start pprof failed on %s", addr)
		}
	}()
}
