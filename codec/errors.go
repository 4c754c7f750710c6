package codec

import (
	"github.com/go-faster/errors"
)

var (
	// ErrBufferUnderrun 剩余字节不足
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrUnknownPduType PDU类型未注册
	ErrUnknownPduType = errors.New("unknown pdu type")

	// ErrMalformedField 长度或计数字段超出了缓冲区剩余的数据
	ErrMalformedField = errors.New("malformed field")
)

// Malformed 返回携带上下文的 ErrMalformedField
func Malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedField, format, args...)
}
