package dis7

import (
	"math"

	"github.com/go-faster/errors"

	"github.com/aaronwong1989/godis/codec"
)

// checker 由编码前需要校验自身一致性的PDU实现
type checker interface {
	check() error
}

// Marshal 将消息头的长度设置为实际编码长度后编码，编码前校验变长字段的一致性
// 需要保留调用方填写的长度时使用 codec.Marshal
func Marshal(pdu Pdu) ([]byte, error) {
	if c, ok := pdu.(checker); ok {
		if err := c.check(); err != nil {
			return nil, err
		}
	}
	size := pdu.Size()
	if size > math.MaxUint16 {
		return nil, errors.Errorf("%s is %d bytes, larger than a pdu can declare", pdu.PduHeader().PduType, size)
	}
	pdu.PduHeader().Length = uint16(size)
	return codec.Marshal(pdu), nil
}
