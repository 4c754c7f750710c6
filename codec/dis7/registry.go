package dis7

import (
	"encoding/binary"

	"github.com/go-faster/errors"

	"github.com/aaronwong1989/godis/codec"
)

// Registry PDU类型到构造函数的映射
// Register 不能并发调用，注册完成后可以在多个协程间共享
type Registry struct {
	ctors map[PduType]func() Pdu

	// StrictLength 拒绝声明长度与实际解码字节数不一致的PDU
	StrictLength bool
	// SkipUnknown DecodeStream 遇到未注册的类型时跳过而不是报错
	SkipUnknown bool
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[PduType]func() Pdu)}
}

// DefaultRegistry 返回注册了本包全部PDU的新 Registry
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(PduTypeCollision, func() Pdu { return NewCollisionPdu() })
	r.MustRegister(PduTypeCollisionElastic, func() Pdu { return NewCollisionElasticPdu() })
	r.MustRegister(PduTypeAcknowledge, func() Pdu { return NewAcknowledgePdu() })
	r.MustRegister(PduTypeAcknowledgeR, func() Pdu { return NewAcknowledgeReliablePdu() })
	r.MustRegister(PduTypeComment, func() Pdu { return NewCommentPdu() })
	return r
}

// Register 将 kind 绑定到 ctor，ctor 构造的PDU消息头必须是同一类型，构造函数不会被注册到别的类型下
func (r *Registry) Register(kind PduType, ctor func() Pdu) error {
	if ctor == nil {
		return errors.Errorf("register %s: nil constructor", kind)
	}
	if _, exists := r.ctors[kind]; exists {
		return errors.Errorf("register %s: already registered", kind)
	}
	if got := ctor().PduHeader().PduType; got != kind {
		return errors.Errorf("register %s: constructor builds %s", kind, got)
	}
	r.ctors[kind] = ctor
	return nil
}

func (r *Registry) MustRegister(kind PduType, ctor func() Pdu) {
	if err := r.Register(kind, ctor); err != nil {
		panic(err)
	}
}

// Lookup 查找 kind 对应的构造函数
func (r *Registry) Lookup(kind PduType) (func() Pdu, bool) {
	ctor, ok := r.ctors[kind]
	return ctor, ok
}

// Kinds 已注册的类型数
func (r *Registry) Kinds() int {
	return len(r.ctors)
}

// Decode 只解一次消息头，按类型选出PDU并由其解码剩余内容，失败时不返回PDU
func (r *Registry) Decode(buf []byte) (Pdu, error) {
	c := codec.NewCursor(buf)
	var h Header
	h.Decode(c)
	if err := c.Err(); err != nil {
		return nil, errors.Wrap(err, "decode header")
	}
	ctor, ok := r.ctors[h.PduType]
	if !ok {
		return nil, errors.Wrapf(codec.ErrUnknownPduType, "pdu type %d", uint8(h.PduType))
	}
	pdu := ctor()
	*pdu.PduHeader() = h
	pdu.DecodeBody(c)
	if err := c.Err(); err != nil {
		return nil, errors.Wrapf(err, "decode %s", h.PduType)
	}
	if r.StrictLength && int(h.Length) != c.Pos() {
		return nil, codec.Malformed("%s declares length %d, decoded %d bytes", h.PduType, h.Length, c.Pos())
	}
	return pdu, nil
}

// DecodeStream 解码首尾相接的多个PDU，按每个消息头声明的长度定位下一个PDU
// 返回第一次失败前解出的PDU以及该错误
func (r *Registry) DecodeStream(buf []byte) ([]Pdu, error) {
	var pdus []Pdu
	for off := 0; off < len(buf); {
		rest := buf[off:]
		if len(rest) < HeadLength {
			return pdus, errors.Wrapf(codec.ErrBufferUnderrun, "header at offset %d: %d bytes left", off, len(rest))
		}
		length := int(binary.BigEndian.Uint16(rest[8:10]))
		if length < HeadLength || length > len(rest) {
			return pdus, codec.Malformed("pdu at offset %d declares length %d, %d bytes left", off, length, len(rest))
		}
		pdu, err := r.Decode(rest[:length])
		if err != nil {
			if r.SkipUnknown && errors.Is(err, codec.ErrUnknownPduType) {
				off += length
				continue
			}
			return pdus, errors.Wrapf(err, "pdu at offset %d", off)
		}
		pdus = append(pdus, pdu)
		off += length
	}
	return pdus, nil
}
