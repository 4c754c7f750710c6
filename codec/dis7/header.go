package dis7

import (
	"fmt"

	"github.com/aaronwong1989/godis/codec"
)

// Header 每个PDU开头的12字节消息头
type Header struct {
	ProtocolVersion uint8          // 【1字节】协议版本 5=DIS-1995, 6=DIS-1998, 7=DIS-2012
	ExerciseID      uint8          // 【1字节】演练ID
	PduType         PduType        // 【1字节】PDU类型
	ProtocolFamily  ProtocolFamily // 【1字节】协议族
	Timestamp       uint32         // 【4字节】时间戳，见 NewTimestamp
	Length          uint16         // 【2字节】发送方声明的总长度，Decode 不校验
	PduStatus       uint8          // 【1字节】状态
	Padding         uint8          // 【1字节】填充
}

const (
	HeadLength      = 12
	ProtocolVersion = uint8(7)
)

func newHeader(kind PduType, family ProtocolFamily) Header {
	return Header{ProtocolVersion: ProtocolVersion, PduType: kind, ProtocolFamily: family}
}

func (h *Header) Decode(c *codec.Cursor) {
	h.ProtocolVersion = c.Uint8()
	h.ExerciseID = c.Uint8()
	h.PduType = PduType(c.Uint8())
	h.ProtocolFamily = ProtocolFamily(c.Uint8())
	h.Timestamp = c.Uint32()
	h.Length = c.Uint16()
	h.PduStatus = c.Uint8()
	h.Padding = c.Uint8()
}

func (h *Header) Encode(s *codec.Sink) {
	s.PutUint8(h.ProtocolVersion)
	s.PutUint8(h.ExerciseID)
	s.PutUint8(uint8(h.PduType))
	s.PutUint8(uint8(h.ProtocolFamily))
	s.PutUint32(h.Timestamp)
	s.PutUint16(h.Length)
	s.PutUint8(h.PduStatus)
	s.PutUint8(h.Padding)
}

func (h *Header) Size() int {
	return HeadLength
}

func (h *Header) String() string {
	return fmt.Sprintf("{ Version: %d, ExerciseID: %d, PduType: %s, Family: %s, Timestamp: %#08x, Length: %d, Status: %#02x }",
		h.ProtocolVersion, h.ExerciseID, h.PduType, h.ProtocolFamily, h.Timestamp, h.Length, h.PduStatus)
}

// Pdu 以 Header 为首个字段的记录
// DecodeBody 与 EncodeBody 处理消息头之后的内容，Registry 只解一次消息头，然后调用 DecodeBody
type Pdu interface {
	codec.Record
	codec.Sizer
	fmt.Stringer
	PduHeader() *Header
	DecodeBody(c *codec.Cursor)
	EncodeBody(s *codec.Sink)
}
