package dis7

import (
	"fmt"
	"strings"

	"github.com/aaronwong1989/godis/codec"
	"github.com/aaronwong1989/godis/comm"
)

// FixedDatum 定长数据项，由数据项ID与32位取值组成 【8字节】
type FixedDatum struct {
	ID    uint32
	Value uint32
}

const FixedDatumLen = 8

func (d *FixedDatum) Decode(c *codec.Cursor) {
	d.ID = c.Uint32()
	d.Value = c.Uint32()
}

func (d *FixedDatum) Encode(s *codec.Sink) {
	s.PutUint32(d.ID)
	s.PutUint32(d.Value)
}

func (d *FixedDatum) Size() int {
	return FixedDatumLen
}

// VariableDatum 变长数据项，携带 Length 位的数据，线上补 0 对齐到 64 位 【8字节 + 填充后的数据】
// 编码时以 Length 为准：Value 多余的字节被截掉，不足的部分补 0
// dis7.Marshal 会拒绝 Length 与 Value 长度不一致的数据项
type VariableDatum struct {
	ID     uint32 // 【4字节】数据项ID
	Length uint32 // 【4字节】数据长度，单位为位
	Value  []byte // 【变长】
}

// NewVariableDatum 按 value 的长度设置 Length，空值保存为 nil
func NewVariableDatum(id uint32, value []byte) VariableDatum {
	if len(value) == 0 {
		value = nil
	}
	return VariableDatum{ID: id, Length: uint32(len(value)) * 8, Value: value}
}

// NewTextDatum 以 ISO 8859-1 编码 s
func NewTextDatum(id uint32, s string) VariableDatum {
	return NewVariableDatum(id, comm.Latin1Encode(s))
}

// Text 以 ISO 8859-1 解码 Value，截断首个 0 字节之后的内容
func (d *VariableDatum) Text() string {
	return comm.Latin1Decode(d.Value)
}

func (d *VariableDatum) valueLen() int {
	return int((uint64(d.Length) + 7) / 8)
}

// check 校验 Length 与 Value 的长度一致
func (d *VariableDatum) check() error {
	if d.valueLen() != len(d.Value) {
		return codec.Malformed("variable datum %d declares %d bits, holds %d bytes", d.ID, d.Length, len(d.Value))
	}
	return nil
}

func paddedLen(n int) int {
	return (n + 7) / 8 * 8
}

func (d *VariableDatum) Decode(c *codec.Cursor) {
	d.Value = nil
	d.ID = c.Uint32()
	d.Length = c.Uint32()
	if c.Err() != nil {
		return
	}
	n := d.valueLen()
	if paddedLen(n) > c.Remaining() {
		c.Fail(codec.Malformed("variable datum %d declares %d bits, %d bytes left", d.ID, d.Length, c.Remaining()))
		return
	}
	d.Value = c.Bytes(n)
	c.Skip(paddedLen(n) - n)
}

func (d *VariableDatum) Encode(s *codec.Sink) {
	s.PutUint32(d.ID)
	s.PutUint32(d.Length)
	n := d.valueLen()
	if len(d.Value) >= n {
		s.PutBytes(d.Value[:n])
	} else {
		s.PutBytes(d.Value)
		s.Pad(n - len(d.Value))
	}
	s.Pad(paddedLen(n) - n)
}

func (d *VariableDatum) Size() int {
	return 8 + paddedLen(d.valueLen())
}

// CommentPdu 仿真管理之间传递任意定长与变长数据项的消息 【变长】
// 编码时记录数取自切片长度
type CommentPdu struct {
	Header                         // 【12字节】消息头
	OriginatingID  EntityID        // 【6字节】发送方
	ReceivingID    EntityID        // 【6字节】接收方
	FixedDatums    []FixedDatum    // 【4字节计数 + 8*N字节】
	VariableDatums []VariableDatum // 【4字节计数 + 变长】
}

const CommentBaseLen = HeadLength + 6 + 6 + 4 + 4

func NewCommentPdu() *CommentPdu {
	return &CommentPdu{Header: newHeader(PduTypeComment, FamilySimulationManagement)}
}

func (p *CommentPdu) PduHeader() *Header {
	return &p.Header
}

func (p *CommentPdu) Decode(c *codec.Cursor) {
	p.Header.Decode(c)
	p.DecodeBody(c)
}

func (p *CommentPdu) DecodeBody(c *codec.Cursor) {
	p.FixedDatums = nil
	p.VariableDatums = nil
	p.OriginatingID.Decode(c)
	p.ReceivingID.Decode(c)
	numFixed := c.Uint32()
	numVariable := c.Uint32()
	if c.Err() != nil {
		return
	}
	if uint64(numFixed)*FixedDatumLen > uint64(c.Remaining()) {
		c.Fail(codec.Malformed("%d fixed datums, %d bytes left", numFixed, c.Remaining()))
		return
	}
	if numFixed > 0 {
		p.FixedDatums = make([]FixedDatum, numFixed)
	}
	for i := range p.FixedDatums {
		p.FixedDatums[i].Decode(c)
	}
	// 每个变长数据项至少包含8字节的ID与长度
	if uint64(numVariable)*8 > uint64(c.Remaining()) {
		c.Fail(codec.Malformed("%d variable datums, %d bytes left", numVariable, c.Remaining()))
		return
	}
	if numVariable > 0 {
		p.VariableDatums = make([]VariableDatum, numVariable)
	}
	for i := range p.VariableDatums {
		p.VariableDatums[i].Decode(c)
	}
}

func (p *CommentPdu) Encode(s *codec.Sink) {
	p.Header.Encode(s)
	p.EncodeBody(s)
}

func (p *CommentPdu) EncodeBody(s *codec.Sink) {
	p.OriginatingID.Encode(s)
	p.ReceivingID.Encode(s)
	s.PutUint32(uint32(len(p.FixedDatums)))
	s.PutUint32(uint32(len(p.VariableDatums)))
	for i := range p.FixedDatums {
		p.FixedDatums[i].Encode(s)
	}
	for i := range p.VariableDatums {
		p.VariableDatums[i].Encode(s)
	}
}

func (p *CommentPdu) check() error {
	for i := range p.VariableDatums {
		if err := p.VariableDatums[i].check(); err != nil {
			return err
		}
	}
	return nil
}

func (p *CommentPdu) Size() int {
	size := CommentBaseLen + len(p.FixedDatums)*FixedDatumLen
	for i := range p.VariableDatums {
		size += p.VariableDatums[i].Size()
	}
	return size
}

func (p *CommentPdu) String() string {
	var sb strings.Builder
	for i, d := range p.FixedDatums {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d=%d", d.ID, d.Value)
	}
	fixed := sb.String()
	sb.Reset()
	for i, d := range p.VariableDatums {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d=%x", d.ID, d.Value)
	}
	return fmt.Sprintf("{ Header: %s, Originating: %s, Receiving: %s, Fixed: [%s], Variable: [%s] }",
		&p.Header, p.OriginatingID, p.ReceivingID, fixed, sb.String())
}
