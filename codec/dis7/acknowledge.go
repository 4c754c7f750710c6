package dis7

import (
	"fmt"

	"github.com/aaronwong1989/godis/codec"
)

// acknowledgeBody Acknowledge 与 Acknowledge-R 共用的消息体，两种PDU仍是不同的类型
type acknowledgeBody struct {
	OriginatingID   EntityID // 【6字节】发送方
	ReceivingID     EntityID // 【6字节】接收方
	AcknowledgeFlag uint16   // 【2字节】被确认的请求类型，见 AckCreateEntity 等
	ResponseFlag    uint16   // 【2字节】响应结果，见 AckResponseMap
	RequestID       uint32   // 【4字节】取自请求
}

func (b *acknowledgeBody) decode(c *codec.Cursor) {
	b.OriginatingID.Decode(c)
	b.ReceivingID.Decode(c)
	b.AcknowledgeFlag = c.Uint16()
	b.ResponseFlag = c.Uint16()
	b.RequestID = c.Uint32()
}

func (b *acknowledgeBody) encode(s *codec.Sink) {
	b.OriginatingID.Encode(s)
	b.ReceivingID.Encode(s)
	s.PutUint16(b.AcknowledgeFlag)
	s.PutUint16(b.ResponseFlag)
	s.PutUint32(b.RequestID)
}

func (b *acknowledgeBody) string() string {
	return fmt.Sprintf("Originating: %s, Receiving: %s, AcknowledgeFlag: %d, ResponseFlag: %s, RequestID: %d",
		b.OriginatingID, b.ReceivingID, b.AcknowledgeFlag, AckResponseMap[b.ResponseFlag], b.RequestID)
}

const AcknowledgeLen = 32

const (
	AckCreateEntity      = uint16(1)
	AckRemoveEntity      = uint16(2)
	AckStartResume       = uint16(3)
	AckStopFreeze        = uint16(4)
	AckTransferOwnership = uint16(5)
)

var AckResponseMap = map[uint16]string{
	0: "Other",
	1: "AbleToComply",
	2: "UnableToComply",
	3: "PendingOperatorAction",
}

// AcknowledgePdu 对 Start/Resume、Stop/Freeze、Create Entity、Remove Entity 的确认 【32字节】
type AcknowledgePdu struct {
	Header
	acknowledgeBody
}

func NewAcknowledgePdu() *AcknowledgePdu {
	return &AcknowledgePdu{Header: newHeader(PduTypeAcknowledge, FamilySimulationManagement)}
}

func (p *AcknowledgePdu) PduHeader() *Header {
	return &p.Header
}

func (p *AcknowledgePdu) Decode(c *codec.Cursor) {
	p.Header.Decode(c)
	p.DecodeBody(c)
}

func (p *AcknowledgePdu) DecodeBody(c *codec.Cursor) {
	p.acknowledgeBody.decode(c)
}

func (p *AcknowledgePdu) Encode(s *codec.Sink) {
	p.Header.Encode(s)
	p.EncodeBody(s)
}

func (p *AcknowledgePdu) EncodeBody(s *codec.Sink) {
	p.acknowledgeBody.encode(s)
}

func (p *AcknowledgePdu) Size() int {
	return AcknowledgeLen
}

func (p *AcknowledgePdu) String() string {
	return fmt.Sprintf("{ Header: %s, %s }", &p.Header, p.acknowledgeBody.string())
}

// AcknowledgeReliablePdu 可靠仿真管理协议族的确认消息 【32字节】
type AcknowledgeReliablePdu struct {
	Header
	acknowledgeBody
}

func NewAcknowledgeReliablePdu() *AcknowledgeReliablePdu {
	return &AcknowledgeReliablePdu{Header: newHeader(PduTypeAcknowledgeR, FamilySimulationManagementR)}
}

func (p *AcknowledgeReliablePdu) PduHeader() *Header {
	return &p.Header
}

func (p *AcknowledgeReliablePdu) Decode(c *codec.Cursor) {
	p.Header.Decode(c)
	p.DecodeBody(c)
}

func (p *AcknowledgeReliablePdu) DecodeBody(c *codec.Cursor) {
	p.acknowledgeBody.decode(c)
}

func (p *AcknowledgeReliablePdu) Encode(s *codec.Sink) {
	p.Header.Encode(s)
	p.EncodeBody(s)
}

func (p *AcknowledgeReliablePdu) EncodeBody(s *codec.Sink) {
	p.acknowledgeBody.encode(s)
}

func (p *AcknowledgeReliablePdu) Size() int {
	return AcknowledgeLen
}

func (p *AcknowledgeReliablePdu) String() string {
	return fmt.Sprintf("{ Header: %s, %s }", &p.Header, p.acknowledgeBody.string())
}
