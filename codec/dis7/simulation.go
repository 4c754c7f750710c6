package dis7

import (
	"time"

	"github.com/aaronwong1989/godis/codec"
)

// Simulation 一个仿真应用的身份，用于填充发出的PDU：演练ID、仿真地址、事件编号与请求号
type Simulation struct {
	ExerciseID uint8
	Address    SimulationAddress
	Events     codec.Sequence16
	Requests   codec.Sequence32
	// Now 为空时使用 time.Now
	Now func() time.Time
}

// Stamp 填充演练ID与绝对时间戳
func (s *Simulation) Stamp(h *Header) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	h.ExerciseID = s.ExerciseID
	h.Timestamp = NewTimestamp(now(), true)
}

// Entity 本应用的第 n 个实体
func (s *Simulation) Entity(n uint16) EntityID {
	return EntityID{Site: s.Address.Site, Application: s.Address.Application, Entity: n}
}

// NextEvent 生成新的事件ID
func (s *Simulation) NextEvent() EventIdentifier {
	return EventIdentifier{SimulationAddress: s.Address, EventNumber: s.Events.NextVal()}
}

// NextRequestID 生成仿真管理PDU的请求号
func (s *Simulation) NextRequestID() uint32 {
	return s.Requests.NextVal()
}

// Acknowledge 构造对请求 requestID 的确认消息
func (s *Simulation) Acknowledge(from, to EntityID, flag, response uint16, requestID uint32) *AcknowledgePdu {
	ack := NewAcknowledgePdu()
	s.Stamp(&ack.Header)
	ack.OriginatingID = from
	ack.ReceivingID = to
	ack.AcknowledgeFlag = flag
	ack.ResponseFlag = response
	ack.RequestID = requestID
	return ack
}

// Comment 构造 Comment PDU，每段文本作为一个 datumID 类型的变长数据项
func (s *Simulation) Comment(from, to EntityID, datumID uint32, text ...string) *CommentPdu {
	cm := NewCommentPdu()
	s.Stamp(&cm.Header)
	cm.OriginatingID = from
	cm.ReceivingID = to
	for _, t := range text {
		cm.VariableDatums = append(cm.VariableDatums, NewTextDatum(datumID, t))
	}
	return cm
}
