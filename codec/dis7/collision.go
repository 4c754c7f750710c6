package dis7

import (
	"fmt"

	"github.com/aaronwong1989/godis/codec"
)

// CollisionPdu 实体之间或实体与物体之间的碰撞 【60字节】
type CollisionPdu struct {
	Header                            // 【12字节】消息头
	IssuingEntityID   EntityID        // 【6字节】发起方实体
	CollidingEntityID EntityID        // 【6字节】被碰撞实体
	EventID           EventIdentifier // 【6字节】事件ID
	CollisionType     uint8           // 【1字节】0=非弹性, 1=弹性
	Pad               uint8           // 【1字节】填充
	Velocity          Vector3Float    // 【12字节】发起方速度，实体坐标系
	Mass              float32         // 【4字节】质量，千克
	Location          Vector3Float    // 【12字节】碰撞位置，实体坐标系
}

const CollisionLen = 60

func NewCollisionPdu() *CollisionPdu {
	return &CollisionPdu{Header: newHeader(PduTypeCollision, FamilyEntityInformation)}
}

func (p *CollisionPdu) PduHeader() *Header {
	return &p.Header
}

func (p *CollisionPdu) Decode(c *codec.Cursor) {
	p.Header.Decode(c)
	p.DecodeBody(c)
}

func (p *CollisionPdu) DecodeBody(c *codec.Cursor) {
	p.IssuingEntityID.Decode(c)
	p.CollidingEntityID.Decode(c)
	p.EventID.Decode(c)
	p.CollisionType = c.Uint8()
	p.Pad = c.Uint8()
	p.Velocity.Decode(c)
	p.Mass = c.Float32()
	p.Location.Decode(c)
}

func (p *CollisionPdu) Encode(s *codec.Sink) {
	p.Header.Encode(s)
	p.EncodeBody(s)
}

func (p *CollisionPdu) EncodeBody(s *codec.Sink) {
	p.IssuingEntityID.Encode(s)
	p.CollidingEntityID.Encode(s)
	p.EventID.Encode(s)
	s.PutUint8(p.CollisionType)
	s.PutUint8(p.Pad)
	p.Velocity.Encode(s)
	s.PutFloat32(p.Mass)
	p.Location.Encode(s)
}

func (p *CollisionPdu) Size() int {
	return CollisionLen
}

func (p *CollisionPdu) String() string {
	return fmt.Sprintf("{ Header: %s, Issuing: %s, Colliding: %s, Event: %s, Type: %d, Velocity: %s, Mass: %g, Location: %s }",
		&p.Header, p.IssuingEntityID, p.CollidingEntityID, p.EventID, p.CollisionType, p.Velocity, p.Mass, p.Location)
}

// CollisionElasticPdu 接收方计算弹性碰撞所需的数据 【100字节】
type CollisionElasticPdu struct {
	Header                                        // 【12字节】消息头
	IssuingEntityID               EntityID        // 【6字节】发起方实体
	CollidingEntityID             EntityID        // 【6字节】被碰撞实体
	CollisionEventID              EventIdentifier // 【6字节】事件ID
	Pad                           int16           // 【2字节】填充
	ContactVelocity               Vector3Float    // 【12字节】接触速度，世界坐标系
	Mass                          float32         // 【4字节】质量，千克
	LocationOfImpact              Vector3Float    // 【12字节】碰撞位置，被碰撞实体坐标系
	CollisionIntermediateResultXX float32         // 【4字节】碰撞中间结果张量
	CollisionIntermediateResultXY float32         // 【4字节】
	CollisionIntermediateResultXZ float32         // 【4字节】
	CollisionIntermediateResultYY float32         // 【4字节】
	CollisionIntermediateResultYZ float32         // 【4字节】
	CollisionIntermediateResultZZ float32         // 【4字节】
	UnitSurfaceNormal             Vector3Float    // 【12字节】接触面单位法向量，世界坐标系
	CoefficientOfRestitution      float32         // 【4字节】恢复系数
}

const CollisionElasticLen = 100

func NewCollisionElasticPdu() *CollisionElasticPdu {
	return &CollisionElasticPdu{Header: newHeader(PduTypeCollisionElastic, FamilyEntityInformation)}
}

func (p *CollisionElasticPdu) PduHeader() *Header {
	return &p.Header
}

func (p *CollisionElasticPdu) Decode(c *codec.Cursor) {
	p.Header.Decode(c)
	p.DecodeBody(c)
}

func (p *CollisionElasticPdu) DecodeBody(c *codec.Cursor) {
	p.IssuingEntityID.Decode(c)
	p.CollidingEntityID.Decode(c)
	p.CollisionEventID.Decode(c)
	p.Pad = c.Int16()
	p.ContactVelocity.Decode(c)
	p.Mass = c.Float32()
	p.LocationOfImpact.Decode(c)
	p.CollisionIntermediateResultXX = c.Float32()
	p.CollisionIntermediateResultXY = c.Float32()
	p.CollisionIntermediateResultXZ = c.Float32()
	p.CollisionIntermediateResultYY = c.Float32()
	p.CollisionIntermediateResultYZ = c.Float32()
	p.CollisionIntermediateResultZZ = c.Float32()
	p.UnitSurfaceNormal.Decode(c)
	p.CoefficientOfRestitution = c.Float32()
}

func (p *CollisionElasticPdu) Encode(s *codec.Sink) {
	p.Header.Encode(s)
	p.EncodeBody(s)
}

func (p *CollisionElasticPdu) EncodeBody(s *codec.Sink) {
	p.IssuingEntityID.Encode(s)
	p.CollidingEntityID.Encode(s)
	p.CollisionEventID.Encode(s)
	s.PutInt16(p.Pad)
	p.ContactVelocity.Encode(s)
	s.PutFloat32(p.Mass)
	p.LocationOfImpact.Encode(s)
	s.PutFloat32(p.CollisionIntermediateResultXX)
	s.PutFloat32(p.CollisionIntermediateResultXY)
	s.PutFloat32(p.CollisionIntermediateResultXZ)
	s.PutFloat32(p.CollisionIntermediateResultYY)
	s.PutFloat32(p.CollisionIntermediateResultYZ)
	s.PutFloat32(p.CollisionIntermediateResultZZ)
	p.UnitSurfaceNormal.Encode(s)
	s.PutFloat32(p.CoefficientOfRestitution)
}

func (p *CollisionElasticPdu) Size() int {
	return CollisionElasticLen
}

func (p *CollisionElasticPdu) String() string {
	return fmt.Sprintf("{ Header: %s, Issuing: %s, Colliding: %s, Event: %s, Velocity: %s, Mass: %g, Location: %s, "+
		"Tensor: [%g %g %g %g %g %g], Normal: %s, Restitution: %g }",
		&p.Header, p.IssuingEntityID, p.CollidingEntityID, p.CollisionEventID, p.ContactVelocity, p.Mass, p.LocationOfImpact,
		p.CollisionIntermediateResultXX, p.CollisionIntermediateResultXY, p.CollisionIntermediateResultXZ,
		p.CollisionIntermediateResultYY, p.CollisionIntermediateResultYZ, p.CollisionIntermediateResultZZ,
		p.UnitSurfaceNormal, p.CoefficientOfRestitution)
}
