package dis7

import (
	"fmt"

	"github.com/aaronwong1989/godis/codec"
)

// SimulationAddress 仿真应用地址 【4字节】
type SimulationAddress struct {
	Site        uint16
	Application uint16
}

func (a *SimulationAddress) Decode(c *codec.Cursor) {
	a.Site = c.Uint16()
	a.Application = c.Uint16()
}

func (a *SimulationAddress) Encode(s *codec.Sink) {
	s.PutUint16(a.Site)
	s.PutUint16(a.Application)
}

func (a *SimulationAddress) Size() int {
	return 4
}

func (a SimulationAddress) String() string {
	return fmt.Sprintf("%d:%d", a.Site, a.Application)
}

// EntityID 演练内的实体ID 【6字节】
type EntityID struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

func (e *EntityID) Decode(c *codec.Cursor) {
	e.Site = c.Uint16()
	e.Application = c.Uint16()
	e.Entity = c.Uint16()
}

func (e *EntityID) Encode(s *codec.Sink) {
	s.PutUint16(e.Site)
	s.PutUint16(e.Application)
	s.PutUint16(e.Entity)
}

func (e *EntityID) Size() int {
	return 6
}

func (e EntityID) String() string {
	return fmt.Sprintf("%d:%d:%d", e.Site, e.Application, e.Entity)
}

// EventIdentifier 同一应用发出的事件编号 【6字节】
type EventIdentifier struct {
	SimulationAddress SimulationAddress
	EventNumber       uint16
}

func (e *EventIdentifier) Decode(c *codec.Cursor) {
	e.SimulationAddress.Decode(c)
	e.EventNumber = c.Uint16()
}

func (e *EventIdentifier) Encode(s *codec.Sink) {
	e.SimulationAddress.Encode(s)
	s.PutUint16(e.EventNumber)
}

func (e *EventIdentifier) Size() int {
	return 6
}

func (e EventIdentifier) String() string {
	return fmt.Sprintf("%s#%d", e.SimulationAddress, e.EventNumber)
}

// Vector3Float 单精度三维向量，用于速度、位置与法向量 【12字节】
type Vector3Float struct {
	X float32
	Y float32
	Z float32
}

func (v *Vector3Float) Decode(c *codec.Cursor) {
	v.X = c.Float32()
	v.Y = c.Float32()
	v.Z = c.Float32()
}

func (v *Vector3Float) Encode(s *codec.Sink) {
	s.PutFloat32(v.X)
	s.PutFloat32(v.Y)
	s.PutFloat32(v.Z)
}

func (v *Vector3Float) Size() int {
	return 12
}

func (v Vector3Float) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
