package dis7

import (
	"fmt"

	"github.com/aaronwong1989/godis/codec"
)

// RadioIdentifier 电台标识 【8字节】
type RadioIdentifier struct {
	SiteNumber        uint16
	ApplicationNumber uint16
	ReferenceNumber   uint16
	RadioNumber       uint16
}

func (r *RadioIdentifier) Decode(c *codec.Cursor) {
	r.SiteNumber = c.Uint16()
	r.ApplicationNumber = c.Uint16()
	r.ReferenceNumber = c.Uint16()
	r.RadioNumber = c.Uint16()
}

func (r *RadioIdentifier) Encode(s *codec.Sink) {
	s.PutUint16(r.SiteNumber)
	s.PutUint16(r.ApplicationNumber)
	s.PutUint16(r.ReferenceNumber)
	s.PutUint16(r.RadioNumber)
}

func (r *RadioIdentifier) Size() int {
	return 8
}

func (r *RadioIdentifier) String() string {
	return fmt.Sprintf("{ Site: %d, Application: %d, Reference: %d, Radio: %d }",
		r.SiteNumber, r.ApplicationNumber, r.ReferenceNumber, r.RadioNumber)
}

// IntercomIdentifier 内部通话标识，与 RadioIdentifier 结构相同但不可互换 【8字节】
type IntercomIdentifier struct {
	SiteNumber        uint16
	ApplicationNumber uint16
	ReferenceNumber   uint16
	IntercomNumber    uint16
}

func (r *IntercomIdentifier) Decode(c *codec.Cursor) {
	r.SiteNumber = c.Uint16()
	r.ApplicationNumber = c.Uint16()
	r.ReferenceNumber = c.Uint16()
	r.IntercomNumber = c.Uint16()
}

func (r *IntercomIdentifier) Encode(s *codec.Sink) {
	s.PutUint16(r.SiteNumber)
	s.PutUint16(r.ApplicationNumber)
	s.PutUint16(r.ReferenceNumber)
	s.PutUint16(r.IntercomNumber)
}

func (r *IntercomIdentifier) Size() int {
	return 8
}

func (r *IntercomIdentifier) String() string {
	return fmt.Sprintf("{ Site: %d, Application: %d, Reference: %d, Intercom: %d }",
		r.SiteNumber, r.ApplicationNumber, r.ReferenceNumber, r.IntercomNumber)
}
