package codec

// Marshal 将 r 编码到新的缓冲区
func Marshal(r Record) []byte {
	size := 0
	if sz, ok := r.(Sizer); ok {
		size = sz.Size()
	}
	s := NewSink(size)
	r.Encode(s)
	return s.Bytes()
}

// Unmarshal 将 buf 解码到新建的 T，失败时返回 nil，调用方不会拿到解了一半的记录
func Unmarshal[T any, P interface {
	*T
	Record
}](buf []byte) (*T, error) {
	v := P(new(T))
	c := NewCursor(buf)
	v.Decode(c)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}
