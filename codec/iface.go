package codec

// Record 字段顺序固定的记录，Decode 与 Encode 必须以完全相同的顺序读写字段
// 直接调用 Decode 不是原子的：失败时记录中可能残留部分解出的字段，
// 需要原子语义时使用 Unmarshal 或 dis7.Registry.Decode
type Record interface {
	Decode(c *Cursor)
	Encode(s *Sink)
}

// Sizer 记录编码后的字节数
type Sizer interface {
	Size() int
}

// Sequence16 16位序号生成器
type Sequence16 interface {
	NextVal() uint16
}

// Sequence32 32位序号生成器
type Sequence32 interface {
	NextVal() uint32
}
