package server

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/panjf2000/gnet/v2"

	"github.com/aaronwong1989/godis/codec/dis7"
	"github.com/aaronwong1989/godis/comm"
	"github.com/aaronwong1989/godis/comm/config"
	"github.com/aaronwong1989/godis/comm/logging"
)

var log = logging.GetDefaultLogger()

// Handler 处理从报文中解出的每个PDU，在协程池中执行
type Handler func(from net.Addr, pdu dis7.Pdu)

// Server 在UDP上监听DIS报文，并通过 Registry 解码
// 一个报文中可以首尾相接地携带多个PDU
type Server struct {
	gnet.BuiltinEventEngine
	engine    gnet.Engine
	booted    atomic.Bool
	protocol  string
	address   string
	multicore bool
	interval  time.Duration
	maxPdu    int
	registry  *dis7.Registry
	pool      *ants.Pool
	handler   Handler
	stats     stats
}

type stats struct {
	datagrams atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
	kinds     [256]atomic.Uint64
}

// Stats 服务计数器的快照
type Stats struct {
	Datagrams uint64
	Dropped   uint64 // 超长或提交失败被丢弃的报文
	Failed    uint64 // 解码失败的报文
	Pdus      map[dis7.PduType]uint64
}

func New(conf config.Config, handler Handler) (*Server, error) {
	// 定义异步工作Go程池
	options := ants.Options{
		ExpiryDuration:   time.Minute,             // 1 分钟内不被使用的worker会被清除
		Nonblocking:      false,                   // 如果为true,worker池满了后提交任务会直接返回nil
		MaxBlockingTasks: conf.Listen.MaxPoolSize, // blocking模式有效，否则worker池满了后提交任务会直接返回nil
		PreAlloc:         false,
		PanicHandler: func(e interface{}) {
			log.Errorf("[%-9s] handler panic: %v", "Pool", e)
		},
	}
	pool, err := ants.NewPool(conf.Listen.MaxPoolSize, ants.WithOptions(options))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}

	registry := dis7.DefaultRegistry()
	registry.StrictLength = conf.Codec.StrictLength
	registry.SkipUnknown = conf.Codec.SkipUnknown

	return &Server{
		protocol:  "udp",
		address:   conf.Listen.Address,
		multicore: conf.Listen.Multicore,
		interval:  conf.Listen.StatsInterval,
		maxPdu:    conf.Codec.MaxPduSize,
		registry:  registry,
		pool:      pool,
		handler:   handler,
	}, nil
}

func (s *Server) Registry() *dis7.Registry {
	return s.registry
}

// Run 阻塞运行，直到服务停止或启动失败
func (s *Server) Run() error {
	defer s.pool.Release()
	err := gnet.Run(s, s.protocol+"://"+s.address, gnet.WithMulticore(s.multicore), gnet.WithTicker(s.interval > 0))
	if err != nil {
		log.Errorf("server(%s://%s) exits with error: %v", s.protocol, s.address, err)
		return errors.Wrap(err, "run server")
	}
	return nil
}

// Stop 优雅停止服务
func (s *Server) Stop(ctx context.Context) error {
	if !s.booted.Load() {
		return errors.New("server not running")
	}
	return gnet.Stop(ctx, s.protocol+"://"+s.address)
}

func (s *Server) OnBoot(eng gnet.Engine) (action gnet.Action) {
	log.Infof("[%-9s] running server on %s with multi-core=%t", "OnBoot", fmt.Sprintf("%s://%s", s.protocol, s.address), s.multicore)
	s.engine = eng
	s.booted.Store(true)
	return
}

func (s *Server) OnShutdown(eng gnet.Engine) {
	s.booted.Store(false)
	log.Warnf("[%-9s] shutdown server %s, %s", "OnShutdown", fmt.Sprintf("%s://%s", s.protocol, s.address), s.Stats())
}

func (s *Server) OnTraffic(c gnet.Conn) (action gnet.Action) {
	buf, err := c.Next(-1)
	if err != nil {
		log.Warnf("[%-9s] [%v] read error: %v", "OnTraffic", c.RemoteAddr(), err)
		return gnet.None
	}
	s.stats.datagrams.Add(1)
	if len(buf) > s.maxPdu {
		s.stats.dropped.Add(1)
		log.Warnf("[%-9s] [%v] datagram of %d bytes exceeds %d, dropped", "OnTraffic", c.RemoteAddr(), len(buf), s.maxPdu)
		return gnet.None
	}
	// gnet 复用读缓冲区，交给协程池之前先拷贝
	frame := make([]byte, len(buf))
	copy(frame, buf)
	from := c.RemoteAddr()
	if err = s.pool.Submit(func() { s.handle(from, frame) }); err != nil {
		s.stats.dropped.Add(1)
		log.Errorf("[%-9s] [%v] submit error: %v", "OnTraffic", from, err)
	}
	return gnet.None
}

func (s *Server) OnTick() (delay time.Duration, action gnet.Action) {
	log.Infof("[%-9s] %s", "OnTick", s.Stats())
	return s.interval, gnet.None
}

func (s *Server) handle(from net.Addr, frame []byte) {
	comm.LogHex(logging.DebugLevel, "Datagram", frame)
	pdus, err := s.registry.DecodeStream(frame)
	for _, pdu := range pdus {
		s.stats.kinds[pdu.PduHeader().PduType].Add(1)
		log.Debugf("[%-9s] <<< %v %s", "OnTraffic", from, pdu)
		if s.handler != nil {
			s.handler(from, pdu)
		}
	}
	if err != nil {
		s.stats.failed.Add(1)
		log.Warnf("[%-9s] [%v] decode error after %d pdus: %v", "OnTraffic", from, len(pdus), err)
		comm.LogHex(logging.WarnLevel, "Malformed", frame)
	}
}

func (s *Server) Stats() Stats {
	st := Stats{
		Datagrams: s.stats.datagrams.Load(),
		Dropped:   s.stats.dropped.Load(),
		Failed:    s.stats.failed.Load(),
		Pdus:      make(map[dis7.PduType]uint64),
	}
	for i := range s.stats.kinds {
		if n := s.stats.kinds[i].Load(); n > 0 {
			st.Pdus[dis7.PduType(i)] = n
		}
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("datagrams=%d, dropped=%d, failed=%d, pdus=%v", st.Datagrams, st.Dropped, st.Failed, st.Pdus)
}
