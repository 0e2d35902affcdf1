package orderid

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	Prefix = "ORD-"

	machineShift = 12
	timeShift    = 20
	indexMask    = 0xfff
)

var (
	ErrBeginInFuture = errors.New("begin time is in the future")
	ErrIllegalId     = errors.New("illegal order id")
)

// Generator issues time-ordered order ids.
//1位0，43位毫秒时间戳，8位机器码，12位递增值
type Generator struct {
	clock          func() time.Time
	timeStampBegin int64
	lastTimeStamp  int64
	index          int64
	machId         int64
	mutex          sync.Mutex
}

type Option func(g *Generator)

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

func New(id uint8, begin time.Time, opts ...Option) (g *Generator, err error) {
	g = &Generator{
		clock:          time.Now,
		timeStampBegin: begin.UnixNano() / 1e6,
		machId:         int64(id) << machineShift,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.millis() < g.timeStampBegin {
		return nil, ErrBeginInFuture
	}

	return g, nil
}

func (g *Generator) Next() string {
	return Prefix + strings.ToUpper(strconv.FormatInt(g.Id(), 36))
}

func (g *Generator) Id() int64 {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.step()
	return ((g.lastTimeStamp - g.timeStampBegin) << timeShift) + g.machId + g.index
}

// Info splits an id produced by Next.
func (g *Generator) Info(orderId string) (createdAt time.Time, machineId uint8, index int64, err error) {
	if !strings.HasPrefix(orderId, Prefix) {
		return createdAt, 0, 0, ErrIllegalId
	}

	id, err := strconv.ParseInt(strings.ToLower(strings.TrimPrefix(orderId, Prefix)), 36, 64)
	if err != nil || id < 0 {
		return createdAt, 0, 0, ErrIllegalId
	}

	millis := (id >> timeShift) + g.timeStampBegin
	createdAt = time.Unix(0, millis*1e6)
	machineId = uint8((id >> machineShift) & 0xff)
	index = id & indexMask
	return createdAt, machineId, index, nil
}

func (g *Generator) millis() int64 {
	return g.clock().UnixNano() / 1e6
}

func (g *Generator) step() {
	curTimeStamp := g.millis()

	//时钟回拨等待处理
	for curTimeStamp < g.lastTimeStamp {
		time.Sleep(time.Millisecond)
		curTimeStamp = g.millis()
	}

	if curTimeStamp == g.lastTimeStamp {
		g.index++
		if g.index <= indexMask {
			return
		}

		//同一毫秒内序号用尽，等待下一毫秒
		for curTimeStamp <= g.lastTimeStamp {
			time.Sleep(time.Millisecond)
			curTimeStamp = g.millis()
		}
	}

	g.index = 0
	g.lastTimeStamp = curTimeStamp
}
