package shell

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"

	"github.com/grpc-boot/carcare/atomic"
	"github.com/grpc-boot/carcare/monitor"
	"github.com/grpc-boot/carcare/orderid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	MetricCommands = "commands"
	MetricFailures = "failures"
)

// Demo is one data structure behind the console. Handle takes the commands
// the demo understands and reports the rest as not handled.
type Demo interface {
	Name() string
	Title() string
	Metrics() []string
	Usage() []Usage
	Handle(s *Session, cmd Command) (handled bool, err error)
}

type Usage struct {
	Command     string `yaml:"command" json:"command"`
	Description string `yaml:"description" json:"description"`
}

type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
	Config *Config
	Ids    *orderid.Generator
}

// Session runs one demo: it reads commands line by line and renders results.
type Session struct {
	demo     Demo
	in       io.Reader
	config   *Config
	renderer *Renderer
	logger   *zap.Logger
	monitor  *monitor.Monitor
	chain    *Chain
	ids      *orderid.Generator
	closed   atomic.Bool
	summary  atomic.Acquire
}

var builtinUsage = []Usage{
	{Command: "help", Description: "list commands"},
	{Command: "stats", Description: "show operation counters"},
	{Command: "quit", Description: "leave the demo"},
}

func NewSession(demo Demo, opts Options) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Config == nil {
		opts.Config = DefaultConfig()
	}

	metrics := append([]string{MetricCommands, MetricFailures}, demo.Metrics()...)

	s := &Session{
		demo:     demo,
		in:       opts.In,
		config:   opts.Config,
		renderer: NewRenderer(opts.Out, opts.Config.Output, opts.Config.NoColor),
		logger:   opts.Logger.With(zap.String("demo", demo.Name())),
		monitor:  monitor.NewMonitor(demo.Name(), metrics...),
		ids:      opts.Ids,
	}

	s.chain = NewChain(builtins, demo.Handle)
	return s
}

func (s *Session) Renderer() *Renderer {
	return s.renderer
}

func (s *Session) Logger() *zap.Logger {
	return s.logger
}

func (s *Session) Monitor() *monitor.Monitor {
	return s.monitor
}

func (s *Session) Closed() bool {
	return s.closed.Get()
}

// Run serves commands until quit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) (err error) {
	defer s.Close()

	s.renderer.Title(s.demo.Title())
	s.logger.Info("session started")

	scanner := bufio.NewScanner(s.in)
	for !s.closed.Get() {
		if err = ctx.Err(); err != nil {
			return err
		}

		if s.config.Prompt != "" {
			s.renderer.output.Write([]byte(s.config.Prompt)) // nolint: errcheck
		}

		if !scanner.Scan() {
			break
		}

		_ = s.Execute(scanner.Text())
	}

	if err = scanner.Err(); err != nil {
		return errors.Wrap(err, "read command")
	}
	return nil
}

// Execute runs one console line. Failures are rendered and counted; the
// returned error is for callers that drive the session directly.
func (s *Session) Execute(line string) (err error) {
	cmd, err := ParseLine(line)
	if err == nil && cmd.Empty() {
		return nil
	}

	s.monitor.Incr(MetricCommands)

	if err == nil {
		s.logger.Debug("dispatch", zap.String("command", cmd.Name), zap.Int("args", len(cmd.Args)))

		var handled bool
		if handled, err = s.chain.Next(s, cmd); !handled && err == nil {
			err = errors.Wrap(ErrUnknownCommand, cmd.Name)
		}
	}

	if err != nil {
		s.monitor.Incr(MetricFailures)
		s.logger.Info("command failed", zap.String("line", line), zap.Error(err))
		s.renderer.Failure("%s", err.Error())
	}

	return err
}

// Close logs the counters once, whichever of quit, end of input or a signal comes first.
func (s *Session) Close() {
	s.closed.Set(true)
	if !s.summary.Acquire() {
		return
	}

	fields := lo.Map(s.monitor.Snapshot(), func(sample monitor.Sample, _ int) zap.Field {
		return zap.Uint64(sample.Name, sample.Value)
	})
	s.logger.Info("session closed", fields...)
}

// OrderId resolves the "auto" placeholder to a generated id.
func (s *Session) OrderId(value string) (orderId string, err error) {
	if value != "auto" {
		return value, nil
	}

	if s.ids == nil {
		return "", ErrAutoIdDisabled
	}
	return s.ids.Next(), nil
}

func builtins(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "help", "?":
		usage := append(s.demo.Usage(), builtinUsage...)
		return true, s.renderer.RenderListing(Listing{
			Lines: lo.Map(usage, func(u Usage, _ int) string {
				return u.Command + "  " + u.Description
			}),
			Header: table.Row{"Command", "Description"},
			Rows: lo.Map(usage, func(u Usage, _ int) table.Row {
				return table.Row{u.Command, u.Description}
			}),
			Items: usage,
		})
	case "stats":
		samples := s.monitor.Snapshot()
		return true, s.renderer.RenderListing(Listing{
			Lines: lo.Map(samples, func(sample monitor.Sample, _ int) string {
				return sample.Name + ": " + strconv.FormatUint(sample.Value, 10)
			}),
			Header: table.Row{"Metric", "Value"},
			Rows: lo.Map(samples, func(sample monitor.Sample, _ int) table.Row {
				return table.Row{sample.Name, sample.Value}
			}),
			Items: samples,
		})
	case "quit", "exit":
		if s.closed.CompareAndSwap(false, true) {
			s.logger.Debug("quit requested")
		}
		return true, nil
	}

	return false, nil
}
