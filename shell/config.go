package shell

import (
	"path/filepath"
	"strings"

	"github.com/grpc-boot/carcare"
	"github.com/pkg/errors"
)

const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

const DefaultPrompt = "> "

type Config struct {
	Capacity int    `yaml:"capacity" json:"capacity"`
	Output   string `yaml:"output" json:"output"`
	NoColor  bool   `yaml:"no_color" json:"no_color"`
	Debug    bool   `yaml:"debug" json:"debug"`
	LogDir   string `yaml:"log_dir" json:"log_dir"`
	Prompt   string `yaml:"prompt" json:"prompt"`
	Seed     Seed   `yaml:"seed" json:"seed"`
}

// Seed holds records loaded into a demo's structure before the first command.
type Seed struct {
	Tasks          []carcare.Task          `yaml:"tasks" json:"tasks"`
	Orders         []carcare.Order         `yaml:"orders" json:"orders"`
	PriorityOrders []carcare.PriorityOrder `yaml:"priority_orders" json:"priority_orders"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: carcare.DefaultDequeCapacity,
		Output:   OutputText,
		Prompt:   DefaultPrompt,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (conf *Config, err error) {
	conf = DefaultConfig()
	if path == "" {
		return conf, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = carcare.Yaml(path, conf)
	case ".json":
		err = carcare.Json(path, conf)
	default:
		return nil, errors.Wrap(ErrConfigFormat, path)
	}

	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return ErrNegativeCapacity
	}

	switch c.Output {
	case OutputText, OutputTable, OutputJSON, OutputYAML:
	default:
		return errors.Wrap(ErrOutputMode, c.Output)
	}

	for index, task := range c.Seed.Tasks {
		if task.Type == "" || task.Customer == "" || task.Priority < 0 {
			return errors.Wrapf(ErrInvalidTask, "seed task %d", index)
		}
	}

	for index, order := range c.Seed.Orders {
		if err := requireFields(order.OrderId, order.Customer, order.Service); err != nil {
			return errors.Wrapf(err, "seed order %d", index)
		}
	}

	for index, order := range c.Seed.PriorityOrders {
		if err := requireFields(order.OrderId, order.Customer, order.Service); err != nil {
			return errors.Wrapf(err, "seed priority order %d", index)
		}

		if !order.Priority.Valid() {
			return errors.Wrapf(ErrPriorityRange, "seed priority order %d", index)
		}
	}

	return nil
}
