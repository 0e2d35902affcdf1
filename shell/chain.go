package shell

// Handler serves a command; handled is false when the command is not its own.
type Handler func(s *Session, cmd Command) (handled bool, err error)

type Chain struct {
	items []Handler
}

func NewChain(handlers ...Handler) *Chain {
	chain := &Chain{
		items: make([]Handler, len(handlers)),
	}

	copy(chain.items, handlers)
	return chain
}

func (c *Chain) Use(handler Handler) {
	c.items = append(c.items, handler)
}

// Next offers cmd to each handler in order and stops at the first that takes it.
func (c *Chain) Next(s *Session, cmd Command) (handled bool, err error) {
	for index := 0; index < len(c.items); index++ {
		if handled, err = c.items[index](s, cmd); handled {
			return handled, err
		}
	}

	return false, nil
}
