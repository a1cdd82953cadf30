// Yannick Kuete 2026

package interceptor

import (
	"context"

	"github.com/ymkuete/streamsock/pkg/protocol"
)

type Invoker func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error)

type Interceptor func(ctx context.Context, msg *protocol.Message, invoker Invoker) (*protocol.Message, error)

type Chain struct {
	interceptors []Interceptor
}

func NewChain(interceptor ...Interceptor) *Chain {
	return &Chain{interceptors: interceptor}
}

func (ic *Chain) Intercept(ctx context.Context, msg *protocol.Message, invoker Invoker) (*protocol.Message, error) {
	if len(ic.interceptors) == 0 {
		return invoker(ctx, msg)
	}

	return ic.buildChain(invoker)(ctx, msg)
}

// Wrap returns the invoker with every interceptor applied, first
// interceptor outermost.
func (ic *Chain) Wrap(invoker Invoker) Invoker {
	return ic.buildChain(invoker)
}

func (ic *Chain) buildChain(invoker Invoker) Invoker {
	for i := len(ic.interceptors) - 1; i >= 0; i-- {
		next := invoker
		interceptor := ic.interceptors[i]

		invoker = func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
			return interceptor(ctx, msg, next)
		}
	}

	return invoker
}
