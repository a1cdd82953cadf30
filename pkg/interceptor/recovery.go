// Yannick Kuete 2026

package interceptor

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/ymkuete/streamsock/pkg/protocol"
)

func Recovery() Interceptor {
	return func(ctx context.Context, msg *protocol.Message, invoker Invoker) (reply *protocol.Message, err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				err = fmt.Errorf("panic recovered: %v\nstack:\n%s", r, stack)
				reply = nil
			}
		}()

		return invoker(ctx, msg)
	}
}
