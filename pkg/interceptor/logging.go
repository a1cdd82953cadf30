// Yannick Kuete 2026

package interceptor

import (
	"context"
	"fmt"
	"time"

	"github.com/ymkuete/streamsock/pkg/protocol"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type defaultLogger struct{}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO] "+format+"\n", args...)
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
}

func Logging(logger Logger) Interceptor {
	if logger == nil {
		logger = &defaultLogger{}
	}

	return func(ctx context.Context, msg *protocol.Message, invoker Invoker) (*protocol.Message, error) {
		start := time.Now()

		reply, err := invoker(ctx, msg)

		duration := time.Since(start)

		if err != nil {
			logger.Errorf("exchange of %d bytes failed in %v: %v", msg.Wire, duration, err)
		} else {
			logger.Infof("exchange of %d bytes handled in %v", msg.Wire, duration)
		}

		return reply, err
	}
}
