package naming

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHook struct {
	resp Response
	err  error
	pan  bool
	done chan struct{}
}

func (f fakeHook) Name(ctx context.Context, req Request) (Response, error) {
	if f.done != nil {
		defer close(f.done)
	}
	if f.pan {
		panic("boom")
	}
	return f.resp, f.err
}

func TestInvokeCallsOnNamedOnSuccess(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	var got Response
	Invoke(context.Background(), fakeHook{resp: Response{Name: "Centrists"}}, zap.NewNop(), Request{ClusterLocalID: 1}, func(req Request, resp Response) {
		got = resp
		wg.Done()
	})
	wg.Wait()
	require.Equal(t, "Centrists", got.Name)
}

func TestInvokeSwallowsHookError(t *testing.T) {
	done := make(chan struct{})
	called := false
	hook := fakeHook{err: errors.New("unavailable"), done: done}
	Invoke(context.Background(), hook, zap.NewNop(), Request{}, func(req Request, resp Response) {
		called = true
	})
	<-done
	require.False(t, called)
}

func TestInvokeRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	Invoke(context.Background(), fakeHook{pan: true, done: done}, zap.NewNop(), Request{}, func(req Request, resp Response) {})
	<-done
}
