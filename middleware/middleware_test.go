package middleware

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

func dispatch(t *testing.T, h rpc.Handler, method string) (value.Value, error) {
	t.Helper()
	r := rpc.NewRouter()
	r.Add(method, h)
	return r.Dispatch(&rpc.Request{ID: value.Int(1), Method: method}, "test", nil)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next rpc.Handler) rpc.Handler {
			return func(ctx *rpc.Context) (value.Value, error) {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := Chain(tag("outer"), tag("inner"))(func(ctx *rpc.Context) (value.Value, error) {
		order = append(order, "handler")
		return value.Null(), nil
	})

	if _, err := dispatch(t, h, "m"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestChainEmpty(t *testing.T) {
	h := Chain()(func(ctx *rpc.Context) (value.Value, error) {
		return value.String("ok"), nil
	})

	result, err := dispatch(t, h, "m")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if result.StringOr("") != "ok" {
		t.Errorf("got %q, want \"ok\"", result.StringOr(""))
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Logging(logger)(func(ctx *rpc.Context) (value.Value, error) {
		return value.String("ok"), nil
	})
	if _, err := dispatch(t, h, "user.get"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "method=user.get") {
		t.Errorf("log output missing method: %q", out)
	}
	if !strings.Contains(out, "transport=test") {
		t.Errorf("log output missing transport: %q", out)
	}
}

func TestLoggingError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wantErr := rpc.NewInvalidParamsError("bad shape")
	h := Logging(logger)(func(ctx *rpc.Context) (value.Value, error) {
		return value.Null(), wantErr
	})

	_, err := dispatch(t, h, "m")
	if err != wantErr {
		t.Errorf("got %v, want the handler error unchanged", err)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("expected error-level log, got %q", buf.String())
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Recover(logger)(func(ctx *rpc.Context) (value.Value, error) {
		panic("something went wrong")
	})

	_, err := dispatch(t, h, "m")
	if err == nil {
		t.Fatal("expected error")
	}
	rpcErr, ok := err.(*rpc.Error)
	if !ok {
		t.Fatalf("error is %T, want *rpc.Error", err)
	}
	if rpcErr.Code != rpc.CodeInternalError {
		t.Errorf("got code %q, want %q", rpcErr.Code, rpc.CodeInternalError)
	}
	if rpcErr.Message != "internal error" {
		t.Errorf("got message %q, want %q", rpcErr.Message, "internal error")
	}
	if !strings.Contains(buf.String(), "something went wrong") {
		t.Errorf("panic value missing from log: %q", buf.String())
	}
}

func TestRecoverPassthrough(t *testing.T) {
	h := Recover(nil)(func(ctx *rpc.Context) (value.Value, error) {
		return value.String("fine"), nil
	})

	result, err := dispatch(t, h, "m")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if result.StringOr("") != "fine" {
		t.Errorf("got %q, want \"fine\"", result.StringOr(""))
	}
}

func TestRateLimit(t *testing.T) {
	// One token, no refill within the test window.
	h := RateLimit(0, 1)(func(ctx *rpc.Context) (value.Value, error) {
		return value.String("ok"), nil
	})

	if _, err := dispatch(t, h, "m"); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}

	_, err := dispatch(t, h, "m")
	if err == nil {
		t.Fatal("second call should be limited")
	}
	rpcErr, ok := err.(*rpc.Error)
	if !ok {
		t.Fatalf("error is %T, want *rpc.Error", err)
	}
	if rpcErr.Code != CodeRateLimited {
		t.Errorf("got code %q, want %q", rpcErr.Code, CodeRateLimited)
	}
}
