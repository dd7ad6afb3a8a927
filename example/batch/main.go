// Process a batch payload through a dispatcher with logging, recovery, and
// rate limiting installed on the handler.
//
// The transport label can be set with WEBRPC_TRANSPORT, optionally from a
// .env file.
package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mnehpets/webrpc/middleware"
	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

func echo(ctx *rpc.Context) (value.Value, error) {
	return ctx.Params(), nil
}

func main() {
	_ = godotenv.Load()
	transport := os.Getenv("WEBRPC_TRANSPORT")
	if transport == "" {
		transport = "cli"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	wrap := middleware.Chain(
		middleware.Logging(logger),
		middleware.Recover(logger),
		middleware.RateLimit(100, 10),
	)

	router := rpc.NewRouter()
	router.Add("echo", wrap(echo))

	d := rpc.NewDispatcher(router)

	raw := []byte(`[
		{"id":1,"method":"echo","params":{"x":10}},
		{"method":"echo","params":{"y":20}},
		{"id":2,"method":"echo","params":{"z":30}}
	]`)
	var payload value.Value
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Fatalf("decode payload: %v", err)
	}

	out, ok := d.Handle(payload, transport, map[string]string{"peer": "local"})
	if !ok {
		log.Print("batch was all notifications; nothing to send")
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		log.Fatalf("encode responses: %v", err)
	}
	log.Printf("responses: %s", data)
}
