// Dispatch a notification: the handler runs, but no response is produced.
package main

import (
	"encoding/json"
	"log"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

func main() {
	router := rpc.NewRouter()
	router.Add("log.write", func(ctx *rpc.Context) (value.Value, error) {
		msg, _ := ctx.Params().Get("msg")
		log.Printf("handler saw: %s", msg.StringOr(""))
		return value.Null(), nil
	})

	d := rpc.NewDispatcher(router)

	// No id -> notification.
	var payload value.Value
	if err := json.Unmarshal([]byte(`{"method":"log.write","params":{"msg":"fire and forget"}}`), &payload); err != nil {
		log.Fatalf("decode payload: %v", err)
	}

	if out, ok := d.Handle(payload, "cli", nil); ok {
		log.Fatalf("unexpected response: %v", out)
	}
	log.Print("no response produced, as expected")
}
