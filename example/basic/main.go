// Parse a request envelope from JSON, inspect it, and round-trip it back.
package main

import (
	"encoding/json"
	"log"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

func main() {
	raw := []byte(`{"id":1,"method":"user.get","params":{"name":"alice"}}`)

	var payload value.Value
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Fatalf("decode payload: %v", err)
	}

	req, err := rpc.ParseRequest(payload)
	if err != nil {
		log.Fatalf("parse request: %v", err)
	}

	log.Printf("method=%s has_id=%v", req.Method, req.HasID())
	if name, ok := req.Param("name"); ok {
		log.Printf("params.name=%s", name.StringOr(""))
	}

	out, err := json.Marshal(req.ToValue())
	if err != nil {
		log.Fatalf("encode request: %v", err)
	}
	log.Printf("round-trip: %s", out)
}
