// Register a method on a router and dispatch a raw payload to it.
package main

import (
	"encoding/json"
	"log"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

func add(ctx *rpc.Context) (value.Value, error) {
	params, ok := ctx.Params().AsObject()
	if !ok {
		return value.Null(), rpc.NewInvalidParamsError("params must be an object")
	}
	a, _ := params.Get("a")
	b, _ := params.Get("b")
	return value.NewObject().Set("sum", value.Int(a.IntOr(0)+b.IntOr(0))).Value(), nil
}

func main() {
	router := rpc.NewRouter()
	router.Add("math.add", add)

	var payload value.Value
	if err := json.Unmarshal([]byte(`{"id":7,"method":"math.add","params":{"a":7,"b":5}}`), &payload); err != nil {
		log.Fatalf("decode payload: %v", err)
	}

	result, err := router.DispatchValue(payload, "cli", nil)
	if err != nil {
		log.Fatalf("dispatch: %v", err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	log.Printf("result: %s", out)
}
