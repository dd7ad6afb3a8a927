package rpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mnehpets/webrpc/value"
)

var _ error = (*Error)(nil)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         *Error
		wantCode    string
		wantMessage string
		wantDetail  string // key expected inside details, "" for no details
	}{
		{"MethodNotFound", NewMethodNotFoundError("user.get"), CodeMethodNotFound, "RPC method not found", "method"},
		{"InvalidParams", NewInvalidParamsError("bad shape"), CodeInvalidParams, "Invalid RPC parameters", "reason"},
		{"ParseError", NewParseError("invalid json"), CodeParseError, "Failed to parse RPC payload", "reason"},
		{"InternalError", NewInternalError("disk on fire"), CodeInternalError, "disk on fire", ""},
		{"NewError", NewError("APP_FAILURE", "nope"), "APP_FAILURE", "nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("got code %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("got message %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error(): got %q, want %q", tt.err.Error(), tt.wantMessage)
			}
			if !tt.err.Valid() {
				t.Error("constructed error should be valid")
			}

			if tt.wantDetail == "" {
				if tt.err.HasDetails() {
					t.Errorf("unexpected details: %v", tt.err.Details)
				}
				return
			}
			if !tt.err.HasDetails() {
				t.Fatal("expected details")
			}
			if _, ok := tt.err.Details.Get(tt.wantDetail); !ok {
				t.Errorf("details missing key %q", tt.wantDetail)
			}
		})
	}
}

func TestErrorValid(t *testing.T) {
	if (&Error{}).Valid() {
		t.Error("empty code should not be valid")
	}
	var nilErr *Error
	if nilErr.Valid() {
		t.Error("nil error should not be valid")
	}
}

func TestErrorToValue(t *testing.T) {
	withDetails := NewMethodNotFoundError("user.get")
	got, err := json.Marshal(withDetails.ToValue())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"code":"METHOD_NOT_FOUND","message":"RPC method not found","details":{"method":"user.get"}}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// Absent details means an omitted field, not a null field.
	withoutDetails := NewInternalError("boom")
	got, err = json.Marshal(withoutDetails.ToValue())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want = `{"code":"INTERNAL_ERROR","message":"boom"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		src        value.Value
		wantReason string // expected reason in the parse failure, "" for success
	}{
		{
			"Valid",
			value.NewObject().Set("code", value.String("X")).Set("message", value.String("m")).Value(),
			"",
		},
		{
			"ValidWithDetails",
			value.NewObject().
				Set("code", value.String("X")).
				Set("message", value.String("m")).
				Set("details", value.ArrayOf(value.Int(1))).
				Value(),
			"",
		},
		{"NotAnObject", value.String("oops"), "error must be an object"},
		{
			"MissingCode",
			value.NewObject().Set("message", value.String("m")).Value(),
			"error object must contain code and message",
		},
		{
			"MissingMessage",
			value.NewObject().Set("code", value.String("X")).Value(),
			"error object must contain code and message",
		},
		{
			"NonStringCode",
			value.NewObject().Set("code", value.Int(1)).Set("message", value.String("m")).Value(),
			"code and message must be strings",
		},
		{
			"EmptyCode",
			value.NewObject().Set("code", value.String("")).Set("message", value.String("m")).Value(),
			"code must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseError(tt.src)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if parsed.Code != "X" || parsed.Message != "m" {
					t.Errorf("got (%q, %q), want (\"X\", \"m\")", parsed.Code, parsed.Message)
				}
				return
			}

			if err == nil {
				t.Fatal("expected parse failure")
			}
			var rpcErr *Error
			if !errors.As(err, &rpcErr) {
				t.Fatalf("failure is %T, want *Error", err)
			}
			if rpcErr.Code != CodeParseError {
				t.Errorf("got code %q, want %q", rpcErr.Code, CodeParseError)
			}
			reason, _ := rpcErr.Details.Get("reason")
			if reason.StringOr("") != tt.wantReason {
				t.Errorf("got reason %q, want %q", reason.StringOr(""), tt.wantReason)
			}
		})
	}
}

func TestParseErrorKeepsDetails(t *testing.T) {
	details := value.NewObject().Set("reason", value.String("invalid json")).Value()
	src := NewParseError("invalid json").ToValue()

	parsed, err := ParseError(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Details.Equal(details) {
		t.Errorf("got details %v, want %v", parsed.Details, details)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	for _, src := range []*Error{
		NewMethodNotFoundError("a.b"),
		NewInvalidParamsError("why"),
		NewParseError("why"),
		NewInternalError("msg"),
	} {
		t.Run(src.Code, func(t *testing.T) {
			parsed, err := ParseError(src.ToValue())
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if parsed.Code != src.Code || parsed.Message != src.Message {
				t.Errorf("got (%q, %q), want (%q, %q)", parsed.Code, parsed.Message, src.Code, src.Message)
			}
			if !parsed.Details.Equal(src.Details) {
				t.Errorf("got details %v, want %v", parsed.Details, src.Details)
			}
		})
	}
}

func TestToErrorPreservesCode(t *testing.T) {
	appErr := NewError("APP_FAILURE", "custom")
	if got := toError(appErr); got != appErr {
		t.Errorf("got %v, want the original *Error", got)
	}

	plain := errors.New("plain failure")
	got := toError(plain)
	if got.Code != CodeInternalError {
		t.Errorf("got code %q, want %q", got.Code, CodeInternalError)
	}
	if got.Message != "plain failure" {
		t.Errorf("got message %q, want %q", got.Message, "plain failure")
	}
}

func TestToErrorTypedNil(t *testing.T) {
	// A handler may return a typed-nil *Error through the error interface;
	// normalization must not treat it as a usable error value.
	got := toError((*Error)(nil))
	if got == nil {
		t.Fatal("got nil, want a non-nil *Error")
	}
	if got.Code != CodeInternalError {
		t.Errorf("got code %q, want %q", got.Code, CodeInternalError)
	}
	if got.Message != "internal error" {
		t.Errorf("got message %q, want %q", got.Message, "internal error")
	}
}
