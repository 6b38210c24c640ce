package dto

import (
	"errors"
	"strings"
	"testing"

	"focuspad/internal/domain"
)

func TestDecode_EmptyBodyRequired(t *testing.T) {
	for _, raw := range []string{"", "   \n"} {
		var req UpdateTaskRequest
		err := Decode(strings.NewReader(raw), &req)

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Decode(%q) err=%v, want *domain.ValidationError", raw, err)
		}
		if verr.Errors[0].Type != "missing" {
			t.Fatalf("type=%q, want %q", verr.Errors[0].Type, "missing")
		}
	}
}

func TestDecode_TrailingData(t *testing.T) {
	bodies := []string{
		`{"title": "a"} {"title": "b"}`,
		`{"title": "a"}}`,
		`{"title": "a"} x`,
	}

	for _, raw := range bodies {
		var req CreateTaskRequest
		if err := Decode(strings.NewReader(raw), &req); !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("Decode(%q) err=%v, want %v", raw, err, ErrMalformedBody)
		}
	}

	var req CreateTaskRequest
	if err := Decode(strings.NewReader("{\"title\": \"a\"}\n"), &req); err != nil {
		t.Fatalf("Decode() with trailing newline err=%v, want nil", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	var req CreateTaskRequest
	err := Decode(strings.NewReader("{bad json}"), &req)
	if !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("Decode() err=%v, want %v", err, ErrMalformedBody)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	var req CreateSessionRequest
	err := Decode(strings.NewReader(`{"seconds": "long"}`), &req)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Decode() err=%v, want *domain.ValidationError", err)
	}
}

func TestUpdateTaskRequest_ToPatch(t *testing.T) {
	var req UpdateTaskRequest
	raw := `{"completed": true, "priority": "low", "estimated_minutes": null}`
	if err := Decode(strings.NewReader(raw), &req); err != nil {
		t.Fatalf("Decode() err=%v", err)
	}

	patch := req.ToPatch()
	if v, ok := patch.Completed.Get(); !ok || !v {
		t.Fatalf("completed=(%v, %v), want (true, true)", v, ok)
	}
	if v, ok := patch.Priority.Get(); !ok || v != domain.PriorityLow {
		t.Fatalf("priority=(%v, %v), want (low, true)", v, ok)
	}
	if !patch.EstimatedMinutes.IsNull() {
		t.Fatal("estimated_minutes not null, want explicit null")
	}
	if patch.Title.IsSet() || patch.Description.IsSet() {
		t.Fatal("absent fields reported as set")
	}
}

func TestCreateTaskRequest_DefaultPriority(t *testing.T) {
	var req CreateTaskRequest
	if err := Decode(strings.NewReader(`{"title": "Read"}`), &req); err != nil {
		t.Fatalf("Decode() err=%v", err)
	}

	in, err := req.ToDomain()
	if err != nil {
		t.Fatalf("ToDomain() err=%v", err)
	}
	if in.Priority != domain.PriorityMedium {
		t.Fatalf("priority=%q, want %q", in.Priority, domain.PriorityMedium)
	}
	if in.Description != nil || in.EstimatedMinutes != nil {
		t.Fatalf("optional fields set: %+v", in)
	}
}

func TestCreateTaskRequest_EmptyPriorityKept(t *testing.T) {
	var req CreateTaskRequest
	if err := Decode(strings.NewReader(`{"title": "a", "priority": ""}`), &req); err != nil {
		t.Fatalf("Decode() err=%v", err)
	}

	in, err := req.ToDomain()
	if err != nil {
		t.Fatalf("ToDomain() err=%v", err)
	}
	if in.Priority != "" {
		t.Fatalf("priority=%q, want empty so validation rejects it", in.Priority)
	}
	if err := in.Validate(); err == nil {
		t.Fatal("Validate() err=nil, want priority error")
	}
}

func TestMinutes_MarshalJSON(t *testing.T) {
	tests := map[float64]string{0: "0.0", 25: "25.0", 14.2: "14.2", 720: "720.0"}

	for in, want := range tests {
		out, err := Minutes(in).MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v) err=%v", in, err)
		}
		if string(out) != want {
			t.Fatalf("MarshalJSON(%v)=%s, want %s", in, out, want)
		}
	}
}
