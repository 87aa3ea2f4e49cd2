package props

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/gamebind/errors"
)

func testSchema() *Schema {
	s := NewSchema()
	s.Declare(PropertyDesc{Name: "Weight", Type: Integer, Default: "5"})
	s.Declare(PropertyDesc{Name: "Description", Type: String, Default: "nothing special"})
	return s
}

func TestOverrideChain(t *testing.T) {
	s := testSchema()
	static := NewValueMap()
	runtime := NewValueMap()

	static.Set("Weight", "7")
	runtime.Set("Weight", "9")

	if v, err := s.GetInt(static, runtime, "Weight"); err != nil || v != 9 {
		t.Fatalf("runtime override: got %d, %v; want 9", v, err)
	}

	runtime.Delete("Weight")
	if v, err := s.GetInt(static, runtime, "Weight"); err != nil || v != 7 {
		t.Fatalf("static override: got %d, %v; want 7", v, err)
	}

	static.Delete("Weight")
	if v, err := s.GetInt(static, runtime, "Weight"); err != nil || v != 5 {
		t.Fatalf("schema default: got %d, %v; want 5", v, err)
	}
}

func TestCaseInsensitiveNames(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()
	runtime.Set("WEIGHT", "12")

	if v, err := s.GetInt(nil, runtime, "weight"); err != nil || v != 12 {
		t.Fatalf("got %d, %v; want 12 via case-insensitive lookup", v, err)
	}
}

func TestGetIntTypeMismatch(t *testing.T) {
	s := testSchema()
	static := NewValueMap()
	runtime := NewValueMap()

	_, err := s.GetInt(static, runtime, "Description")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProperty, Kind: errors.KindPropertyTypeMismatch}) {
		t.Fatalf("got %v, want property_type_mismatch", err)
	}
	if static.Len() != 0 || runtime.Len() != 0 {
		t.Fatal("failed get altered a value map")
	}
}

func TestGetIntUnparsableYieldsZero(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()
	runtime.Set("Weight", "heavy")

	v, err := s.GetInt(nil, runtime, "Weight")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("got %d, want 0 for unparsable text", v)
	}
}

func TestPropertyNotFound(t *testing.T) {
	s := testSchema()
	_, err := s.GetInt(nil, nil, "Colour")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProperty, Kind: errors.KindPropertyNotFound}) {
		t.Fatalf("got %v, want property_not_found", err)
	}
}

func TestGetTextTruncates(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()
	runtime.Set("Description", "an extremely long description")

	buf := make([]byte, 8)
	n, err := s.GetText(nil, runtime, "Description", buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("wrote %d bytes, want 7", n)
	}
	if string(buf[:n]) != "an extr" {
		t.Fatalf("buf = %q", buf[:n])
	}
	if buf[7] != 0 {
		t.Fatal("buffer not NUL-terminated")
	}
}

func TestGetTextDefault(t *testing.T) {
	s := testSchema()
	buf := make([]byte, MaxTextLength)
	n, err := s.GetText(NewValueMap(), NewValueMap(), "Description", buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "nothing special" {
		t.Fatalf("got %q, want schema default", buf[:n])
	}
}

func TestGetTextString(t *testing.T) {
	s := testSchema()
	static := NewValueMap()
	static.Set("Description", "a red key")

	v, err := s.GetTextString(static, NewValueMap(), "Description")
	if err != nil || v != "a red key" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestSetWritesRuntimeOnly(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()

	ok, err := s.SetInt(runtime, "Weight", 42)
	if !ok || err != nil {
		t.Fatalf("SetInt failed: %v", err)
	}
	if v, _ := runtime.Get("weight"); v != "42" {
		t.Fatalf("runtime map holds %q, want \"42\"", v)
	}
}

func TestSetRejectsWrongType(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()

	ok, err := s.SetInt(runtime, "Description", 1)
	if ok {
		t.Fatal("SetInt on a text property must fail")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProperty, Kind: errors.KindPropertyTypeMismatch}) {
		t.Fatalf("got %v, want property_type_mismatch", err)
	}
	if runtime.Len() != 0 {
		t.Fatal("failed set mutated the runtime map")
	}

	ok, err = s.SetText(runtime, "Missing", "x")
	if ok || err == nil {
		t.Fatal("SetText on undeclared property must fail")
	}
	if runtime.Len() != 0 {
		t.Fatal("failed set mutated the runtime map")
	}
}

func TestSetTextThenGet(t *testing.T) {
	s := testSchema()
	runtime := NewValueMap()

	if ok, err := s.SetText(runtime, "description", "a brass lamp"); !ok || err != nil {
		t.Fatal(err)
	}
	v, err := s.GetTextString(nil, runtime, "Description")
	if err != nil || v != "a brass lamp" {
		t.Fatalf("got %q, %v", v, err)
	}
}
