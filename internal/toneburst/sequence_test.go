package toneburst

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danmuck/replicantgen/internal/testutil/testlog"
)

func TestNewSequenceModelPreservesInput(t *testing.T) {
	testlog.Start(t)
	for _, count := range []int{1, 2, 3, 255, 256, 1024, 65533, 65534} {
		for _, text := range []string{"A", "AB", "\x00\xff", "whale🐋song"} {
			model, err := NewSequenceModel(text, count)
			if err != nil {
				t.Fatalf("NewSequenceModel(%q, %d): %v", text, count, err)
			}
			if int(model.Length) != count {
				t.Fatalf("length=%d want %d", model.Length, count)
			}
			if !bytes.Equal(model.Sequence, []byte(text)) {
				t.Fatalf("sequence=%v want %v", model.Sequence, []byte(text))
			}
		}
	}
}

func TestNewSequenceModelRejectsCountOutOfRange(t *testing.T) {
	testlog.Start(t)
	for _, count := range []int{-1, 0, 65535, 65536, 70000} {
		for _, text := range []string{"", "AB"} {
			_, err := NewSequenceModel(text, count)
			if !errors.Is(err, ErrInvalidSequence) {
				t.Fatalf("count=%d text=%q: expected ErrInvalidSequence, got %v", count, text, err)
			}
		}
		_, err := NewSequenceModel("AB", count)
		if !errors.Is(err, ErrCountOutOfRange) {
			t.Fatalf("count=%d: expected ErrCountOutOfRange, got %v", count, err)
		}
	}
}

func TestNewSequenceModelRejectsEmptySequence(t *testing.T) {
	testlog.Start(t)
	for _, count := range []int{0, 1, 3, 65534, 70000} {
		_, err := NewSequenceModel("", count)
		if !errors.Is(err, ErrInvalidSequence) {
			t.Fatalf("count=%d: expected ErrInvalidSequence, got %v", count, err)
		}
	}
	if _, err := NewSequenceModelBytes(nil, 3); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}

func TestNewSequenceModelBytesCopiesInput(t *testing.T) {
	testlog.Start(t)
	in := []byte("AB")
	model, err := NewSequenceModelBytes(in, 3)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	in[0] = 'Z'
	if string(model.Sequence) != "AB" {
		t.Fatalf("sequence aliased caller buffer: %q", model.Sequence)
	}
}

func TestSequenceModelJSON(t *testing.T) {
	testlog.Start(t)
	model, err := NewSequenceModel("AB", 3)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := json.Marshal(model)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"sequence":"QUI=","length":3}` {
		t.Fatalf("unexpected json: %s", data)
	}

	var bad SequenceModel
	if err := json.Unmarshal([]byte(`{"sequence":"QUI=","length":0}`), &bad); !errors.Is(err, ErrCountOutOfRange) {
		t.Fatalf("expected ErrCountOutOfRange on decode, got %v", err)
	}
	if err := json.Unmarshal([]byte(`{"sequence":"","length":3}`), &bad); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence on decode, got %v", err)
	}
}
