package pool

import "testing"

type buffer struct {
	data []byte
}

func TestGetPut(t *testing.T) {
	p := New(func() *buffer { return &buffer{data: make([]byte, 0, 16)} })
	b := p.Get()
	if b == nil {
		t.Fatal("Get returned nil")
	}
	b.data = append(b.data, 'x')
	p.Put(b)

	again := p.Get()
	if again == nil {
		t.Fatal("Get after Put returned nil")
	}
}

func TestResetRunsOnGet(t *testing.T) {
	p := NewWithReset(
		func() *buffer { return &buffer{data: make([]byte, 0, 16)} },
		func(b *buffer) { b.data = b.data[:0] },
	)
	b := p.Get()
	b.data = append(b.data, 1, 2, 3)
	p.Put(b)

	again := p.Get()
	if len(again.data) != 0 {
		t.Errorf("expected reset buffer, got %d bytes", len(again.data))
	}
}

func TestPutNil(t *testing.T) {
	p := New(func() *buffer { return &buffer{} })
	p.Put(nil) // must not panic
	if p.Get() == nil {
		t.Fatal("Get returned nil")
	}
}
