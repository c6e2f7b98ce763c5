package sx126x

import (
	"bytes"
	"testing"
)

func TestWriteBuffer(t *testing.T) {
	w := NewWriteBuffer(0x10, []byte("hello"))
	want := []byte{0x0E, 0x10, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(w.TxBuf(), want) {
		t.Errorf("TxBuf() == % X, want % X", w.TxBuf(), want)
	}
	if w.TransferSize() != 7 {
		t.Errorf("TransferSize() == %d, want 7", w.TransferSize())
	}
	if len(w.RxBuf()) != len(w.TxBuf()) {
		t.Errorf("len(RxBuf()) == %d, want %d", len(w.RxBuf()), len(w.TxBuf()))
	}

	w.SetDataLength(3)
	if w.TransferSize() != 5 {
		t.Errorf("TransferSize() == %d, want 5", w.TransferSize())
	}
	// Shrinking must not alter capacity or stored bytes.
	if !bytes.Equal(w.TxBuf(), want) {
		t.Errorf("TxBuf() == % X, want % X", w.TxBuf(), want)
	}

	w.SetDataLength(5)
	if w.TransferSize() != 7 {
		t.Errorf("TransferSize() == %d, want 7", w.TransferSize())
	}
}

func TestWriteBufferCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDataLength beyond capacity did not panic")
		}
	}()
	w := NewWriteBuffer(0, []byte{1, 2, 3})
	w.SetDataLength(4)
}

func TestReadBuffer(t *testing.T) {
	r := NewReadBuffer(0x17, 5)
	want := []byte{0x1E, 0x17, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(r.TxBuf(), want) {
		t.Errorf("TxBuf() == % X, want % X", r.TxBuf(), want)
	}
	if r.TransferSize() != 8 {
		t.Errorf("TransferSize() == %d, want 8", r.TransferSize())
	}

	copy(r.RxBuf()[3:], "hello")
	if !bytes.Equal(r.Data(), []byte("hello")) {
		t.Errorf("Data() == % X, want hello", r.Data())
	}

	r.SetDataLength(3)
	if r.TransferSize() != 6 {
		t.Errorf("TransferSize() == %d, want 6", r.TransferSize())
	}
	if !bytes.Equal(r.Data(), []byte("hel")) {
		t.Errorf("Data() == % X, want hel", r.Data())
	}
}

func TestReadBufferCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDataLength beyond capacity did not panic")
		}
	}()
	r := NewReadBuffer(0, 4)
	r.SetDataLength(5)
}
