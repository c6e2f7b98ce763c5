package sx126x

import (
	"bytes"
	"fmt"
	"math"
	"testing"
)

func TestPut16(t *testing.T) {
	cases := []struct {
		val uint16
		rep []byte
	}{
		{0x1234, []byte{0x12, 0x34}},
		{0, []byte{0, 0}},
		{math.MaxUint16, []byte{0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("put16_%d", c.val), func(t *testing.T) {
			rep := make([]byte, 2)
			put16(rep, c.val)
			if !bytes.Equal(rep, c.rep) {
				t.Errorf("put16(%04X) == % X, want % X", c.val, rep, c.rep)
			}
			if get16(rep) != c.val {
				t.Errorf("get16(% X) == %04X, want %04X", rep, get16(rep), c.val)
			}
		})
	}
}

func TestPut24(t *testing.T) {
	cases := []struct {
		val uint32
		rep []byte
	}{
		{0x123456, []byte{0x12, 0x34, 0x56}},
		{0, []byte{0, 0, 0}},
		{0xFFFFFF, []byte{0xFF, 0xFF, 0xFF}},
		{6862921, []byte{0x68, 0xB8, 0x49}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("put24_%d", c.val), func(t *testing.T) {
			rep := make([]byte, 3)
			put24(rep, c.val)
			if !bytes.Equal(rep, c.rep) {
				t.Errorf("put24(%06X) == % X, want % X", c.val, rep, c.rep)
			}
		})
	}
}

func TestPut32(t *testing.T) {
	cases := []struct {
		val uint32
		rep []byte
	}{
		{0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{0, []byte{0, 0, 0, 0}},
		{math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("put32_%d", c.val), func(t *testing.T) {
			rep := make([]byte, 4)
			put32(rep, c.val)
			if !bytes.Equal(rep, c.rep) {
				t.Errorf("put32(%08X) == % X, want % X", c.val, rep, c.rep)
			}
		})
	}
}
