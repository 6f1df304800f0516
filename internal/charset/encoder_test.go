package charset_test

import (
	"bytes"
	"testing"

	"chd/internal/charset"
)

func newEncoder(t *testing.T, name string) *charset.Encoder {
	t.Helper()
	cs, err := charset.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", name, err)
	}
	return cs.NewEncoder()
}

func TestUTF8Encoder(t *testing.T) {
	e := newEncoder(t, "UTF-8")

	out, err := e.EncodeRune('é')
	if err != nil {
		t.Fatalf("EncodeRune: %v", err)
	}
	if !bytes.Equal(out, []byte{0xC3, 0xA9}) {
		t.Errorf("EncodeRune(é) = %x, want c3a9", out)
	}

	if raw := e.RawByte(0xFF); !bytes.Equal(raw, []byte{0xFF}) {
		t.Errorf("RawByte(FF) = %x, want ff", raw)
	}

	if tail := e.Flush(); len(tail) != 0 {
		t.Errorf("Flush = %x, want empty", tail)
	}
}

func TestCharmapEncoder(t *testing.T) {
	e := newEncoder(t, "ISO-8859-1")

	out, err := e.EncodeRune('é')
	if err != nil {
		t.Fatalf("EncodeRune: %v", err)
	}
	if !bytes.Equal(out, []byte{0xE9}) {
		t.Errorf("EncodeRune(é) = %x, want e9", out)
	}

	// Символ вне репертуара — ошибка, замену выбирает вызывающий.
	if _, err := e.EncodeRune('世'); err == nil {
		t.Error("EncodeRune(U+4E16): expected error for latin-1")
	}

	// После ошибки состояние остаётся рабочим.
	out, err = e.EncodeRune('A')
	if err != nil {
		t.Fatalf("EncodeRune after error: %v", err)
	}
	if !bytes.Equal(out, []byte{'A'}) {
		t.Errorf("EncodeRune(A) = %x, want 41", out)
	}
}

// Shift state: after a JIS character the encoder must shift back to
// ASCII before single-byte output, and RawByte must leave the state
// neutral.
func TestISO2022JPEncoderState(t *testing.T) {
	e := newEncoder(t, "ISO-2022-JP")

	jis, err := e.EncodeRune('あ') // あ
	if err != nil {
		t.Fatalf("EncodeRune(あ): %v", err)
	}
	if len(jis) == 0 {
		t.Fatal("EncodeRune(あ) produced no bytes")
	}
	if !bytes.HasPrefix(jis, []byte{0x1B}) {
		t.Errorf("JIS sequence should start with ESC, got %x", jis)
	}

	// RawByte проводит состояние через нейтральный символ: последний
	// байт — сырое значение, перед ним — сдвиг обратно в ASCII.
	raw := e.RawByte(0x41)
	if raw[len(raw)-1] != 0x41 {
		t.Fatalf("RawByte: last byte = %02x, want 41", raw[len(raw)-1])
	}
	if len(raw) < 2 {
		t.Fatalf("RawByte after JIS state = %x, expected shift-back prefix", raw)
	}

	// Теперь состояние нейтральное: ASCII кодируется одним байтом.
	out, err := e.EncodeRune('B')
	if err != nil {
		t.Fatalf("EncodeRune(B): %v", err)
	}
	if !bytes.Equal(out, []byte{'B'}) {
		t.Errorf("EncodeRune(B) = %x, want plain 42", out)
	}

	if tail := e.Flush(); len(tail) != 0 {
		t.Errorf("Flush in neutral state = %x, want empty", tail)
	}
}

func TestISO2022JPFlushAfterShift(t *testing.T) {
	e := newEncoder(t, "ISO-2022-JP")

	if _, err := e.EncodeRune('あ'); err != nil {
		t.Fatalf("EncodeRune(あ): %v", err)
	}
	tail := e.Flush()
	if len(tail) == 0 {
		t.Fatal("Flush after JIS state should emit a shift-back sequence")
	}
	if !bytes.HasPrefix(tail, []byte{0x1B}) {
		t.Errorf("Flush = %x, expected escape sequence", tail)
	}
}
