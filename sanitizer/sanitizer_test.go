// FILE: sanitizer/sanitizer_test.go
package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePassesPrintableThrough(t *testing.T) {
	s := New()
	in := "serving conn-1 path=/health status=200"
	assert.Equal(t, in, s.Sanitize(in))
}

func TestSanitizeEscapesNewline(t *testing.T) {
	s := New()
	out := s.Sanitize("line one\nline two")
	assert.Equal(t, "line one<0a>line two", out)
	assert.NotContains(t, out, "\n")
}

func TestSanitizeEscapesCarriageReturnAndTab(t *testing.T) {
	s := New()
	out := s.Sanitize("a\rb\tc")
	assert.Equal(t, "a<0d>b<09>c", out)
}

func TestSanitizeEscapesNullByte(t *testing.T) {
	s := New()
	assert.Equal(t, "a<00>b", s.Sanitize("a\x00b"))
}

func TestSanitizeLeavesUnicodeTextAlone(t *testing.T) {
	s := New()
	in := "héllo wörld 日本語"
	assert.Equal(t, in, s.Sanitize(in))
}

func TestSanitizeEmptyString(t *testing.T) {
	s := New()
	assert.Equal(t, "", s.Sanitize(""))
}

func TestSanitizeMultiByteControlRune(t *testing.T) {
	s := New()
	// U+0085 NEXT LINE, encoded as two UTF-8 bytes (0xC2 0x85).
	out := s.Sanitize("line1line2")
	assert.Equal(t, "line1<c285>line2", out)
}
