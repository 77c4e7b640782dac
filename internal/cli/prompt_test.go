package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrims(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  merhaba  \n"), &out)

	assert.Equal(t, "merhaba", p.ReadLine("> "))
	assert.Equal(t, "> ", out.String())
}

func TestReadLineEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	assert.False(t, p.Closed())
	assert.Equal(t, "", p.ReadLine("> "))
	assert.True(t, p.Closed())
}

func TestReadLinePartialLineBeforeEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("son satır"), &bytes.Buffer{})

	assert.Equal(t, "son satır", p.ReadLine("> "))
	assert.True(t, p.Closed())
	assert.Equal(t, "", p.ReadLine("> "))
}

func TestReadIntEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("3\n"), &bytes.Buffer{})

	value, err := p.ReadInt("> ")
	require.NoError(t, err)
	assert.Equal(t, 3, value)

	_, err = p.ReadInt("> ")
	assert.ErrorIs(t, err, ErrInputClosed)

	_, err = p.ReadInt64("> ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadInt(t *testing.T) {
	p := NewPrompter(strings.NewReader("7\nabc\n"), &bytes.Buffer{})

	value, err := p.ReadInt("> ")
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	_, err = p.ReadInt("> ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geçersiz sayı")
}

func TestConfirm(t *testing.T) {
	p := NewPrompter(strings.NewReader("e\nevet\nh\nbaşka\n"), &bytes.Buffer{})

	assert.True(t, p.Confirm("Silinsin mi?"))
	assert.True(t, p.Confirm("Silinsin mi?"))
	assert.False(t, p.Confirm("Silinsin mi?"))
	assert.False(t, p.Confirm("Silinsin mi?"))
}
