package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New(Config{Type: TypeNone})
	require.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("x")))

	_, err = New(Config{Type: TypeUSB})
	assert.Error(t, err)

	_, err = New(Config{Type: TypeNetwork})
	assert.Error(t, err)

	_, err = New(Config{Type: "fax"})
	assert.Error(t, err)

	p, err = New(Config{Type: TypeNetwork, Address: "127.0.0.1:9100"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestWriterPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriterPrinter(&buf)

	require.NoError(t, p.Print([]byte("one")))
	require.NoError(t, p.Print([]byte("two")))

	assert.Equal(t, "onetwo", buf.String())
	assert.True(t, p.IsConnected())
	assert.NoError(t, p.Close())
}

func TestDocument_Layout(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, DefaultWidth, doc.Width())

	out := NewDocument(20).
		KeyValue("Total:", "1500").
		ItemLine(3, "2x3", "300").
		KeyValue("A very long label that overflows", "99").
		Bytes()

	// ESC @ comes first
	require.True(t, bytes.HasPrefix(out, []byte{ESC, '@'}))

	lines := bytes.Split(bytes.TrimSuffix(out[2:], []byte{LF}), []byte{LF})
	require.Len(t, lines, 3)
	assert.Equal(t, "Total:          1500", string(lines[0]))
	assert.Equal(t, "3 x 2x3          300", string(lines[1]))
	assert.Len(t, lines[2], 20)
	assert.True(t, bytes.HasSuffix(lines[2], []byte(" 99")))
}

func TestDocument_Commands(t *testing.T) {
	out := NewDocument(32).SetBold(true).SetAlign(AlignCenter).PartialCut().Bytes()

	assert.True(t, bytes.Contains(out, []byte{ESC, 'E', 1}))
	assert.True(t, bytes.Contains(out, []byte{ESC, 'a', AlignCenter}))
	assert.True(t, bytes.HasSuffix(out, []byte{GS, 'V', 0x01}))
}
