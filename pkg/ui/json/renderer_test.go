package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	mgerrors "github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&display.ProbeReport{Pattern: "*.txt", Filename: "a.txt", Matched: true}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]interface{}{"pattern": "*.txt", "filename": "a.txt", "matched": true}, got)
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New("bad thing")))
	assert.JSONEq(t, `{"error": "bad thing"}`, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderMessage("hello"))
	assert.JSONEq(t, `{"message": "hello"}`, buf.String())
}

func TestRenderCodedError(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(mgerrors.New(mgerrors.ErrEmptyPattern, "pattern is empty")))
	assert.JSONEq(t, `{"error": "[EMPTY_PATTERN] pattern is empty", "code": "EMPTY_PATTERN"}`, buf.String())
}

func TestRenderDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("<a&b>"))
	assert.Contains(t, buf.String(), `"<a&b>"`)
}
