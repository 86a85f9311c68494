package p4

import (
	"testing"

	"github.com/grovetools/p4mux/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	output := []byte(`{"depotFile":"//depot/a.c","action":"edit","change":"default","type":"text"}
{"depotFile":"//depot/b.c","action":"add"}

{"clientFile":"/ws/c.c","action":"edit","change":null}
`)

	records, err := ParseRecords("p4 status", output)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "edit", records[0].Action)
	assert.True(t, records[0].HasChange())
	assert.Equal(t, "add", records[1].Action)
	assert.False(t, records[1].HasChange())
	assert.False(t, records[2].HasChange())
}

func TestParseRecords_Empty(t *testing.T) {
	records, err := ParseRecords("p4 opened", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRecords_Malformed(t *testing.T) {
	output := []byte("{\"action\":\"edit\"}\nfile(s) not opened on this client.\n")

	_, err := ParseRecords("p4 opened", output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMalformedOutput))

	muxErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, 2, muxErr.Details["line"])
}
