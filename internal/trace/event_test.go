package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_StampsSequence(t *testing.T) {
	r := NewRecorder(nil)

	r.Record("add", []int{1}, nil, []int{1}, nil)
	r.Record("add", []int{2}, nil, []int{1, 2}, nil)
	r.Record("index_of", []int{2}, IntPtr(1), []int{1, 2}, nil)

	events := r.Events()
	require.Len(t, events, 3)
	assert.Equal(t, 3, r.Len())
	for i, e := range events {
		assert.Equal(t, int64(i+1), e.Seq)
	}
	require.NotNil(t, events[2].Result)
	assert.Equal(t, 1, *events[2].Result)
}

func TestRecorder_CopiesInputs(t *testing.T) {
	r := NewRecorder(NewClock())
	values := []int{1, 2, 3}
	args := []int{0}

	r.Record("remove_at", args, nil, values, nil)
	values[0] = 99
	args[0] = 99

	e := r.Events()[0]
	assert.Equal(t, []int{1, 2, 3}, e.Values)
	assert.Equal(t, []int{0}, e.Args)
}

func TestRecorder_RecordsError(t *testing.T) {
	r := NewRecorder(NewClockAt(10))
	e := r.Record("insert", []int{9, 1}, nil, []int{}, errors.New("insert: index 9 out of bounds [0, 0]"))

	assert.Equal(t, int64(11), e.Seq)
	assert.Equal(t, "insert: index 9 out of bounds [0, 0]", e.Error)
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain", Event{Seq: 1, Op: "add", Args: []int{1}, Values: []int{1}}, "#1 add [1] => [1]"},
		{"result", Event{Seq: 2, Op: "index_of", Args: []int{3}, Result: IntPtr(-1), Values: []int{1}}, "#2 index_of [3] -> -1 => [1]"},
		{"error", Event{Seq: 3, Op: "remove_at", Args: []int{5}, Error: "boom"}, "#3 remove_at [5] ! boom"},
		{"no args", Event{Seq: 4, Op: "display"}, "#4 display => []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestSnapshot_Canonical(t *testing.T) {
	snap := Snapshot{
		Name:  "demo",
		RunID: "run-1",
		Events: []Event{
			{Seq: 1, Op: "add", Args: []int{1}, Values: []int{1}},
			{Seq: 2, Op: "index_of", Args: []int{1}, Result: IntPtr(0), Values: []int{1}},
			{Seq: 3, Op: "remove_at", Args: []int{4}, Values: nil, Error: "bad"},
		},
	}

	data, err := snap.Canonical()
	require.NoError(t, err)

	want := `{"events":[` +
		`{"args":[1],"op":"add","seq":1,"values":[1]},` +
		`{"args":[1],"op":"index_of","result":0,"seq":2,"values":[1]},` +
		`{"args":[4],"error":"bad","op":"remove_at","seq":3,"values":[]}` +
		`],"name":"demo","run_id":"run-1"}`
	assert.Equal(t, want, string(data))
}

func TestSnapshot_CanonicalOmitsEmptyRunID(t *testing.T) {
	data, err := Snapshot{Name: "x"}.Canonical()
	require.NoError(t, err)
	assert.Equal(t, `{"events":[],"name":"x"}`, string(data))
}

func TestSnapshot_Digest(t *testing.T) {
	snap := Snapshot{Name: "x", Events: []Event{{Seq: 1, Op: "add", Args: []int{1}, Values: []int{1}}}}

	data, err := snap.Canonical()
	require.NoError(t, err)

	h := sha256.New()
	h.Write([]byte(DomainSnapshot))
	h.Write([]byte{0})
	h.Write(data)
	want := hex.EncodeToString(h.Sum(nil))

	got, err := snap.Digest()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Any change in content changes the digest.
	snap.Events[0].Values = []int{2}
	changed, err := snap.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, got, changed)
}

func TestDigest_DomainSeparation(t *testing.T) {
	data := []byte(`{"a":1}`)
	assert.NotEqual(t, Digest(DomainEvent, data), Digest(DomainSnapshot, data))
	assert.Len(t, Digest(DomainEvent, data), 64)
}

func TestEvent_Digest(t *testing.T) {
	e := Event{Seq: 1, Op: "add", Args: []int{1}, Values: []int{1}}
	first, err := e.Digest()
	require.NoError(t, err)
	second, err := e.Digest()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	e.Seq = 2
	third, err := e.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
