package sinkgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_ProductionKindsInOrder(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"ArrayBufferSink", "FileSink", "HTTPResponseSink", "HTTPSResponseSink", "NetworkSink"}, r.Names())
	for i, k := range r.Kinds() {
		assert.Equal(t, SinkID(i), k.ID, "ID is the registry position")
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr error
	}{
		{"empty", nil, ErrEmptyRegistry},
		{"blank name", []string{""}, ErrInvalidKindName},
		{"leading digit", []string{"9Sink"}, ErrInvalidKindName},
		{"punctuation", []string{"File-Sink"}, ErrInvalidKindName},
		{"duplicate", []string{"Alpha", "Beta", "Alpha"}, ErrDuplicateKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.names...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_KindsIsACopy(t *testing.T) {
	r, err := NewRegistry("Alpha", "Beta")
	require.NoError(t, err)

	kinds := r.Kinds()
	kinds[0].Name = "Mutated"

	assert.Equal(t, []string{"Alpha", "Beta"}, r.Names())
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry("Alpha", "_beta2")
	require.NoError(t, err)

	k, ok := r.Lookup("_beta2")
	require.True(t, ok)
	assert.Equal(t, Kind{Name: "_beta2", ID: 1}, k)

	_, ok = r.Lookup("Gamma")
	assert.False(t, ok)
}
