package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Code string
}

type item struct {
	Code string
}

func TestMapSlicePtrWithID(t *testing.T) {
	toItem := func(r *row) (*item, error) {
		if r.Code == "" {
			return nil, errors.New("empty code")
		}
		if r.Code == "skip" {
			return nil, nil
		}
		return &item{Code: r.Code}, nil
	}
	getID := func(r *row) uint { return r.ID }

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID[row, item, uint](nil, toItem, getID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("skips nil inputs and outputs", func(t *testing.T) {
		got, err := MapSlicePtrWithID([]*row{{ID: 1, Code: "de"}, nil, {ID: 2, Code: "skip"}, {ID: 3, Code: "fr"}}, toItem, getID)
		require.NoError(t, err)
		assert.Equal(t, []*item{{Code: "de"}, {Code: "fr"}}, got)
	})

	t.Run("error names failing id", func(t *testing.T) {
		_, err := MapSlicePtrWithID([]*row{{ID: 1, Code: "de"}, {ID: 42}}, toItem, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ID 42")
	})
}

func TestPluck(t *testing.T) {
	got := Pluck([]*row{{ID: 4}, nil, {ID: 9}}, func(r *row) uint { return r.ID })
	assert.Equal(t, []uint{4, 9}, got)

	assert.Empty(t, Pluck[row, uint](nil, func(r *row) uint { return r.ID }))
}
