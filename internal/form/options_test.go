package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/laptop-advisor/internal/service"
)

func TestOptionStore_StartsEmpty(t *testing.T) {
	s := NewOptionStore()

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Manufacturers())
	assert.Empty(t, s.Categories())
	assert.Empty(t, s.Models("Dell"))
}

func TestOptionStore_Models(t *testing.T) {
	s := NewOptionStore()
	s.Replace(sampleOptions())

	tests := []struct {
		name         string
		manufacturer string
		want         []string
	}{
		{"known manufacturer", "Dell", []string{"XPS13", "Inspiron"}},
		{"other manufacturer", "HP", []string{"Spectre"}},
		{"unknown manufacturer", "Lenovo", []string{}},
		{"empty manufacturer", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Models(tt.manufacturer))
		})
	}
}

func TestOptionStore_LoadReplacesWholeSet(t *testing.T) {
	s := NewOptionStore()
	s.Replace(sampleOptions())

	next := &service.OptionSet{
		Manufacturers: []string{"Asus"},
		ModelNames:    map[string][]string{"Asus": {"Zenbook"}},
	}
	require.NoError(t, s.Load(context.Background(), &fakeService{options: next}))

	assert.Equal(t, []string{"Asus"}, s.Manufacturers())
	assert.Empty(t, s.Models("Dell"))
	assert.Empty(t, s.Categories())
}

func TestOptionStore_LoadFailureKeepsPriorSet(t *testing.T) {
	s := NewOptionStore()
	s.Replace(sampleOptions())

	err := s.Load(context.Background(), &fakeService{optionsErr: errors.New("nope")})
	require.Error(t, err)

	assert.Equal(t, []string{"Dell", "HP"}, s.Manufacturers())
	assert.True(t, s.Loaded())
}

func TestOptionStore_ReturnsCopies(t *testing.T) {
	src := sampleOptions()
	s := NewOptionStore()
	s.Replace(src)

	src.Manufacturers[0] = "Changed"
	got := s.Manufacturers()
	got[1] = "Mutated"

	assert.Equal(t, []string{"Dell", "HP"}, s.Manufacturers())
}

func TestOptionStore_ApplyNilSetCountsAsEmpty(t *testing.T) {
	s := NewOptionStore()

	require.NoError(t, s.Apply(nil, nil))
	assert.True(t, s.Loaded())
	assert.Empty(t, s.Manufacturers())
}
