package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoMatchesError(t *testing.T) {
	err := &NoMatchesError{Message: "catalog contained no records to rank"}
	assert.Equal(t, "catalog contained no records to rank", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		isNoMatches bool
	}{
		{
			name:        "NoMatchesError",
			err:         &NoMatchesError{Message: "empty catalog"},
			isNoMatches: true,
		},
		{
			name:        "regular error",
			err:         errors.New("config error"),
			isNoMatches: false,
		},
		{
			name:        "wrapped NoMatchesError",
			err:         fmt.Errorf("run: %w", &NoMatchesError{Message: "empty catalog"}),
			isNoMatches: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var noMatches *NoMatchesError
			assert.Equal(t, tt.isNoMatches, errors.As(tt.err, &noMatches))
		})
	}
}
