package suite

import (
	"testing"

	"github.com/probelab/browsercheck/internal/probe"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []probe.Result
		want    int
	}{
		{
			name:    "empty result set scores zero",
			results: nil,
			want:    0,
		},
		{
			name: "all supported scores one hundred",
			results: []probe.Result{
				{Supported: true},
				{Supported: true},
				{Supported: true},
			},
			want: 100,
		},
		{
			name: "all failed scores zero",
			results: []probe.Result{
				{Supported: false},
				{Supported: false},
			},
			want: 0,
		},
		{
			name: "six of nine rounds to sixty-seven",
			results: []probe.Result{
				{Supported: true}, {Supported: true}, {Supported: true},
				{Supported: true}, {Supported: true}, {Supported: true},
				{Supported: false}, {Supported: false}, {Supported: false},
			},
			want: 67,
		},
		{
			name: "one of three rounds to thirty-three",
			results: []probe.Result{
				{Supported: true},
				{Supported: false},
				{Supported: false},
			},
			want: 33,
		},
		{
			name: "half rounds up",
			results: []probe.Result{
				{Supported: true},
				{Supported: false},
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Score(tt.results))
		})
	}
}
