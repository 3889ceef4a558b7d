package elo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelta(t *testing.T) {
	type args struct {
		Ra float64
		Rb float64
		K  float64
		Sa Points
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "same rating draw",
			args: args{Ra: 1500, Rb: 1500, K: DefaultK, Sa: Draw},
			want: 0,
		},
		{
			name: "same rating win",
			args: args{Ra: 1500, Rb: 1500, K: DefaultK, Sa: Win},
			want: 25,
		},
		{
			name: "same rating lose",
			args: args{Ra: 1500, Rb: 1500, K: DefaultK, Sa: Lose},
			want: -25,
		},
		{
			name: "top rating win",
			args: args{Ra: 1600, Rb: 1400, K: DefaultK, Sa: Win},
			want: 12.0,
		},
		{
			name: "bottom rating win",
			args: args{Ra: 1400, Rb: 1600, K: DefaultK, Sa: Win},
			want: 38.0,
		},
		{
			name: "bottom rating draw",
			args: args{Ra: 1400, Rb: 1600, K: DefaultK, Sa: Draw},
			want: 13.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delta(tt.args.Ra, tt.args.Rb, tt.args.K, tt.args.Sa)
			assert.InDelta(t, tt.want, got, 0.5)
		})
	}
}

func TestWinExpectancy(t *testing.T) {
	assert.Equal(t, 0.5, WinExpectancy(1500, 1500))
	assert.Equal(t, 0.5, WinExpectancy(0, 0))

	assert.Greater(t, WinExpectancy(1501, 1499), 0.5)
	assert.Greater(t, WinExpectancy(1550, 1450), 0.6)
	assert.Greater(t, WinExpectancy(1600, 1400), 0.7)
	assert.Greater(t, WinExpectancy(1700, 1300), 0.9)
	assert.Greater(t, WinExpectancy(2000, 1000), 0.99)

	assert.Less(t, WinExpectancy(1499, 1501), 0.5)
	assert.Less(t, WinExpectancy(1450, 1550), 0.4)
	assert.Less(t, WinExpectancy(1400, 1600), 0.3)
	assert.Less(t, WinExpectancy(1300, 1700), 0.1)
	assert.Less(t, WinExpectancy(1000, 2000), 0.01)
}

func TestWinExpectancyComplement(t *testing.T) {
	pairs := [][2]float64{{1500, 1500}, {1510, 1490}, {1800, 1200}, {900, 2400}, {0, 3000}}
	for _, p := range pairs {
		a, b := WinExpectancy(p[0], p[1]), WinExpectancy(p[1], p[0])
		assert.InDelta(t, 1.0, a+b, 1e-12)
		assert.True(t, a > 0 && a < 1)
	}
}

func TestWinExpectancyMonotonic(t *testing.T) {
	prev := 0.0
	for diff := -1000.0; diff <= 1000; diff += 25 {
		we := WinExpectancy(1500+diff, 1500)
		assert.Greater(t, we, prev)
		prev = we
	}
	assert.False(t, math.IsNaN(prev))
}
