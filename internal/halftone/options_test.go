package halftone

import "testing"

func TestOptionsNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Options
		check func(t *testing.T, o Options)
	}{
		{
			name: "Friction clamped below one",
			in:   Options{Friction: 1.5},
			check: func(t *testing.T, o Options) {
				if o.Friction >= 1 {
					t.Errorf("Friction = %v, want < 1", o.Friction)
				}
			},
		},
		{
			name: "Negative friction zeroed",
			in:   Options{Friction: -0.5},
			check: func(t *testing.T, o Options) {
				if o.Friction != 0 {
					t.Errorf("Friction = %v, want 0", o.Friction)
				}
			},
		},
		{
			name: "Threshold clamped to unit range",
			in:   Options{DotSizeThreshold: 2},
			check: func(t *testing.T, o Options) {
				if o.DotSizeThreshold != 1 {
					t.Errorf("DotSizeThreshold = %v, want 1", o.DotSizeThreshold)
				}
			},
		},
		{
			name: "Zero dot size gets default",
			in:   Options{},
			check: func(t *testing.T, o Options) {
				if o.DotSize <= 0 || o.OscPeriod <= 0 || o.InitVelocity <= 0 {
					t.Errorf("defaults not filled: %+v", o)
				}
			},
		},
		{
			name: "Additive default channels",
			in:   Options{IsAdditive: true},
			check: func(t *testing.T, o Options) {
				want := []Channel{ChannelRed, ChannelGreen, ChannelBlue}
				if len(o.Channels) != len(want) {
					t.Fatalf("Channels = %v, want %v", o.Channels, want)
				}
				for i, ch := range want {
					if o.Channels[i] != ch {
						t.Errorf("Channels[%d] = %v, want %v", i, o.Channels[i], ch)
					}
				}
			},
		},
		{
			name: "Subtractive default channels",
			in:   Options{},
			check: func(t *testing.T, o Options) {
				if len(o.Channels) != 1 || o.Channels[0] != ChannelLum {
					t.Errorf("Channels = %v, want [lum]", o.Channels)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.normalize())
		})
	}
}

func TestChannelAnglesDistinct(t *testing.T) {
	seen := map[float64]Channel{}
	for ch, angle := range channelAngles {
		if prev, ok := seen[angle]; ok {
			t.Errorf("channels %v and %v share angle %v", prev, ch, angle)
		}
		seen[angle] = ch
	}
}

func TestChannelString(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelRed, "red"},
		{ChannelGreen, "green"},
		{ChannelBlue, "blue"},
		{ChannelLum, "lum"},
		{Channel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ch.String(); got != tt.want {
			t.Errorf("Channel(%d).String() = %q, want %q", tt.ch, got, tt.want)
		}
	}
}
