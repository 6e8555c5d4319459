package game

import (
	"fmt"

	"github.com/iburimskiy/breathing-halftone/internal/halftone"
)

// channelPreset is one entry of the C-key cycle. A nil channel list lets
// the engine pick its polarity default (R/G/B additive, Lum subtractive).
type channelPreset struct {
	name     string
	channels []halftone.Channel
}

var channelPresets = []channelPreset{
	{name: "auto"},
	{name: "rgb", channels: []halftone.Channel{halftone.ChannelRed, halftone.ChannelGreen, halftone.ChannelBlue}},
	{name: "lum", channels: []halftone.Channel{halftone.ChannelLum}},
	{name: "rgb+lum", channels: []halftone.Channel{halftone.ChannelRed, halftone.ChannelGreen, halftone.ChannelBlue, halftone.ChannelLum}},
}

// modeLabel summarizes the live options for the status line.
func modeLabel(opts halftone.Options, preset string) string {
	polarity := "subtractive"
	if opts.IsAdditive {
		polarity = "additive"
	}
	layout := "cartesian"
	if opts.IsRadial {
		layout = "radial"
	}
	lens := "off"
	if opts.IsChannelLens {
		lens = "on"
	}
	return fmt.Sprintf("%s | %s | channels: %s | lens: %s", polarity, layout, preset, lens)
}
