// Package color converts colours between the RGB, HSL and HSV spaces and
// their textual encodings.
//
// A colour string is always in one of four modes:
//
//	hex  #RGB, #RGBA, #RRGGBB, #RRGGBBAA
//	rgb  rgb(255, 0, 0)        rgba(255, 0, 0, 0.5)
//	hsl  hsl(0, 100%, 50%)     hsla(0, 100%, 50%, 0.5)
//	hsv  hsv(0, 100%, 100%)    hsva(0, 100%, 100%, 0.5)
//
// Tuples keep RGB channels in [0,255], hue in degrees [0,360), saturation,
// lightness, value and alpha in [0,1]. Alpha passes through every conversion
// unchanged.
//
// # Rounding
//
// Formatting rounds RGB channels and hex bytes to whole numbers, hue and
// S/L/V percentages to two decimals and alpha to three decimals (hex alpha to
// the nearest 1/255). Parsing a formatted tuple therefore reproduces the
// tuple within those tolerances.
package color
