package clockface

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{255, 0, 0, 255}},
		{" White ", color.NRGBA{255, 255, 255, 255}},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#0F0", color.NRGBA{0, 255, 0, 255}},
		{"#0000ff80", color.NRGBA{0, 0, 255, 128}},
		{"rgba(33,245,45,.2)", color.NRGBA{33, 245, 45, 51}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgba(300,-5,0,2)", color.NRGBA{255, 0, 0, 255}},
		{"transparent", color.NRGBA{}},
	} {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, c.NRGBA())
			require.Equal(t, tc.in, c.String())
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"notacolor",
		"#12",
		"#gggggg",
		"#12345678901",
		"rgba(1,2,3)",
		"rgb(1,2,x)",
		"rgb(1,2,3",
		"hsl(0,0%,0%)",
		"#ff 0 0",
		"# f f f",
		"#0f 0f0",
		"rgba(255,0,0,nan)",
		"rgb(nan,0,0)",
		"rgb(inf,0,0)",
		"rgb(0,-inf%,0)",
		"rgba(0,0,0,+Inf)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidColor))

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr))
			require.Equal(t, in, cerr.Value)
		})
	}
}

func TestColorFrom(t *testing.T) {
	c := ColorFrom(color.RGBA{R: 255, A: 255})
	require.Equal(t, 1.0, c.R)
	require.Equal(t, 0.0, c.G)
	require.Equal(t, 1.0, c.A)
	require.Equal(t, "rgba(255,0,0,1)", c.String())

	back, err := ParseColor(c.String())
	require.NoError(t, err)
	require.Equal(t, c.NRGBA(), back.NRGBA())
}
