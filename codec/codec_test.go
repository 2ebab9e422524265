package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string   `json:"name"`
	Rows int      `json:"rows"`
	Tags []string `json:"tags"`
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := sample{Name: "glove-6b-50d", Rows: 400000, Tags: []string{"pretrained", "glove"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(in)
		require.NoError(t, err)

		var out sample
		require.NoError(t, c.Unmarshal(data, &out))
		require.Equal(t, in, out)
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	require.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	require.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	require.False(t, ok)
}

func TestMustMarshal_DefaultCodec(t *testing.T) {
	data := MustMarshal(nil, map[string]int{"dim": 50})
	require.NotEmpty(t, data)

	var out map[string]int
	require.NoError(t, Default.Unmarshal(data, &out))
	require.Equal(t, 50, out["dim"])
}
