package codec

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string    `json:"name" cbor:"name"`
	At    time.Time `json:"at" cbor:"at"`
	Tags  []string  `json:"tags" cbor:"tags"`
	Count int       `json:"count" cbor:"count"`
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "json", "JSON", "cbor"} {
		t.Run("name="+name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}

	_, err := ByName("yaml")
	assert.Error(t, err)
}

func TestCodec_roundtrip(t *testing.T) {
	t.Parallel()

	in := doc{
		Name:  "weekly review",
		At:    time.Date(2024, time.March, 3, 9, 30, 15, 500, time.UTC),
		Tags:  []string{"a", "b"},
		Count: 3,
	}

	for _, name := range []string{NameJSON, NameCBOR} {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out doc
			require.NoError(t, c.Unmarshal(data, &out))
			assert.True(t, in.At.Equal(out.At))
			out.At = in.At
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
			}

			t.Run("stream", func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, c.NewEncoder(&buf).Encode(in))

				var streamed doc
				require.NoError(t, c.NewDecoder(&buf).Decode(&streamed))
				assert.Equal(t, in.Name, streamed.Name)
				assert.Equal(t, in.Tags, streamed.Tags)
			})
		})
	}
}
