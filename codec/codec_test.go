package codec_test

import (
	"errors"
	"testing"

	"github.com/reglet-dev/reglet-lookup/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fluid struct {
	Name   string `json:"name" yaml:"name"`
	Amount int    `json:"amount" yaml:"amount"`
}

func TestCodecs(t *testing.T) {
	t.Parallel()

	codecs := map[string]codec.Codec[fluid]{
		"json": codec.NewJSONCodec[fluid](),
		"yaml": codec.NewYAMLCodec[fluid](),
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			in := fluid{Name: "water", Amount: 1000}

			data, err := c.Encode(in)
			require.NoError(t, err)

			out, err := c.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, in, out)

			_, err = c.Decode([]byte("{name: [unterminated"))
			assert.Error(t, err)
		})
	}
}

type stubValidator struct {
	err  error
	seen [][]byte
}

func (s *stubValidator) ValidatePayload(data []byte) error {
	s.seen = append(s.seen, data)
	return s.err
}

func TestValidatingCodec(t *testing.T) {
	t.Run("PassesValidPayloads", func(t *testing.T) {
		v := &stubValidator{}
		c := codec.NewValidatingCodec(codec.NewJSONCodec[fluid](), v)

		data, err := c.Encode(fluid{Name: "lava", Amount: 250})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"lava","amount":250}`, string(data))

		out, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "lava", out.Name)
		assert.Len(t, v.seen, 2)
	})

	t.Run("RejectsInvalidPayloads", func(t *testing.T) {
		rejection := errors.New("amount must be positive")
		c := codec.NewValidatingCodec(codec.NewJSONCodec[fluid](), &stubValidator{err: rejection})

		_, err := c.Decode([]byte(`{"name":"lava","amount":-1}`))
		assert.ErrorIs(t, err, rejection)

		_, err = c.Encode(fluid{Name: "lava", Amount: -1})
		assert.ErrorIs(t, err, rejection)
	})
}
