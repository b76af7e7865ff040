package validation_test

import (
	"testing"

	"github.com/reglet-dev/reglet-lookup/plugin/values"
	"github.com/reglet-dev/reglet-lookup/registry"
	"github.com/reglet-dev/reglet-lookup/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemStack struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

func TestValidator_Validate(t *testing.T) {
	items := values.MustParseUID("jei:item_stack")
	custom := values.MustParseUID("examplemod:custom")

	schemas := registry.NewRegistry()
	require.NoError(t, schemas.Register(items, itemStack{}))
	require.NoError(t, schemas.Register(custom, `{"type":"object","properties":{"amount":{"type":"integer","minimum":1}}}`))

	v := validation.NewValidator(schemas)

	tests := []struct {
		name    string
		kind    values.UID
		payload string
		wantErr error
	}{
		{"valid generated", items, `{"item":"minecraft:stone","count":64}`, nil},
		{"missing required field", items, `{"item":"minecraft:stone"}`, validation.ErrInvalidPayload},
		{"unknown field", items, `{"item":"minecraft:stone","count":1,"extra":true}`, validation.ErrInvalidPayload},
		{"wrong type", items, `{"item":"minecraft:stone","count":"many"}`, validation.ErrInvalidPayload},
		{"not json", items, `{`, validation.ErrInvalidPayload},
		{"valid raw schema", custom, `{"amount":5}`, nil},
		{"raw schema minimum", custom, `{"amount":0}`, validation.ErrInvalidPayload},
		{"no schema", values.MustParseUID("examplemod:unknown"), `{}`, validation.ErrSchemaNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.kind, []byte(tc.payload))
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidator_BrokenSchema(t *testing.T) {
	broken := values.MustParseUID("examplemod:broken")
	schemas := registry.NewRegistry()
	require.NoError(t, schemas.Register(broken, `{"type": 12}`))

	err := validation.NewValidator(schemas).Validate(broken, []byte(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, validation.ErrInvalidPayload)
}

func TestValidator_For(t *testing.T) {
	items := values.MustParseUID("jei:item_stack")
	schemas := registry.NewRegistry()
	require.NoError(t, schemas.Register(items, itemStack{}))

	pv := validation.NewValidator(schemas).For(items)
	assert.NoError(t, pv.ValidatePayload([]byte(`{"item":"minecraft:dirt","count":1}`)))
	assert.ErrorIs(t, pv.ValidatePayload([]byte(`[]`)), validation.ErrInvalidPayload)
}
