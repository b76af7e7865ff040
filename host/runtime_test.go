package host_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	lookup "github.com/reglet-dev/reglet-lookup"
	"github.com/reglet-dev/reglet-lookup/config"
	"github.com/reglet-dev/reglet-lookup/host"
	"github.com/reglet-dev/reglet-lookup/ingredients"
	"github.com/reglet-dev/reglet-lookup/plugin"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
	"github.com/reglet-dev/reglet-lookup/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemStack struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type noRender struct{}

func (noRender) Tooltip(itemStack) []string { return nil }

var (
	crafting      = lookup.NewRecipeType("minecraft:crafting", "Crafting")
	itemStackType = ingredients.NewType[itemStack]("jei:item_stack")
)

func TestNewRuntime(t *testing.T) {
	internal := &plugin.MockPlugin{
		Name:       "jei:internal",
		ByCategory: map[values.UID][]any{crafting.UID: {"a", "c"}},
	}
	extra := &plugin.MockPlugin{
		Name:       "examplemod:recipes",
		ByCategory: map[values.UID][]any{crafting.UID: {"a", "b"}},
	}
	disabled := &plugin.MockPlugin{Name: "brokenmod:recipes"}

	cfg := config.Default()
	cfg.DisabledPlugins = []string{"brokenmod:*"}

	rt, err := host.NewRuntime(internal, []plugin.Candidate{
		{Plugin: extra, Name: values.MustNewPluginName("examplemod:recipes"), APIVersion: "1.0.0"},
		{Plugin: disabled, Name: values.MustNewPluginName("brokenmod:recipes"), APIVersion: "1.0.0"},
	}, host.WithConfig(cfg), host.WithLogger(plugin.NewTestLogger()))
	require.NoError(t, err)

	assert.Equal(t, cfg, rt.Config())
	require.Len(t, rt.Rejected(), 1)
	assert.Equal(t, "brokenmod:recipes", rt.Rejected()[0].Name.String())

	infos := rt.Plugins().Plugins()
	require.Len(t, infos, 2)
	assert.Equal(t, "jei:internal", infos[0].Name)
	assert.Equal(t, "examplemod:recipes", infos[1].Name)

	data := lookup.NewRecipeTypeData[string](plugin.MockCategory{Type: crafting})
	got := slices.Collect(lookup.Recipes(rt.Plugins(), data, lookup.EmptyFocusGroup(), true))
	assert.Equal(t, []string{"a", "c", "b"}, got)
	assert.Zero(t, disabled.TotalCalls())
}

func TestNewRuntime_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, err := host.NewRuntime(&plugin.MockPlugin{}, nil, host.WithConfig(cfg))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRuntime_IngredientsWithValidatedCodec(t *testing.T) {
	rt, err := host.NewRuntime(&plugin.MockPlugin{Name: "jei:internal"}, nil,
		host.WithLogger(plugin.NewTestLogger()))
	require.NoError(t, err)

	c := host.JSONCodec(rt, itemStackType)
	info := ingredients.NewInfo(itemStackType,
		[]itemStack{{Item: "minecraft:stone", Count: 1}},
		ingredients.HelperFunc[itemStack](func(s itemStack) string { return s.Item }),
		noRender{}, c)
	require.NoError(t, ingredients.Register(rt.Ingredients(), info))

	_, ok := rt.Schemas().Schema(itemStackType.UID())
	require.True(t, ok)

	data, err := info.Codec().Encode(itemStack{Item: "minecraft:dirt", Count: 3})
	require.NoError(t, err)

	decoded, err := info.Codec().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, itemStack{Item: "minecraft:dirt", Count: 3}, decoded)

	_, err = info.Codec().Decode([]byte(`{"item":"minecraft:dirt"}`))
	assert.ErrorIs(t, err, validation.ErrInvalidPayload)

	got, ok := ingredients.InfoFor(rt.Ingredients(), itemStackType)
	require.True(t, ok)
	assert.Equal(t, 1, got.AllIngredients().Len())
}

func TestRuntime_ScalarIngredientType(t *testing.T) {
	rt, err := host.NewRuntime(&plugin.MockPlugin{Name: "jei:internal"}, nil,
		host.WithLogger(plugin.NewTestLogger()))
	require.NoError(t, err)

	itemNames := ingredients.NewType[string]("jei:item_name")
	info := ingredients.NewInfo(itemNames, []string{"minecraft:stone"},
		ingredients.HelperFunc[string](func(s string) string { return s }),
		nil, host.JSONCodec(rt, itemNames))
	require.NoError(t, ingredients.Register(rt.Ingredients(), info))

	assert.NoError(t, rt.Validator().Validate(itemNames.UID(), []byte(`"minecraft:dirt"`)))
	assert.ErrorIs(t, rt.Validator().Validate(itemNames.UID(), []byte(`42`)), validation.ErrInvalidPayload)
	assert.ErrorIs(t, rt.Validator().Validate(itemStackType.UID(), []byte(`{}`)), validation.ErrSchemaNotFound)

	data, err := info.Codec().Encode("minecraft:dirt")
	require.NoError(t, err)
	decoded, err := info.Codec().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "minecraft:dirt", decoded)
}

func TestRuntime_FaultIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	broken := &plugin.MockPlugin{Name: "examplemod:broken", PanicWith: "boom"}
	rt, err := host.NewRuntime(&plugin.MockPlugin{Name: "jei:internal"}, []plugin.Candidate{
		{Plugin: broken, Name: values.MustNewPluginName("examplemod:broken"), APIVersion: "1.0.0"},
	}, host.WithLogger(logger))
	require.NoError(t, err)

	data := lookup.NewRecipeTypeData[string](plugin.MockCategory{Type: crafting})
	for range lookup.Recipes(rt.Plugins(), data, lookup.EmptyFocusGroup(), false) {
	}

	assert.True(t, rt.Plugins().IsDisabled(1))
	assert.Contains(t, buf.String(), "recipe lookup plugin crashed, disabling it")
	assert.Contains(t, buf.String(), "examplemod:broken")
}
