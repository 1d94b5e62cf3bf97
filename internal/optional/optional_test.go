package optional_test

import (
	"encoding/json"
	"testing"

	"planner/internal/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title       optional.Field[string] `json:"title,omitzero"`
	Description optional.Field[string] `json:"description,omitzero"`
	Importance  optional.Field[int]    `json:"importance,omitzero"`
}

func TestUnmarshalDistinguishesOmittedNullAndValue(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"title":"groceries","description":null}`), &p)
	require.NoError(t, err)

	v, ok := p.Title.Get()
	assert.True(t, p.Title.IsSet())
	assert.True(t, ok)
	assert.Equal(t, "groceries", v)

	assert.True(t, p.Description.IsSet())
	assert.True(t, p.Description.IsNull())
	_, ok = p.Description.Get()
	assert.False(t, ok)

	assert.False(t, p.Importance.IsSet())
	assert.False(t, p.Importance.IsNull())
}

func TestUnmarshalValueTypes(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"importance":3}`), &p)
	require.NoError(t, err)

	v, ok := p.Importance.Get()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"importance":"high"}`), &p)
	assert.Error(t, err)
}

func TestMarshalOmitsUnsetFields(t *testing.T) {
	p := payload{
		Title:       optional.Of("groceries"),
		Description: optional.Null[string](),
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"groceries","description":null}`, string(data))
}

func TestConstructors(t *testing.T) {
	f := optional.Of(42)
	assert.True(t, f.IsSet())
	assert.False(t, f.IsNull())
	assert.Equal(t, 42, f.MustGet())

	n := optional.Null[int]()
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNull())

	var zero optional.Field[int]
	assert.False(t, zero.IsSet())
	assert.True(t, zero.IsZero())
}
