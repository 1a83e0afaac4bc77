// internal/validate/validate_test.go
package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commentbox/internal/util"
)

func validationErrors(t *testing.T, err error) []string {
	t.Helper()
	var appErr *util.Error
	require.True(t, errors.As(err, &appErr), "expected a *util.Error, got %v", err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Invalid input", appErr.Message)
	data, ok := appErr.Data.(map[string]any)
	require.True(t, ok)
	msgs, ok := data["errors"].([]string)
	require.True(t, ok)
	return msgs
}

func TestBody_SanitizesInPlace(t *testing.T) {
	body := map[string]any{
		"username": "  AlIcE  ",
		"extra":    42,
	}

	err := Body(body, []Field{
		{Name: "username", Type: TypeString, Normalize: true, Len: []int{3, 50}},
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", body["username"])
	// Fields without a rule pass through untouched.
	assert.Equal(t, 42, body["extra"])
}

func TestBody_SanitizationOrderAndCollapse(t *testing.T) {
	body := map[string]any{"name": "  Jane   Q.   Doe  "}

	err := Body(body, []Field{
		{Name: "name", Type: TypeString, Trim: true, CollapseSpaces: true},
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", body["name"])
}

func TestBody_SanitizationIsIdempotent(t *testing.T) {
	rules := []Field{
		{Name: "v", Type: TypeString, Normalize: true},
	}

	for _, input := range []string{"  A  B  ", "a b", "HeLLo\tWorld", ""} {
		body := map[string]any{"v": input}
		require.NoError(t, Body(body, rules))
		once := body["v"].(string)

		require.NoError(t, Body(body, rules))
		assert.Equal(t, once, body["v"], "sanitizing a sanitized value changed it")
	}
}

func TestBody_NormalizeShorthandComposes(t *testing.T) {
	shorthand := map[string]any{"v": "  Some   NAME  "}
	explicit := map[string]any{"v": "  Some   NAME  "}

	require.NoError(t, Body(shorthand, []Field{
		{Name: "v", Type: TypeString, Normalize: true},
	}))
	require.NoError(t, Body(explicit, []Field{
		{Name: "v", Type: TypeString, Trim: true, Lowercase: true, CollapseSpaces: true},
	}))

	assert.Equal(t, explicit["v"], shorthand["v"])
}

func TestBody_NonStringValue(t *testing.T) {
	body := map[string]any{"username": 12345}

	err := Body(body, []Field{
		{Name: "username", Type: TypeString, Normalize: true, Len: []int{3, 50}},
	})

	msgs := validationErrors(t, err)
	// Type failure skips all further processing for the field.
	assert.Equal(t, []string{"must be a string"}, msgs)
}

func TestBody_MissingFieldIsNotAString(t *testing.T) {
	body := map[string]any{}

	err := Body(body, []Field{
		{Name: "author", Type: TypeString, Trim: true},
	})

	msgs := validationErrors(t, err)
	assert.Equal(t, []string{"must be a string"}, msgs)
}

func TestBody_LengthMessages(t *testing.T) {
	t.Run("below minimum names field and minimum", func(t *testing.T) {
		body := map[string]any{"username": "ab"}
		err := Body(body, []Field{
			{Name: "username", Type: TypeString, Len: []int{3, 50}},
		})
		msgs := validationErrors(t, err)
		assert.Equal(t, []string{"username must be at least 3 and 50 characters long"}, msgs)
	})

	t.Run("unbounded maximum omits the max clause", func(t *testing.T) {
		body := map[string]any{"body": ""}
		err := Body(body, []Field{
			{Name: "body", Type: TypeString, Len: []int{1}},
		})
		msgs := validationErrors(t, err)
		assert.Equal(t, []string{"body must be at least 1 characters long"}, msgs)
	})

	t.Run("length measured after sanitization", func(t *testing.T) {
		body := map[string]any{"username": "   ab   "}
		err := Body(body, []Field{
			{Name: "username", Type: TypeString, Normalize: true, Len: []int{3, 50}},
		})
		msgs := validationErrors(t, err)
		assert.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "username")
		assert.Contains(t, msgs[0], "3")
	})
}

func TestBody_CustomChecksRunInOrderOnSanitizedValue(t *testing.T) {
	var seen []string
	body := map[string]any{"v": "  VALUE  "}

	err := Body(body, []Field{
		{
			Name:      "v",
			Type:      TypeString,
			Normalize: true,
			Checks: []Check{
				{Validator: func(s string) bool { seen = append(seen, s); return false }, Message: "first"},
				{Validator: func(s string) bool { seen = append(seen, s); return false }, Message: "second"},
			},
		},
	})

	msgs := validationErrors(t, err)
	assert.Equal(t, []string{"first", "second"}, msgs)
	// Both validators received the sanitized value, sequentially.
	assert.Equal(t, []string{"value", "value"}, seen)
}

func TestBody_ErrorOrderFollowsFieldDeclarationOrder(t *testing.T) {
	body := map[string]any{"a": 1, "b": "x"}

	err := Body(body, []Field{
		{Name: "a", Type: TypeString},
		{Name: "b", Type: TypeString, Len: []int{5}},
	})

	msgs := validationErrors(t, err)
	assert.Equal(t, []string{
		"must be a string",
		"b must be at least 5 characters long",
	}, msgs)
}
