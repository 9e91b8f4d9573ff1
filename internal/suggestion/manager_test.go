// File: internal/suggestion/manager_test.go
package suggestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

func newManager() *Manager {
	return NewManager(zap.NewNop())
}

func TestSetReplacesSuggestionAndClearsError(t *testing.T) {
	m := newManager()
	m.SetError(errors.New("backend down"))

	s := &schemas.Suggestion{Type: schemas.SuggestionBuy, ItemID: 4151, Price: 100, Quantity: 1}
	m.Set(s)

	assert.Same(t, s, m.Suggestion())
	assert.NoError(t, m.SuggestionError())
}

func TestSetErrorKeepsSuggestion(t *testing.T) {
	m := newManager()
	s := &schemas.Suggestion{Type: schemas.SuggestionSell, ItemID: 4151}
	m.Set(s)

	err := errors.New("timeout")
	m.SetError(err)

	assert.Same(t, s, m.Suggestion(), "a fetch failure must not drop the last suggestion")
	assert.ErrorIs(t, m.SuggestionError(), err)
}

func TestClear(t *testing.T) {
	m := newManager()
	m.Set(&schemas.Suggestion{Type: schemas.SuggestionWait})
	m.Clear()

	assert.Nil(t, m.Suggestion())
	assert.NoError(t, m.SuggestionError())
}

func TestGenerationAdvancesOnEveryReplacement(t *testing.T) {
	m := newManager()
	start := m.Generation()

	m.Set(&schemas.Suggestion{Type: schemas.SuggestionWait})
	m.Set(nil)
	m.Clear()

	assert.Equal(t, start+3, m.Generation())

	m.SetError(errors.New("x"))
	assert.Equal(t, start+3, m.Generation(), "errors do not advance the generation")
}
