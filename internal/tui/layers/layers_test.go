package layers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

func TestDialogWidth(t *testing.T) {
	assert.Equal(t, MinDialogWidth, DialogWidth(30))
	assert.Equal(t, 60, DialogWidth(120))
	assert.Equal(t, MaxDialogWidth, DialogWidth(400))
}

func TestCompose(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 5) + strings.Repeat(".", 20)

	assert.Equal(t, base, Compose(base), "no overlays returns the base untouched")
	assert.Equal(t, base, Compose(base, nil))

	out := Compose(base, CreateCenteredLayer("HI", 20, 6))
	assert.Contains(t, out, "HI")
}
