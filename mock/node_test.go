package mock_test

import (
	"testing"

	"github.com/fwojciec/mpheader/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	t.Parallel()

	t.Run("siblings are linked in order", func(t *testing.T) {
		t.Parallel()

		nodes := mock.Siblings(mock.Text("a"), mock.Element("hr"), mock.Text("b"))

		require.NotNil(t, nodes[0].Next())
		assert.Equal(t, "hr", nodes[0].Next().Tag())
		assert.Equal(t, "b", nodes[0].Next().Next().Text())
		assert.Nil(t, nodes[2].Next())
	})

	t.Run("element text and markup include descendants", func(t *testing.T) {
		t.Parallel()

		p := mock.Element("p", mock.Text("int "), mock.Element("b", mock.Text("x")))

		assert.Equal(t, "int x", p.Text())
		assert.Equal(t, "<p>int <b>x</b></p>", p.Markup())
		assert.Len(t, p.Children(), 2)
	})
}
