package faleproxy_test

import (
	"testing"

	"github.com/fwojciec/faleproxy"
	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	t.Run("replaces every casing with fixed Fale", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Fale Fale Fale Fale", faleproxy.Rewrite("Yale YALE yale yAlE"))
	})

	t.Run("rewrites inside longer words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Falensis and NewFale", faleproxy.Rewrite("Yalensis and NewYale"))
	})

	t.Run("leaves other text untouched", func(t *testing.T) {
		t.Parallel()

		in := "Harvard, Princeton & Yal e"
		assert.Equal(t, in, faleproxy.Rewrite(in))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := faleproxy.Rewrite("Yale University")
		assert.Equal(t, once, faleproxy.Rewrite(once))
		assert.False(t, faleproxy.NeedsRewrite(once))
	})
}
