package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectProviderPriority(t *testing.T) {
	assert.Equal(t, ProviderGroq, SelectProvider("gsk_key", "sk_key"))
	assert.Equal(t, ProviderGroq, SelectProvider("gsk_key", ""))
	assert.Equal(t, ProviderOpenAI, SelectProvider("", "sk_key"))
	assert.Equal(t, ProviderNone, SelectProvider("", ""))
}
