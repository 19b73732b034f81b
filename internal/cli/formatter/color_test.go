package formatter

import (
	"testing"

	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/alexanderramin/enbridge/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestMetalStyle(t *testing.T) {
	colored := testutil.NewTestMetal("Cobalt", 1.88, testutil.WithColor("#0047ab"))
	plain := testutil.NewTestMetal("Plain", 1.2)

	assert.Equal(t, lipgloss.Color("#0047ab"), MetalStyle(colored).GetForeground())
	assert.True(t, MetalStyle(colored).GetBold())
	assert.Equal(t, StyleBold.GetForeground(), MetalStyle(plain).GetForeground())
}

func TestAcidityIndicator(t *testing.T) {
	tests := []struct {
		bucket domain.AcidityBucket
		want   string
	}{
		{domain.AcidityStrong, "● STRONG"},
		{domain.AcidityModerate, "● MODERATE"},
		{domain.AcidityWeak, "● WEAK"},
		{domain.AcidityMinimal, "● MINIMAL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripANSI(AcidityIndicator(tt.bucket)))
	}
}
