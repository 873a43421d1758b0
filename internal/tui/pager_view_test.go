package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/pagination"
)

func TestRenderTokens(t *testing.T) {
	tests := []struct {
		name     string
		snapshot pagination.Snapshot
		want     string
	}{
		{
			name:     "middle window",
			snapshot: pagination.NewSnapshot(pagination.State{CurrentPage: 10, TotalPages: 20}, 5, 10, nil),
			want:     "1 … 9 [10] 11 … 20",
		},
		{
			name:     "full window",
			snapshot: pagination.NewSnapshot(pagination.State{CurrentPage: 2, TotalPages: 3}, 5, 10, nil),
			want:     "1 [2] 3",
		},
		{
			name:     "single page",
			snapshot: pagination.NewSnapshot(pagination.State{CurrentPage: 1, TotalPages: 1}, 5, 10, nil),
			want:     "[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Strip(RenderTokens(tt.snapshot, VariantMinimal)))
		})
	}
}

func TestRenderPager_StepControls(t *testing.T) {
	first := pagination.NewSnapshot(pagination.State{CurrentPage: 1, TotalPages: 20}, 5, 10, nil)
	got := ansi.Strip(RenderPager(first, VariantDefault))

	assert.Contains(t, got, "‹ Prev")
	assert.Contains(t, got, "Next ›")
	assert.Contains(t, got, "20")

	compact := ansi.Strip(RenderPager(first, VariantCompact))
	assert.Contains(t, compact, "‹")
	assert.NotContains(t, compact, "Prev")

	minimal := ansi.Strip(RenderPager(first, VariantMinimal))
	assert.Equal(t, "[1] 2 3 4 … 20", minimal)
}

func TestRenderRangeLine(t *testing.T) {
	s := pagination.NewSnapshot(pagination.State{CurrentPage: 3, TotalPages: 3}, 5, 10, pagination.Items(25))
	assert.Equal(t, "Showing 21-25 of 25", ansi.Strip(RenderRangeLine(s, VariantMinimal)))

	empty := pagination.NewSnapshot(pagination.State{CurrentPage: 1, TotalPages: 1}, 5, 10, nil)
	assert.Equal(t, "No results", ansi.Strip(RenderRangeLine(empty, VariantDefault)))
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    Variant
		wantErr bool
	}{
		{input: "", want: VariantDefault},
		{input: "default", want: VariantDefault},
		{input: " Compact ", want: VariantCompact},
		{input: "minimal", want: VariantMinimal},
		{input: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownVariant)
				assert.Contains(t, err.Error(), "compact, default, minimal")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVariant_Suggestion(t *testing.T) {
	_, err := ParseVariant("compakt")
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Contains(t, err.Error(), `did you mean "compact"?`)
}

func TestVariantStylesComplete(t *testing.T) {
	assert.Equal(t, []string{"compact", "default", "minimal"}, VariantNames())
	for name, styles := range VariantStyles {
		assert.NotEmpty(t, styles.CurrentFormat, "variant %s", name)
		assert.NotEmpty(t, styles.Separator, "variant %s", name)
	}
	assert.Equal(t, VariantStyles[VariantDefault].Previous, StylesFor("unknown").Previous)
}
