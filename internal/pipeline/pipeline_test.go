package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResume(name string) *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{Name: name, Summary: "Builds things."},
		Experiences:  []types.Experience{{Role: "Engineer", Company: "Engines Ltd", StartDate: "2020", Current: true}},
		Skills:       types.SkillList{types.NewSkill("Go")},
	}
}

func TestRenderVariants_AllLayoutsInOrder(t *testing.T) {
	variants, err := RenderVariants(context.Background(), testResume("Ada"), types.ThemeConfig{PrimaryColor: "#0f766e"}, nil, Options{})
	require.NoError(t, err)
	require.Len(t, variants, 3)

	for i, layout := range theme.Layouts {
		assert.Equal(t, layout, variants[i].Layout)
		assert.Equal(t, string(layout), variants[i].Document.Layout)
		assert.Equal(t, "#0f766e", variants[i].Document.PrimaryColor)
		assert.Equal(t, types.ThemeConfig{PrimaryColor: "#0f766e", FontFamily: theme.DefaultFontFamily, Layout: string(layout)}, variants[i].Theme)
		assert.Equal(t, 1, variants[i].Pages)
		assert.Empty(t, variants[i].HTML)
	}
}

func TestRenderVariants_MatchesDirectRender(t *testing.T) {
	r := testResume("Ada")
	variants, err := RenderVariants(context.Background(), r, types.ThemeConfig{}, []theme.Layout{theme.LayoutMinimal}, Options{})
	require.NoError(t, err)
	require.Len(t, variants, 1)

	direct := rendering.RenderResume(r, types.ThemeConfig{Layout: "minimal"}, rendering.Options{})
	assert.Equal(t, direct, variants[0].Document)
}

func TestRenderVariants_HTMLAndProgress(t *testing.T) {
	var mu sync.Mutex
	var events []ProgressEvent

	variants, err := RenderVariants(context.Background(), testResume("Ada"), types.ThemeConfig{}, nil, Options{
		HTML:        true,
		Concurrency: 1,
		OnProgress: func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		},
	})
	require.NoError(t, err)

	for _, v := range variants {
		assert.Contains(t, v.HTML, "<!DOCTYPE html>")
	}
	assert.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, StepVariant, e.Step)
	}
}

func TestRenderVariants_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderVariants(ctx, testResume("Ada"), types.ThemeConfig{}, nil, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderBatch_UsesStoredOrExplicitTheme(t *testing.T) {
	stored := testResume("Ada")
	stored.Theme = &types.ThemeConfig{Layout: "modern"}

	items := []BatchItem{
		{ID: "stored", Resume: stored},
		{ID: "override", Resume: stored, Theme: &types.ThemeConfig{Layout: "minimal"}},
		{ID: "default", Resume: testResume("Grace")},
	}

	results, err := RenderBatch(context.Background(), items, Options{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "stored", results[0].ID)
	assert.Equal(t, theme.LayoutModern, results[0].Layout)
	assert.Equal(t, theme.LayoutMinimal, results[1].Layout)
	assert.Equal(t, theme.LayoutClassic, results[2].Layout)
	assert.Equal(t, "Grace", results[2].Document.Title)
}

func TestRenderBatch_MissingResume(t *testing.T) {
	_, err := RenderBatch(context.Background(), []BatchItem{
		{ID: "ok", Resume: testResume("Ada")},
		{ID: "empty"},
	}, Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `item "empty": no resume`)
}

func TestRenderBatch_Empty(t *testing.T) {
	results, err := RenderBatch(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
