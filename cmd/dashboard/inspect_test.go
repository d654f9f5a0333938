package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiboard/internal/dataset"
)

const testDataset = "../../internal/dataset/testdata/reviews.csv"

func TestInspect(t *testing.T) {
	ds, err := dataset.Load(testDataset)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, inspect(&out, ds, 3))

	got := out.String()
	assert.Contains(t, got, "Total Data: 3 ulasan")
	assert.Contains(t, got, "label (mode: negative, 1 rows)")
	assert.Contains(t, got, "label_lexicon (mode: positive, 2 rows)")
	assert.Contains(t, got, "Top 3 words")
	assert.Contains(t, got, "aplikasi")
	assert.NotContains(t, got, "lumayan")
}

func TestInspectCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"inspect", "--data", testDataset, "--top", "2"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Total Data: 3 ulasan")
	assert.Contains(t, out.String(), "Top 2 words")
}

func TestInspectCommandMissingDataset(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"inspect", "--data", "does-not-exist.csv"})

	assert.Error(t, root.Execute())
}

func TestServeFlagsOverrideConfig(t *testing.T) {
	t.Setenv("CLASSIFIER_BACKEND", "openai")
	cfg, err := loadConfig()
	require.NoError(t, err)

	serveFlags{addr: ":9000", data: testDataset, backend: "VADER"}.apply(&cfg)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, testDataset, cfg.DatasetPath)
	assert.Equal(t, "vader", cfg.Classifier.Backend)
	assert.NoError(t, cfg.Validate())
}
