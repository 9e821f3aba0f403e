package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "upload", Message: "Uploading counter.wasm", Spinner: true})
	r.Info("Contract uploaded with Code ID: 7")
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "instantiate", Message: "Instantiating contract", Spinner: true})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "save", Message: "Saving deployment record"})
	r.Done()

	assert.Equal(t, []string{"upload", "instantiate", "save"}, r.Stages())
	out := buf.String()
	assert.Contains(t, out, "Contract uploaded with Code ID: 7")
	assert.Contains(t, out, "✓ Uploading counter.wasm")
	assert.Contains(t, out, "✓ Instantiating contract")
	assert.Contains(t, out, "✓ Saving deployment record")
	assert.False(t, r.spinner.Active())
}

func TestSpinnerProgressReporter_SameStageUpdatesMessage(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "loading", Message: "Loading"})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "loading", Message: "Loaded 3"})
	r.Done()

	assert.Equal(t, []string{"loading"}, r.Stages())
	assert.Contains(t, buf.String(), "✓ Loaded 3")
}

func TestNewSink(t *testing.T) {
	assert.IsType(t, &NopSink{}, NewSink(true))
	assert.IsType(t, &SpinnerProgressReporter{}, NewSink(false))
}
