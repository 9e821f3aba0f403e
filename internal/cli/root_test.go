package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipsAppInit(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"version", true},
		{"help", true},
		{"completion", true},
		{"__complete", true},
		{"counter", false},
		{"deploy", false},
		{"chain", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipsAppInit(tt.name))
		})
	}
}

func TestRootCmdTree(t *testing.T) {
	root := NewRootCmd()

	groups := map[string]string{}
	for _, c := range root.Commands() {
		groups[c.Name()] = c.GroupID
	}
	assert.Equal(t, "main", groups["counter"])
	assert.Equal(t, "main", groups["balance"])
	assert.Equal(t, "main", groups["fee"])
	assert.Equal(t, "management", groups["chain"])
	assert.Equal(t, "management", groups["wallet"])
	assert.Equal(t, "management", groups["networks"])
	assert.Equal(t, "deployment", groups["deploy"])
	assert.Equal(t, "deployment", groups["migrate"])
	assert.Equal(t, "deployment", groups["deployments"])

	for _, path := range [][]string{
		{"counter", "get"},
		{"counter", "increment"},
		{"counter", "reset"},
		{"chain", "set"},
		{"chain", "select"},
		{"wallet", "import"},
		{"wallet", "show"},
		{"wallet", "remove"},
		{"fee", "estimate"},
		{"deployments", "show"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, flag := range []string{"chain", "debug", "non-interactive", "json", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmdSkipsInit(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "dapp version dev")
}

func TestGetAppNotInitialized(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getApp(cmd)
	assert.EqualError(t, err, "app not initialized")
}

func TestFeeEstimateParams(t *testing.T) {
	params, err := feeEstimateParams("increment", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "increment", params.Msg.Action())
	assert.Equal(t, domain.FeePolicyOracle, params.Policy)

	params, err = feeEstimateParams("reset", 7, "")
	require.NoError(t, err)
	require.NotNil(t, params.Msg.Reset)
	assert.Equal(t, uint64(7), params.Msg.Reset.Count)
	assert.Equal(t, domain.FeePolicyAuto, params.Policy)

	params, err = feeEstimateParams("increment", 0, "auto")
	require.NoError(t, err)
	assert.Equal(t, domain.FeePolicyAuto, params.Policy)

	_, err = feeEstimateParams("decrement", 0, "")
	assert.Error(t, err)

	_, err = feeEstimateParams("reset", 0, "fixed")
	assert.True(t, errors.Is(err, domain.ErrUnknownFeePolicy))
}

func TestReadMnemonic(t *testing.T) {
	m, err := readMnemonic(strings.NewReader("  word1 word2\n"), false)
	require.NoError(t, err)
	assert.Equal(t, "word1 word2", m)

	_, err = readMnemonic(strings.NewReader("\n"), false)
	assert.Error(t, err)
}

func TestRenderSubmission(t *testing.T) {
	t.Run("failure before broadcast prints nothing", func(t *testing.T) {
		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)

		sub := &usecase.Submission{Action: "increment", State: domain.TxStateFailed, Err: domain.ErrNotConnected}
		err := renderSubmission(cmd, false, sub, sub.Err)
		assert.ErrorIs(t, err, domain.ErrNotConnected)
		assert.Empty(t, out.String())
	})

	t.Run("json carries the error", func(t *testing.T) {
		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)

		sub := &usecase.Submission{
			Action: "reset",
			State:  domain.TxStateFailed,
			Result: &domain.TxResult{TxHash: "ABC", Code: 5},
			Err:    errors.New("out of gas"),
		}
		err := renderSubmission(cmd, true, sub, sub.Err)
		assert.EqualError(t, err, "out of gas")
		assert.Contains(t, out.String(), `"error": "out of gas"`)
		assert.Contains(t, out.String(), `"txhash": "ABC"`)
		assert.Contains(t, out.String(), `"state": "failed"`)
	})

	t.Run("success renders details", func(t *testing.T) {
		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)

		sub := &usecase.Submission{
			Action:  "increment",
			State:   domain.TxStateSucceeded,
			Result:  &domain.TxResult{TxHash: "HASH", Height: 10},
			Counter: &usecase.GetCounterResult{Count: 3},
		}
		require.NoError(t, renderSubmission(cmd, false, sub, nil))
		assert.Contains(t, out.String(), "HASH")
		assert.Contains(t, out.String(), "3")
	})
}
