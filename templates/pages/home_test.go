package pages_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-tipping/internal/wallet"
	"tweet-tipping/templates/components"
	"tweet-tipping/templates/pages"
)

func TestHome_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	var buf bytes.Buffer
	err := pages.Home(pages.HomeView{
		Wallet: wallet.State{
			Status:  wallet.StatusConnected,
			Wallet:  "bridge",
			Address: "0x1234567890abcdef1234567890abcdef",
			Wallets: []string{"bridge"},
		},
		Tip: components.TipFormView{Preview: true},
	}).Render(context.Background(), &buf)

	require.NoError(t, err)
	g.Assert(t, "home_connected", buf.Bytes())
}

func TestError_RendersNoticeAndBackLink(t *testing.T) {
	var buf bytes.Buffer
	err := pages.Error("Something <broke>").Render(context.Background(), &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<div class="notice notice-error" role="alert">Something &lt;broke&gt;</div><a href="/">Back</a></main>`)
}
