package preview

import (
	"testing"

	"tweet-tipping/test/fixtures"
)

func TestParsePage_BasicTweet_ExtractsAllFields(t *testing.T) {
	// Arrange
	page := fixtures.BasicTweet()

	// Act
	p := parsePage(page, "1800000000000000")

	// Assert
	if p.TweetID != "1800000000000000" {
		t.Errorf("TweetID: got %v", p.TweetID)
	}
	if p.Author.Name != "Rooch Network" {
		t.Errorf("Name: got %q, want %q", p.Author.Name, "Rooch Network")
	}
	if p.Author.Handle != "RoochNetwork" {
		t.Errorf("Handle: got %q, want %q", p.Author.Handle, "RoochNetwork")
	}
	if p.Author.AvatarURL != "https://pbs.twimg.com/profile_images/1/rooch.jpg" {
		t.Errorf("AvatarURL: got %q", p.Author.AvatarURL)
	}
	if p.Text != "Tipping & claiming is live on testnet." {
		t.Errorf("Text: got %q", p.Text)
	}
	if p.Partial {
		t.Error("expected a complete preview")
	}
}

func TestParsePage_PartialTweet_MarksAsPartial(t *testing.T) {
	// Arrange
	page := fixtures.PartialTweet()

	// Act
	p := parsePage(page, "1")

	// Assert
	if p.Text != "Author details did not render." {
		t.Errorf("Text: got %q", p.Text)
	}
	if !p.Partial {
		t.Error("expected partial to be true for tweet with missing author info")
	}
}

func TestParsePage_Links_UseTargetsAndKeepBreaks(t *testing.T) {
	// Arrange
	page := fixtures.LinkTweet()

	// Act
	p := parsePage(page, "2")

	// Assert
	want := "Docs are up\nhttps://t.co/abc123\n\nthanks @alice"
	if p.Text != want {
		t.Errorf("Text:\ngot  %q\nwant %q", p.Text, want)
	}
	if p.Author.Name != "Dev" || p.Author.Handle != "dev_rel" {
		t.Errorf("Author: got %+v", p.Author)
	}
}

func TestParsePage_QuoteTweet_UsesOuterTweet(t *testing.T) {
	p := parsePage(fixtures.QuoteTweet(), "100")

	if p.Author.Handle != "quoter" {
		t.Errorf("Handle: got %q, want quoter", p.Author.Handle)
	}
	if p.Text != "Check out this tweet!" {
		t.Errorf("Text: got %q", p.Text)
	}
}

func TestParsePage_HandleFallsBackToStatusLink(t *testing.T) {
	page := `<div data-testid="User-Name"><span>No Handle</span></div><a href="/someone/status/9">x</a>`

	p := parsePage(page, "9")

	if p.Author.Name != "No Handle" || p.Author.Handle != "someone" {
		t.Errorf("Author: got %+v", p.Author)
	}
}

func TestParsePage_Unavailable_ReturnsEmpty(t *testing.T) {
	p := parsePage(fixtures.UnavailableTweet(), "3")

	if p.Text != "" || p.Author.Handle != "" {
		t.Errorf("expected empty preview, got %+v", p)
	}
}
