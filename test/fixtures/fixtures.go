// Package fixtures provides rendered tweet pages for preview parser tests.
package fixtures

// BasicTweet is a tweet page with every author field present.
func BasicTweet() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Tweet</title></head>
<body>
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Rooch Network</span>
        <a href="/RoochNetwork/status/1800000000000000">@RoochNetwork</a>
    </div>
    <a href="/RoochNetwork">
        <img data-testid="Tweet-User-Avatar" src="https://pbs.twimg.com/profile_images/1/rooch.jpg"/>
    </a>
    <div data-testid="tweetText" dir="ltr">
        Tipping &amp; claiming is live on testnet.
    </div>
    <time datetime="2026-01-01T12:00:00Z">12:00 PM · Jan 1, 2026</time>
</article>
</body>
</html>
`
}

// PartialTweet has text but no author block.
func PartialTweet() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Tweet</title></head>
<body>
<article data-testid="tweet">
    <div data-testid="tweetText" dir="ltr">
        Author details did not render.
    </div>
</article>
</body>
</html>
`
}

// LinkTweet mixes an external link, a mention and line breaks.
func LinkTweet() string {
	return `
<!DOCTYPE html>
<html>
<body>
<article data-testid="tweet">
    <div data-testid="User-Name"><span>Dev</span><span>@dev_rel</span></div>
    <div data-testid="tweetText" dir="ltr"><span>Docs are up</span><br><a href="https://t.co/abc123">rooch.network/learn…</a><br><br><br><br><span>thanks </span><a href="/alice">@alice</a></div>
</article>
</body>
</html>
`
}

// QuoteTweet quotes another tweet; the outer author and text win.
func QuoteTweet() string {
	return `
<!DOCTYPE html>
<html>
<body>
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Quoter</span>
        <a href="/quoter/status/100">@quoter</a>
    </div>
    <div data-testid="tweetText" dir="ltr">
        Check out this tweet!
    </div>
    <div data-testid="quoteTweet">
        <div data-testid="User-Name">
            <span>Original Author</span>
        </div>
        <div data-testid="tweetText" dir="ltr">Original tweet content here</div>
    </div>
</article>
</body>
</html>
`
}

// UnavailableTweet has neither text nor author.
func UnavailableTweet() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Tweet Not Found</title></head>
<body>
<article data-testid="tweet">
    <div>This tweet is unavailable.</div>
</article>
</body>
</html>
`
}
