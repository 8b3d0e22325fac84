package preview

import (
	"html"
	"regexp"
	"strings"

	"tweet-tipping/internal/domain"
)

var (
	userNameRe  = regexp.MustCompile(`data-testid="User-Name"[^>]*>([\s\S]*?)</div>`)
	handleURLRe = regexp.MustCompile(`href="/([A-Za-z0-9_]{1,15})/status/`)
	avatarRe    = regexp.MustCompile(`data-testid="Tweet-User-Avatar"[\s\S]*?src="([^"]+)"`)
	tweetTextRe = regexp.MustCompile(`data-testid="tweetText"[^>]*>([\s\S]*?)</div>`)
	linkRe      = regexp.MustCompile(`<a[^>]*href="([^"]+)"[^>]*>([\s\S]*?)</a>`)
	breakRe     = regexp.MustCompile(`<br\s*/?\s*>|</p>`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	spaceRe     = regexp.MustCompile(`[^\S\n]+`)
	blankRe     = regexp.MustCompile(`\n{3,}`)
)

// parsePage extracts the preview from a rendered tweet page. Partial is set
// when any author field is missing.
func parsePage(page, tweetID string) *domain.TweetPreview {
	p := &domain.TweetPreview{TweetID: tweetID}

	p.Author.Name, p.Author.Handle = nameAndHandle(page)
	if p.Author.Handle == "" {
		if m := handleURLRe.FindStringSubmatch(page); m != nil {
			p.Author.Handle = m[1]
		}
	}
	if m := avatarRe.FindStringSubmatch(page); m != nil {
		p.Author.AvatarURL = html.UnescapeString(m[1])
	}
	p.Text = tweetText(page)

	p.Partial = p.Author.Name == "" || p.Author.Handle == "" || p.Author.AvatarURL == ""
	return p
}

// nameAndHandle splits the User-Name block, rendered as "Name @handle".
func nameAndHandle(page string) (name, handle string) {
	m := userNameRe.FindStringSubmatch(page)
	if m == nil {
		return "", ""
	}
	text := collapse(html.UnescapeString(tagRe.ReplaceAllString(m[1], " ")))

	before, after, found := strings.Cut(text, "@")
	name = strings.TrimSpace(before)
	if found {
		if fields := strings.Fields(after); len(fields) > 0 {
			handle = fields[0]
		}
	}
	return name, handle
}

// tweetText returns the first tweetText block as plain text. External
// links are replaced by their target, internal ones by their label.
func tweetText(page string) string {
	m := tweetTextRe.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	body := linkRe.ReplaceAllStringFunc(m[1], func(a string) string {
		parts := linkRe.FindStringSubmatch(a)
		href, label := parts[1], parts[2]
		if strings.HasPrefix(href, "/") || strings.Contains(href, "x.com/hashtag") || strings.Contains(href, "x.com/search") {
			return " " + tagRe.ReplaceAllString(label, "") + " "
		}
		return " " + href + " "
	})
	body = breakRe.ReplaceAllString(body, "\n")
	body = html.UnescapeString(tagRe.ReplaceAllString(body, ""))

	body = spaceRe.ReplaceAllString(body, " ")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	body = blankRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(body)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
