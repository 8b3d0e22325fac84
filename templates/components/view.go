package components

import "tweet-tipping/internal/domain"

const (
	urlPlaceholder    = "https://x.com/RoochNetwork/status/180000000000000000"
	amountPlaceholder = "0.00000000"
)

// TipFormView is what the tip form needs to render.
type TipFormView struct {
	URL     string
	Amount  string
	Enabled bool
	Loading bool
	// Preview adds the preview panel that follows the URL field.
	Preview bool
}

func noticeRole(level domain.NoticeLevel) string {
	if level == domain.NoticeError {
		return "alert"
	}
	return "status"
}
