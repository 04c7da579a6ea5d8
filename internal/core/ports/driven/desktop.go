package driven

import "context"

// URLOpener opens a URL in the user's default browser.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}
