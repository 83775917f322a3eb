package sanitize

import "github.com/microcosm-cc/bluemonday"

// Description fields are authored as HTML in the admin editor and must be
// stripped of executable content before they reach the public site.
var policy = bluemonday.UGCPolicy()

func HTML(s string) string {
	return policy.Sanitize(s)
}
