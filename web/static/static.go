// Package static embeds the activity directory web page.
package static

import "embed"

//go:embed index.html app.js styles.css
var FS embed.FS
