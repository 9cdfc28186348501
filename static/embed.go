package static

import "embed"

// FS embeds the bundled pages so the server can run standalone when no
// static directory is present on disk.
//
//go:embed index.html admin.html
var FS embed.FS
