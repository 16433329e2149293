package dashboard

import "embed"

//go:embed assets
var assetsFS embed.FS
