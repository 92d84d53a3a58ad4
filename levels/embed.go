package levels

import "embed"

//go:embed *.tmx
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "winter.tmx"
