package main

import _ "runtime/cgo"

// The blank import above enforces that CGO is enabled when building the main
// binary. The webp encoder used by the media pipeline needs cgo; without it
// the build fails fast here instead of producing a server that rejects every
// image upload at runtime.
