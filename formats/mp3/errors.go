// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3Stream wraps the go-mp3 error for input without a valid frame header.
var ErrNotMP3Stream = errors.New("not an MP3 stream")
