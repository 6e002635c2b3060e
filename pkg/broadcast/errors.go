package broadcast

import "errors"

// ErrChannelClosed is returned when publishing to or subscribing on a closed
// channel.
var ErrChannelClosed = errors.New("broadcast: channel is closed")
