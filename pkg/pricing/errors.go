package pricing

import "errors"

// ErrInvalidSelection is returned when pricing inputs fall outside the
// channel/tier enumeration or their numeric domain.
var ErrInvalidSelection = errors.New("invalid selection")
