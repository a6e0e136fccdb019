package scoreboard

import "errors"

var ErrInvalidArgument = errors.New("argument cannot be empty")
