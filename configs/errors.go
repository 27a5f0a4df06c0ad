package configs

import "errors"

var ErrValueNotFound = errors.New("value not found")
