package async

import "errors"

var ErrInvalidWorkers = errors.New("async: Batch requires at least one worker")
