package sys

import "strconv"

// suseconds_t is a long on freebsd.
const usecWidth = strconv.IntSize / 8
