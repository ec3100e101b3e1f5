package sys

// suseconds_t is an int on darwin.
const usecWidth = 4
