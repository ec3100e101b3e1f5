//go:build !linux && !darwin && !freebsd

package sys

const usecWidth = 8

type unsupported struct{}

func Host() Querier {
	return unsupported{}
}

func (unsupported) Query(MIB, []byte) (int, error) {
	return 0, ErrUnsupported
}
