package keeper

import (
	"fmt"
	"math"
)

func addUint32Checked(a uint32, b uint32, field string) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("%s overflows uint32", field)
	}
	return a + b, nil
}

func uint32FromUint64(v uint64, field string) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%s=%d overflows uint32", field, v)
	}
	return uint32(v), nil
}
