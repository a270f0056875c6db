package util

import (
	"math/rand/v2"
)

// RandInt 闭区间 [lo, hi] 内的随机数
func RandInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// PtrString 空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
