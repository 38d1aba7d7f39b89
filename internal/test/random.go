package test

import (
	"math/rand"
	"sync"
	"time"
)

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	randMu sync.Mutex
	random = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString generates an alphanumeric string whose length falls in
// [minLen, maxLen]. Used for throwaway identifiers and credentials in tests.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	length := minLen
	if maxLen > minLen {
		length += intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphanumerics[intn(len(alphanumerics))]
	}
	return string(buf)
}

func intn(n int) int {
	randMu.Lock()
	defer randMu.Unlock()
	return random.Intn(n)
}
