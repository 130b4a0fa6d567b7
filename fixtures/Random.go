package fixtures

import (
	"crypto/rand"
	mrand "math/rand"
	"sort"

	uuid "github.com/satori/go.uuid"
)

// RandomString returns a random alphanumeric string with the given length.
func RandomString(length int) string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	for i, b := range bytes {
		bytes[i] = letters[b%byte(len(letters))]
	}
	return string(bytes)
}

// RandomUUID returns a random v4 UUID in its canonical textual form.
func RandomUUID() string {
	return uuid.NewV4().String()
}

// RandomIntn returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func RandomIntn(n int) int {
	return mrand.Intn(n)
}

// RandomIntByRange returns, as an int, a non-negative pseudo-random number based on the received int range's [min,max).
func RandomIntByRange(intRange ...int) int {
	sort.Ints(intRange)
	from := intRange[0]
	to := intRange[len(intRange)-1]
	if from == to {
		return from
	}
	return from + mrand.Intn(to-from)
}
