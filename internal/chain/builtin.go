package chain

import "fmt"

// PrimeHandler consumes prime numbers.
type PrimeHandler struct{}

// Name implements Handler.Name.
func (PrimeHandler) Name() string { return "PrimeHandler" }

// Handle implements Handler.Handle.
func (h PrimeHandler) Handle(n int) (string, bool, error) {
	if !IsPrime(n) {
		return "", false, nil
	}
	return fmt.Sprintf("%s: consumed prime number %d", h.Name(), n), true, nil
}

// EvenHandler consumes even numbers.
type EvenHandler struct{}

// Name implements Handler.Name.
func (EvenHandler) Name() string { return "EvenHandler" }

// Handle implements Handler.Handle.
func (h EvenHandler) Handle(n int) (string, bool, error) {
	if n%2 != 0 {
		return "", false, nil
	}
	return fmt.Sprintf("%s: consumed even number %d", h.Name(), n), true, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	switch {
	case n <= 1:
		return false
	case n <= 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
