//go:build !snakedebug

package snake

const debugAssertions = false

func assertf(bool, string, ...any) {}
