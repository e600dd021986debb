package logger

import (
	"fmt"
	"testing"
)

func TestLogger(t *testing.T) {
	// skip in ci checks
	if true {
		t.Skip()
	}

	Info("hello")

	Info("fetched %d assets", 100)

	Warn("rate limit hit, retrying in %dms", 1000)

	Error(fmt.Errorf("ah man"))

	t.Fail()
}
