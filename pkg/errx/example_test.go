package errx_test

import (
	"errors"
	"fmt"

	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/pkg/errx"
)

func Example() {
	dialErr := errors.New("dial tcp 10.0.0.1:5000: i/o timeout")

	err := errx.WrapNetwork("failed to reach registry", dialErr).
		WithContext("url", "registry.example.com")

	if errors.Is(err, errx.New(errx.KindNetwork, "")) {
		fmt.Println("network failure")
	}

	res := errx.Classify(err, false)
	fmt.Println(res.ErrorType, res.ExitCode)
	fmt.Println(errx.UserString(err))

	// Output:
	// network failure
	// NetworkError 2
	// failed to reach registry
}
