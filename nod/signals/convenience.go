package signals

import "github.com/hashicorp/go-multierror"

// CollectErrors returns an accumulator that gathers the non-nil errors
// returned by the slots of signal into a single multierror. Emitting through
// it yields nil when every slot succeeded.
func CollectErrors[A any](signal *ResultSignal[A, error]) *Accumulator[A, error, error] {
	return Accumulate(signal, nil, func(acc error, err error) error {
		if err == nil {
			return acc
		}
		return multierror.Append(acc, err)
	})
}
