package statgen

import "errors"

var (
	ErrNoSamplers          = errors.New("statgen: no samplers configured")
	ErrNilSampler          = errors.New("statgen: nil sampler")
	ErrMissingAttribute    = errors.New("statgen: required attribute missing")
	ErrBadStep             = errors.New("statgen: step must be positive")
	ErrBadWindow           = errors.New("statgen: invalid time window")
	ErrNilOwner            = errors.New("statgen: nil owner")
	ErrUnknownDistribution = errors.New("statgen: unknown distribution")
	ErrBadDistribution     = errors.New("statgen: invalid distribution parameters")
)
