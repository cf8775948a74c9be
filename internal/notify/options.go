package notify

import "errors"

type Option func(*Dispatcher)

func Brand(brand string) Option {
	return func(d *Dispatcher) {
		d.brand = brand
	}
}

func (d *Dispatcher) validate() error {
	if d.mailer == nil {
		return errors.New("mailer is required")
	}

	if d.renderer == nil {
		return errors.New("renderer is required")
	}

	if d.operator == "" {
		return errors.New("operator address is required")
	}

	if d.brand == "" {
		return errors.New("brand cannot be empty")
	}
	return nil
}
