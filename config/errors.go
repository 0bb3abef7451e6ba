package config

import "fmt"

func configErrorf(op string, err error) error {
	return fmt.Errorf("config: %s: %w", op, err)
}
