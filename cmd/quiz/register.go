package main

import "errors"

var errPasswordMismatch = errors.New("passwords do not match")

func confirmPassword(password, confirm string) error {
	if password != confirm {
		return errPasswordMismatch
	}
	return nil
}
